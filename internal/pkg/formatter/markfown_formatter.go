package formatter

import (
	"bytes"
	"fmt"

	"github.com/ikjoobang/ppt-designer/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(plan *entity.PlanDocument) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", baseTitle)
	fmt.Fprintf(&buf, "- 템플릿: %s (`%s`)\n", plan.TemplateName, plan.TemplateID)
	fmt.Fprintf(&buf, "- 적합도 점수: %.1f / 100\n", plan.Score)
	fmt.Fprintf(&buf, "- 적용 난이도: %s\n", plan.Difficulty)

	for _, step := range plan.Steps {
		fmt.Fprintf(&buf, "\n## %d. %s\n\n", step.Order, step.Title)
		fmt.Fprintf(&buf, "%s\n\n", step.Description)
		fmt.Fprintf(&buf, "예상 소요 시간: %s\n", step.EstimatedEffort)
	}

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
