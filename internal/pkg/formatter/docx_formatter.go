package formatter

import (
	"bytes"
	"fmt"

	"github.com/ikjoobang/ppt-designer/internal/entity"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (mf *DOCXFormatter) Format(plan *entity.PlanDocument) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titleRun := titlePar.AddRun()
	titleRun.AddText(baseTitle)

	summaryPar := doc.AddParagraph()
	summaryRun := summaryPar.AddRun()
	summaryRun.AddText(fmt.Sprintf("템플릿: %s (%s)", plan.TemplateName, plan.TemplateID))
	summaryRun.AddBreak()
	summaryRun.AddText(fmt.Sprintf("적합도 점수: %.1f / 100", plan.Score))
	summaryRun.AddBreak()
	summaryRun.AddText(fmt.Sprintf("적용 난이도: %s", plan.Difficulty))

	for _, step := range plan.Steps {
		stepPar := doc.AddParagraph()
		stepPar.SetStyle("Heading2")
		stepRun := stepPar.AddRun()
		stepRun.AddText(fmt.Sprintf("%d. %s (%s)", step.Order, step.Title, step.EstimatedEffort))

		bodyPar := doc.AddParagraph()
		bodyRun := bodyPar.AddRun()
		bodyRun.AddText(step.Description)
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mf *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (mf *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
