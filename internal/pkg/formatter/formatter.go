package formatter

import (
	"fmt"

	"github.com/ikjoobang/ppt-designer/internal/entity"
)

const baseTitle = "PPT 구현 계획"

type Formatter interface {
	Format(plan *entity.PlanDocument) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ExportFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q: %w", format, entity.ErrInvalidParameter)
	}
}
