package formatter

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ikjoobang/ppt-designer/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontName is the internal name used by gofpdf
	// for the Hangul-capable font.
	pdfFontName = "NotoSansKR"

	// Relative paths where the TTF font may live.
	// In Docker runtime we copy fonts to /app/ttf,
	// so for the compiled binary the path is ./ttf/NotoSansKR-Regular.ttf.
	pdfFontRuntimePath = "ttf/NotoSansKR-Regular.ttf"

	// Source-relative path (useful when running from repo root with `go run`).
	pdfFontSourcePath = "internal/pkg/formatter/ttf/NotoSansKR-Regular.ttf"
)

type PDFFormatter struct{}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

// resolveFontPath tries to find the NotoSansKR font in
// runtime layout (next to the binary) or source layout.
func resolveFontPath() string {
	// 1) Try runtime-relative path from current working directory.
	if _, err := os.Stat(pdfFontRuntimePath); err == nil {
		return pdfFontRuntimePath
	}

	// 2) Try source-relative path (useful in local dev).
	if _, err := os.Stat(pdfFontSourcePath); err == nil {
		return pdfFontSourcePath
	}

	return ""
}

func (mf *PDFFormatter) Format(plan *entity.PlanDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Try to use the Hangul-capable NotoSansKR font, bundled with the project.
	fontName := "Arial"
	if fontPath := resolveFontPath(); fontPath != "" {
		// Register regular and bold styles under the same family name
		pdf.AddUTF8Font(pdfFontName, "", fontPath)
		pdf.AddUTF8Font(pdfFontName, "B", fontPath)
		fontName = pdfFontName
	}

	pdf.SetFont(fontName, "B", 20)
	pdf.Cell(0, 10, baseTitle)
	pdf.Ln(14)

	pdf.SetFont(fontName, "", 12)
	_, lineHeight := pdf.GetFontSize()
	pdf.MultiCell(0, lineHeight*1.5, fmt.Sprintf("템플릿: %s (%s)", plan.TemplateName, plan.TemplateID), "", "", false)
	pdf.MultiCell(0, lineHeight*1.5, fmt.Sprintf("적합도 점수: %.1f / 100", plan.Score), "", "", false)
	pdf.MultiCell(0, lineHeight*1.5, fmt.Sprintf("적용 난이도: %s", plan.Difficulty), "", "", false)
	pdf.Ln(6)

	for _, step := range plan.Steps {
		pdf.SetFont(fontName, "B", 13)
		pdf.MultiCell(0, lineHeight*1.6, fmt.Sprintf("%d. %s (%s)", step.Order, step.Title, step.EstimatedEffort), "", "", false)
		pdf.SetFont(fontName, "", 12)
		pdf.MultiCell(0, lineHeight*1.5, step.Description, "", "", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (mf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
