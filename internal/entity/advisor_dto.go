package entity

type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatDOCX     ExportFormat = "docx"
	FormatPDF      ExportFormat = "pdf"
)

func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return true
	default:
		return false
	}
}

// SubmitResponseRequest is the POST /api/responses body. Single-choice and
// free-text answers arrive in Response, multi-choice answers in Responses.
type SubmitResponseRequest struct {
	QuestionID        string   `json:"question_id"`
	Response          string   `json:"response,omitempty"`
	Responses         []string `json:"responses,omitempty"`
	AdditionalDetails string   `json:"additional_details,omitempty"`
}

// QuestionDTO is the public question shape. Scoring internals (weight,
// option factors, dimension mapping) stay server-side.
type QuestionDTO struct {
	ID          string       `json:"id"`
	Phase       int          `json:"phase"`
	Section     string       `json:"section,omitempty"`
	Text        string       `json:"text"`
	Type        QuestionType `json:"type"`
	Required    bool         `json:"required"`
	Placeholder string       `json:"placeholder,omitempty"`
	FollowUp    string       `json:"follow_up,omitempty"`
	Options     []string     `json:"options,omitempty"`
}

// ExportedPlan is a rendered implementation plan ready to send as a file.
type ExportedPlan struct {
	Content     []byte
	ContentType string
	Filename    string
}
