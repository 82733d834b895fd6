package entity

import (
	"fmt"
	"time"
)

type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single_choice"
	QuestionTypeMultiChoice  QuestionType = "multi_choice"
	QuestionTypeFreeText     QuestionType = "free_text"
)

func (qt QuestionType) IsChoice() bool {
	return qt == QuestionTypeSingleChoice || qt == QuestionTypeMultiChoice
}

func (qt QuestionType) Validate() error {
	switch qt {
	case QuestionTypeSingleChoice, QuestionTypeMultiChoice, QuestionTypeFreeText:
		return nil
	default:
		return fmt.Errorf("unknown question type: %s", qt)
	}
}

type Difficulty string

// Customization difficulty levels, ordered from easiest to hardest
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

var difficultyRank = map[Difficulty]int{
	DifficultyEasy:   0,
	DifficultyMedium: 1,
	DifficultyHard:   2,
	DifficultyExpert: 3,
}

var difficultyOrder = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyExpert,
}

// Rank returns the position of the difficulty on the easy..expert ladder.
func (d Difficulty) Rank() int {
	return difficultyRank[d]
}

// Harder returns the next difficulty level, saturating at expert.
func (d Difficulty) Harder() Difficulty {
	rank := d.Rank() + 1
	if rank >= len(difficultyOrder) {
		return DifficultyExpert
	}
	return difficultyOrder[rank]
}

func (d Difficulty) Validate() error {
	if _, ok := difficultyRank[d]; !ok {
		return fmt.Errorf("unknown difficulty: %s", d)
	}
	return nil
}

// Dimension is a named scoring axis (style, color, function, ...).
type Dimension struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// QuestionOption is one selectable answer with its scoring contribution
// factor in [0,1].
type QuestionOption struct {
	Value  string  `json:"value"`
	Factor float64 `json:"factor"`
}

// Question is one questionnaire entry. Immutable after catalog load.
type Question struct {
	ID          string           `json:"id"`
	Phase       int              `json:"phase"`
	Section     string           `json:"section,omitempty"`
	Text        string           `json:"text"`
	Weight      float64          `json:"weight"`
	Type        QuestionType     `json:"type"`
	Required    bool             `json:"required"`
	Placeholder string           `json:"placeholder,omitempty"`
	FollowUp    string           `json:"follow_up,omitempty"`
	Options     []QuestionOption `json:"options,omitempty"`
	Dimensions  []string         `json:"dimensions,omitempty"`
}

// Response is one submitted answer. Exactly one Response exists per
// question per session; a later submission overwrites the earlier one.
type Response struct {
	QuestionID        string    `json:"question_id"`
	Selected          []string  `json:"selected,omitempty"`
	Text              string    `json:"text,omitempty"`
	AdditionalDetails string    `json:"additional_details,omitempty"`
	SubmittedAt       time.Time `json:"submitted_at"`
}

// Profile maps dimension id to an accumulated weighted score in [0,100].
// Derived from responses on demand, never stored.
type Profile map[string]float64

// Template is one catalog entry the profile is matched against.
type Template struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	URL          string             `json:"url,omitempty"`
	PreviewImage string             `json:"preview_image,omitempty"`
	Description  string             `json:"description,omitempty"`
	Difficulty   Difficulty         `json:"difficulty"`
	Attributes   map[string]float64 `json:"attributes"`
	SlideCount   int                `json:"slide_count,omitempty"`
	Features     []string           `json:"features,omitempty"`
}

// DimensionAssessment is one dimension's similarity between profile and
// template, in [0,100].
type DimensionAssessment struct {
	Dimension  string  `json:"dimension"`
	Similarity float64 `json:"similarity"`
}

// MatchResult is the outcome of matching one template against a profile.
type MatchResult struct {
	TemplateID   string                `json:"template_id"`
	TemplateName string                `json:"template_name"`
	TemplateURL  string                `json:"template_url,omitempty"`
	PreviewImage string                `json:"preview_image,omitempty"`
	Score        float64               `json:"score"`
	Strengths    []DimensionAssessment `json:"strengths"`
	Weaknesses   []DimensionAssessment `json:"weaknesses"`
	Difficulty   Difficulty            `json:"difficulty"`
}

// PlanStep is one ordered step of an implementation plan.
type PlanStep struct {
	Order           int    `json:"order"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	EstimatedEffort string `json:"estimated_effort"`
}

// PlanDocument is an implementation plan prepared for export.
type PlanDocument struct {
	TemplateID   string     `json:"template_id"`
	TemplateName string     `json:"template_name"`
	Score        float64    `json:"score"`
	Difficulty   Difficulty `json:"difficulty"`
	Steps        []PlanStep `json:"steps"`
}

// Progress reports questionnaire completion as fractions in [0,1].
type Progress struct {
	Overall       float64         `json:"overall"`
	AnsweredCount int             `json:"answered_count"`
	TotalCount    int             `json:"total_count"`
	PerPhase      map[int]float64 `json:"per_phase"`
}
