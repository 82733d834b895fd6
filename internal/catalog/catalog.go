package catalog

import (
	"fmt"

	"github.com/ikjoobang/ppt-designer/internal/entity"
)

// PhaseCount is the number of questionnaire phases.
const PhaseCount = 5

// MatchingConfig holds the template matching constants.
type MatchingConfig struct {
	Weights            map[string]float64
	StrengthThreshold  float64
	WeaknessThreshold  float64
	TechnicalFloor     float64
	TechnicalDimension string
}

// ScoringConfig holds the profile scoring constants.
type ScoringConfig struct {
	FreeTextFactor float64
}

// PlanStepSpec is an authored plan step.
type PlanStepSpec struct {
	Title       string
	Description string
	EffortHours int
}

// PlanConfig holds the implementation plan building blocks: one remediation
// step per dimension plus the generic rollout sequence.
type PlanConfig struct {
	Remediations map[string]PlanStepSpec
	Rollout      []PlanStepSpec
}

// Catalog is the questionnaire and template database. Built once at startup
// from the YAML artifact, immutable afterwards, safe for concurrent reads.
type Catalog struct {
	dimensions   []entity.Dimension
	questions    []entity.Question
	byID         map[string]*entity.Question
	byPhase      map[int][]entity.Question
	templates    []entity.Template
	templateByID map[string]*entity.Template
	matching     MatchingConfig
	scoring      ScoringConfig
	plan         PlanConfig
	maxTotals    map[string]float64
}

// Dimensions returns the declared scoring dimensions in authored order.
func (c *Catalog) Dimensions() []entity.Dimension {
	return c.dimensions
}

// Questions returns every question in catalog-authored order.
func (c *Catalog) Questions() []entity.Question {
	return c.questions
}

// QuestionsByPhase returns one phase's questions in authored order. Fails
// with entity.ErrPhaseNotFound when phase is outside 1..PhaseCount.
func (c *Catalog) QuestionsByPhase(phase int) ([]entity.Question, error) {
	if phase < 1 || phase > PhaseCount {
		return nil, fmt.Errorf("phase %d: %w", phase, entity.ErrPhaseNotFound)
	}
	return c.byPhase[phase], nil
}

// QuestionByID looks up a question by its identifier.
func (c *Catalog) QuestionByID(id string) (*entity.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Templates returns every template in catalog-authored order.
func (c *Catalog) Templates() []entity.Template {
	return c.templates
}

// TemplateByID looks up a template by its identifier.
func (c *Catalog) TemplateByID(id string) (*entity.Template, bool) {
	t, ok := c.templateByID[id]
	return t, ok
}

// Matching returns the template matching constants.
func (c *Catalog) Matching() MatchingConfig {
	return c.matching
}

// Scoring returns the profile scoring constants.
func (c *Catalog) Scoring() ScoringConfig {
	return c.scoring
}

// Plan returns the implementation plan building blocks.
func (c *Catalog) Plan() PlanConfig {
	return c.plan
}

// MaxDimensionTotal returns the maximum achievable weighted total for a
// dimension across the full catalog. Positive for every declared dimension,
// enforced at load time.
func (c *Catalog) MaxDimensionTotal(dimension string) float64 {
	return c.maxTotals[dimension]
}
