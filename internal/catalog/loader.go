package catalog

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ikjoobang/ppt-designer/internal/entity"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const maxCatalogFileSize = 1024 * 1024 // 1MB

// File schema of the YAML catalog artifact.
type fileCatalog struct {
	Dimensions []fileDimension `koanf:"dimensions" validate:"required,min=1,dive"`
	Scoring    fileScoring     `koanf:"scoring"`
	Matching   fileMatching    `koanf:"matching"`
	Phases     []filePhase     `koanf:"phases" validate:"required,min=1,dive"`
	Templates  []fileTemplate  `koanf:"templates" validate:"dive"`
	Plan       filePlan        `koanf:"plan"`
}

type fileDimension struct {
	ID   string `koanf:"id" validate:"required"`
	Name string `koanf:"name" validate:"required"`
}

type fileScoring struct {
	FreeTextFactor float64 `koanf:"free_text_factor" validate:"gt=0,lte=1"`
}

type fileMatching struct {
	Weights            map[string]float64 `koanf:"weights" validate:"required"`
	StrengthThreshold  float64            `koanf:"strength_threshold" validate:"gte=0,lte=100"`
	WeaknessThreshold  float64            `koanf:"weakness_threshold" validate:"gte=0,lte=100"`
	TechnicalFloor     float64            `koanf:"technical_floor" validate:"gte=0,lte=100"`
	TechnicalDimension string             `koanf:"technical_dimension" validate:"required"`
}

type filePhase struct {
	Number    int            `koanf:"number" validate:"required,min=1,max=5"`
	Questions []fileQuestion `koanf:"questions" validate:"required,min=1,dive"`
}

type fileQuestion struct {
	ID          string       `koanf:"id" validate:"required"`
	Section     string       `koanf:"section"`
	Text        string       `koanf:"text" validate:"required"`
	Weight      float64      `koanf:"weight" validate:"gt=0"`
	Type        string       `koanf:"type" validate:"required,oneof=single_choice multi_choice free_text"`
	Required    bool         `koanf:"required"`
	Placeholder string       `koanf:"placeholder"`
	FollowUp    string       `koanf:"follow_up"`
	Options     []fileOption `koanf:"options" validate:"dive"`
	Dimensions  []string     `koanf:"dimensions"`
}

type fileOption struct {
	Value  string  `koanf:"value" validate:"required"`
	Factor float64 `koanf:"factor" validate:"gte=0,lte=1"`
}

type fileTemplate struct {
	ID           string             `koanf:"id" validate:"required"`
	Name         string             `koanf:"name" validate:"required"`
	URL          string             `koanf:"url"`
	PreviewImage string             `koanf:"preview_image"`
	Description  string             `koanf:"description"`
	Difficulty   string             `koanf:"difficulty" validate:"required,oneof=easy medium hard expert"`
	Attributes   map[string]float64 `koanf:"attributes" validate:"required"`
	SlideCount   int                `koanf:"slide_count" validate:"gte=0"`
	Features     []string           `koanf:"features"`
}

type filePlan struct {
	Remediations map[string]filePlanStep `koanf:"remediations" validate:"required,dive"`
	Rollout      []filePlanStep          `koanf:"rollout" validate:"required,min=1,dive"`
}

type filePlanStep struct {
	Title       string `koanf:"title" validate:"required"`
	Description string `koanf:"description" validate:"required"`
	EffortHours int    `koanf:"effort_hours" validate:"gt=0"`
}

// Load reads and builds the catalog from the YAML artifact at path.
// Any defect in the artifact fails the load; the process must not start
// with a partially valid catalog.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat catalog file: %w", err)
	}

	if info.Size() > maxCatalogFileSize {
		return nil, fmt.Errorf("catalog file too large: %d bytes (max %d)", info.Size(), maxCatalogFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	return Parse(content)
}

// Parse builds the catalog from raw YAML bytes.
func Parse(content []byte) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}

	var fc fileCatalog
	if err := k.Unmarshal("", &fc); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	if err := validator.New().Struct(&fc); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	return build(&fc)
}

// build runs the cross-reference checks the struct tags cannot express and
// assembles the immutable catalog.
func build(fc *fileCatalog) (*Catalog, error) {
	dimensions := make([]entity.Dimension, 0, len(fc.Dimensions))
	dimSet := make(map[string]bool, len(fc.Dimensions))
	for _, d := range fc.Dimensions {
		if dimSet[d.ID] {
			return nil, fmt.Errorf("duplicate dimension %q", d.ID)
		}
		dimSet[d.ID] = true
		dimensions = append(dimensions, entity.Dimension{ID: d.ID, Name: d.Name})
	}

	matching, err := buildMatching(&fc.Matching, dimensions, dimSet)
	if err != nil {
		return nil, err
	}

	questions, byID, byPhase, err := buildQuestions(fc.Phases, dimSet)
	if err != nil {
		return nil, err
	}

	templates, templateByID, err := buildTemplates(fc.Templates, dimensions, dimSet)
	if err != nil {
		return nil, err
	}

	plan, err := buildPlan(&fc.Plan, dimensions, dimSet)
	if err != nil {
		return nil, err
	}

	scoring := ScoringConfig{FreeTextFactor: fc.Scoring.FreeTextFactor}

	maxTotals, err := maxDimensionTotals(dimensions, questions, scoring)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		dimensions:   dimensions,
		questions:    questions,
		byID:         byID,
		byPhase:      byPhase,
		templates:    templates,
		templateByID: templateByID,
		matching:     matching,
		scoring:      scoring,
		plan:         plan,
		maxTotals:    maxTotals,
	}, nil
}

func buildMatching(fm *fileMatching, dimensions []entity.Dimension, dimSet map[string]bool) (MatchingConfig, error) {
	for dim := range fm.Weights {
		if !dimSet[dim] {
			return MatchingConfig{}, fmt.Errorf("matching weight references unknown dimension %q", dim)
		}
	}

	for _, d := range dimensions {
		if fm.Weights[d.ID] <= 0 {
			return MatchingConfig{}, fmt.Errorf("matching weight for dimension %q must be positive", d.ID)
		}
	}

	if !dimSet[fm.TechnicalDimension] {
		return MatchingConfig{}, fmt.Errorf("technical dimension %q is not declared", fm.TechnicalDimension)
	}

	if fm.WeaknessThreshold > fm.StrengthThreshold {
		return MatchingConfig{}, fmt.Errorf("weakness threshold %.1f exceeds strength threshold %.1f", fm.WeaknessThreshold, fm.StrengthThreshold)
	}

	return MatchingConfig{
		Weights:            fm.Weights,
		StrengthThreshold:  fm.StrengthThreshold,
		WeaknessThreshold:  fm.WeaknessThreshold,
		TechnicalFloor:     fm.TechnicalFloor,
		TechnicalDimension: fm.TechnicalDimension,
	}, nil
}

func buildQuestions(phases []filePhase, dimSet map[string]bool) ([]entity.Question, map[string]*entity.Question, map[int][]entity.Question, error) {
	seenPhases := make(map[int]bool, len(phases))
	var questions []entity.Question
	for _, phase := range phases {
		if seenPhases[phase.Number] {
			return nil, nil, nil, fmt.Errorf("duplicate phase %d", phase.Number)
		}
		seenPhases[phase.Number] = true

		for i := range phase.Questions {
			q, err := buildQuestion(&phase.Questions[i], phase.Number, dimSet)
			if err != nil {
				return nil, nil, nil, err
			}
			questions = append(questions, q)
		}
	}

	byID := make(map[string]*entity.Question, len(questions))
	byPhase := make(map[int][]entity.Question, len(seenPhases))
	for i := range questions {
		q := &questions[i]
		if _, ok := byID[q.ID]; ok {
			return nil, nil, nil, fmt.Errorf("duplicate question %q", q.ID)
		}
		byID[q.ID] = q
		byPhase[q.Phase] = append(byPhase[q.Phase], *q)
	}

	return questions, byID, byPhase, nil
}

func buildQuestion(fq *fileQuestion, phase int, dimSet map[string]bool) (entity.Question, error) {
	qt := entity.QuestionType(fq.Type)
	if qt.IsChoice() && len(fq.Options) == 0 {
		return entity.Question{}, fmt.Errorf("question %q: choice type requires options", fq.ID)
	}
	if !qt.IsChoice() && len(fq.Options) > 0 {
		return entity.Question{}, fmt.Errorf("question %q: free text must not declare options", fq.ID)
	}

	var options []entity.QuestionOption
	seenValues := make(map[string]bool, len(fq.Options))
	for _, o := range fq.Options {
		if seenValues[o.Value] {
			return entity.Question{}, fmt.Errorf("question %q: duplicate option %q", fq.ID, o.Value)
		}
		seenValues[o.Value] = true
		options = append(options, entity.QuestionOption{Value: o.Value, Factor: o.Factor})
	}

	seenDims := make(map[string]bool, len(fq.Dimensions))
	for _, dim := range fq.Dimensions {
		if !dimSet[dim] {
			return entity.Question{}, fmt.Errorf("question %q references unknown dimension %q", fq.ID, dim)
		}
		if seenDims[dim] {
			return entity.Question{}, fmt.Errorf("question %q: duplicate dimension %q", fq.ID, dim)
		}
		seenDims[dim] = true
	}

	return entity.Question{
		ID:          fq.ID,
		Phase:       phase,
		Section:     fq.Section,
		Text:        fq.Text,
		Weight:      fq.Weight,
		Type:        qt,
		Required:    fq.Required,
		Placeholder: fq.Placeholder,
		FollowUp:    fq.FollowUp,
		Options:     options,
		Dimensions:  fq.Dimensions,
	}, nil
}

func buildTemplates(fts []fileTemplate, dimensions []entity.Dimension, dimSet map[string]bool) ([]entity.Template, map[string]*entity.Template, error) {
	templates := make([]entity.Template, 0, len(fts))
	for _, ft := range fts {
		for dim := range ft.Attributes {
			if !dimSet[dim] {
				return nil, nil, fmt.Errorf("template %q: attribute references unknown dimension %q", ft.ID, dim)
			}
		}
		for _, d := range dimensions {
			v, ok := ft.Attributes[d.ID]
			if !ok {
				return nil, nil, fmt.Errorf("template %q: missing attribute for dimension %q", ft.ID, d.ID)
			}
			if v < 0 || v > 100 {
				return nil, nil, fmt.Errorf("template %q: attribute %q must be in [0,100], got %v", ft.ID, d.ID, v)
			}
		}

		templates = append(templates, entity.Template{
			ID:           ft.ID,
			Name:         ft.Name,
			URL:          ft.URL,
			PreviewImage: ft.PreviewImage,
			Description:  ft.Description,
			Difficulty:   entity.Difficulty(ft.Difficulty),
			Attributes:   ft.Attributes,
			SlideCount:   ft.SlideCount,
			Features:     ft.Features,
		})
	}

	byID := make(map[string]*entity.Template, len(templates))
	for i := range templates {
		t := &templates[i]
		if _, ok := byID[t.ID]; ok {
			return nil, nil, fmt.Errorf("duplicate template %q", t.ID)
		}
		byID[t.ID] = t
	}

	return templates, byID, nil
}

func buildPlan(fp *filePlan, dimensions []entity.Dimension, dimSet map[string]bool) (PlanConfig, error) {
	for dim := range fp.Remediations {
		if !dimSet[dim] {
			return PlanConfig{}, fmt.Errorf("plan remediation references unknown dimension %q", dim)
		}
	}

	remediations := make(map[string]PlanStepSpec, len(fp.Remediations))
	for _, d := range dimensions {
		step, ok := fp.Remediations[d.ID]
		if !ok {
			return PlanConfig{}, fmt.Errorf("plan remediation missing for dimension %q", d.ID)
		}
		remediations[d.ID] = PlanStepSpec{
			Title:       step.Title,
			Description: step.Description,
			EffortHours: step.EffortHours,
		}
	}

	rollout := make([]PlanStepSpec, 0, len(fp.Rollout))
	for _, step := range fp.Rollout {
		rollout = append(rollout, PlanStepSpec{
			Title:       step.Title,
			Description: step.Description,
			EffortHours: step.EffortHours,
		})
	}

	return PlanConfig{Remediations: remediations, Rollout: rollout}, nil
}

// maxDimensionTotals precomputes, per dimension, the highest weighted total
// any response set can reach. Profile scores normalize against these, so a
// dimension no question can reach is a defect.
func maxDimensionTotals(dimensions []entity.Dimension, questions []entity.Question, scoring ScoringConfig) (map[string]float64, error) {
	totals := make(map[string]float64, len(dimensions))
	for i := range questions {
		factor := maxFactor(&questions[i], scoring)
		for _, dim := range questions[i].Dimensions {
			totals[dim] += questions[i].Weight * factor
		}
	}

	for _, d := range dimensions {
		if totals[d.ID] <= 0 {
			return nil, fmt.Errorf("dimension %q is not reachable by any question", d.ID)
		}
	}

	return totals, nil
}

func maxFactor(q *entity.Question, scoring ScoringConfig) float64 {
	switch q.Type {
	case entity.QuestionTypeSingleChoice:
		best := 0.0
		for _, o := range q.Options {
			if o.Factor > best {
				best = o.Factor
			}
		}
		return best
	case entity.QuestionTypeMultiChoice:
		sum := 0.0
		for _, o := range q.Options {
			sum += o.Factor
		}
		return math.Min(sum, 1.0)
	case entity.QuestionTypeFreeText:
		return scoring.FreeTextFactor
	default:
		return 0
	}
}
