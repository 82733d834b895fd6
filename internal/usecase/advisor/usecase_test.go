package advisor

import (
	"context"
	"testing"
	"time"

	"github.com/ikjoobang/ppt-designer/internal/catalog"
	"github.com/ikjoobang/ppt-designer/internal/entity"
	"github.com/ikjoobang/ppt-designer/internal/pkg/formatter"
	"github.com/ikjoobang/ppt-designer/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two templates pull in opposite directions: fit-style wins on visual
// alignment, fit-tech on technical alignment.
const advisorCatalogYAML = `
dimensions:
  - id: style
    name: Visual style
  - id: technical
    name: Technical comfort

scoring:
  free_text_factor: 0.6

matching:
  weights:
    style: 60
    technical: 40
  strength_threshold: 80
  weakness_threshold: 40
  technical_floor: 40
  technical_dimension: technical

phases:
  - number: 1
    questions:
      - id: q1
        text: Pick a look
        weight: 1.0
        type: single_choice
        options:
          - value: bold
            factor: 1.0
          - value: calm
            factor: 0.5
        dimensions: [style]
  - number: 2
    questions:
      - id: q2
        text: How comfortable is the team with slide tooling
        weight: 1.0
        type: single_choice
        options:
          - value: high
            factor: 1.0
          - value: low
            factor: 0.2
        dimensions: [technical]
  - number: 5
    questions:
      - id: q3
        text: Anything else
        weight: 1.0
        type: free_text

templates:
  - id: fit-style
    name: Fit Style
    url: https://templates.test/fit-style
    difficulty: easy
    attributes:
      style: 100
      technical: 50
  - id: fit-tech
    name: Fit Tech
    difficulty: medium
    attributes:
      style: 50
      technical: 100

plan:
  remediations:
    style:
      title: Rework visual style
      description: Swap the master slides.
      effort_hours: 4
    technical:
      title: Simplify advanced features
      description: Replace fragile effects.
      effort_hours: 3
  rollout:
    - title: Customize the template
      description: Apply branding and rename the sections.
      effort_hours: 3
    - title: Fill in content
      description: Move the outline into the slides.
      effort_hours: 6
`

const emptyTemplatesYAML = `
dimensions:
  - id: style
    name: Visual style

scoring:
  free_text_factor: 0.6

matching:
  weights:
    style: 100
  strength_threshold: 80
  weakness_threshold: 40
  technical_floor: 40
  technical_dimension: style

phases:
  - number: 1
    questions:
      - id: q1
        text: Pick a look
        weight: 1.0
        type: single_choice
        options:
          - value: bold
            factor: 1.0
        dimensions: [style]

templates: []

plan:
  remediations:
    style:
      title: Rework visual style
      description: Swap the master slides.
      effort_hours: 4
  rollout:
    - title: Fill in content
      description: Move the outline into the slides.
      effort_hours: 6
`

type stubMetrics struct {
	responses       int
	recommendations int
	exports         map[string]int
}

func (m *stubMetrics) RecordResponseSubmitted()     { m.responses++ }
func (m *stubMetrics) RecordRecommendationsServed() { m.recommendations++ }
func (m *stubMetrics) RecordPlanExported(format string) {
	if m.exports == nil {
		m.exports = map[string]int{}
	}
	m.exports[format]++
}

func newTestUsecase(t *testing.T, catalogYAML string) (*AdvisorUsecase, *stubMetrics) {
	t.Helper()

	cat, err := catalog.Parse([]byte(catalogYAML))
	require.NoError(t, err)

	metrics := &stubMetrics{}
	uc := NewUsecase(cat, store.NewMemoryStore(cat, time.Hour, time.Hour), formatter.NewFactory(), metrics)
	return uc, metrics
}

func submit(t *testing.T, uc *AdvisorUsecase, sessionID string, req *entity.SubmitResponseRequest) {
	t.Helper()
	_, err := uc.SubmitResponse(context.Background(), sessionID, req)
	require.NoError(t, err)
}

func TestQuestions_CatalogOrder(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)

	questions := uc.Questions(context.Background())

	require.Len(t, questions, 3)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "q2", questions[1].ID)
	assert.Equal(t, "q3", questions[2].ID)
}

func TestQuestionsByPhase(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)

	questions, err := uc.QuestionsByPhase(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "q1", questions[0].ID)

	_, err = uc.QuestionsByPhase(context.Background(), 9)
	require.ErrorIs(t, err, entity.ErrPhaseNotFound)
}

func TestSubmitResponse_CountsMetric(t *testing.T) {
	uc, metrics := newTestUsecase(t, advisorCatalogYAML)

	resp, err := uc.SubmitResponse(context.Background(), "s1", &entity.SubmitResponseRequest{
		QuestionID: "q1",
		Response:   "bold",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"bold"}, resp.Selected)
	assert.Equal(t, 1, metrics.responses)
}

func TestSubmitResponse_UnknownQuestion(t *testing.T) {
	uc, metrics := newTestUsecase(t, advisorCatalogYAML)

	_, err := uc.SubmitResponse(context.Background(), "s1", &entity.SubmitResponseRequest{
		QuestionID: "q999",
		Response:   "bold",
	})

	require.ErrorIs(t, err, entity.ErrQuestionNotFound)
	assert.Zero(t, metrics.responses)
}

func TestProfileScore_EmptySession(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)

	profile := uc.ProfileScore(context.Background(), "s1")

	assert.Equal(t, entity.Profile{"style": 0, "technical": 0}, profile)
}

func TestProfileScore_AfterSubmissions(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q1", Response: "bold"})
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q2", Response: "low"})

	profile := uc.ProfileScore(context.Background(), "s1")

	assert.InDelta(t, 100, profile["style"], 0.001)
	assert.InDelta(t, 20, profile["technical"], 0.001)
}

func TestRecommendations_Ordering(t *testing.T) {
	uc, metrics := newTestUsecase(t, advisorCatalogYAML)
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q1", Response: "bold"})
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q2", Response: "high"})

	matches, err := uc.Recommendations(context.Background(), "s1", 0)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, "fit-style", matches[0].TemplateID)
	assert.InDelta(t, 80, matches[0].Score, 0.001)
	assert.Equal(t, "fit-tech", matches[1].TemplateID)
	assert.InDelta(t, 70, matches[1].Score, 0.001)
	assert.Equal(t, 1, metrics.recommendations)
}

func TestRecommendations_Limit(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)

	matches, err := uc.Recommendations(context.Background(), "s1", 1)
	require.NoError(t, err)

	assert.Len(t, matches, 1)
}

func TestRecommendations_NegativeLimit(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)

	_, err := uc.Recommendations(context.Background(), "s1", -1)

	require.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestRecommendations_EmptySessionStillRanks(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)

	matches, err := uc.Recommendations(context.Background(), "never-seen", 0)
	require.NoError(t, err)

	assert.Len(t, matches, 2)
}

func TestRecommendations_NoTemplates(t *testing.T) {
	uc, _ := newTestUsecase(t, emptyTemplatesYAML)

	_, err := uc.Recommendations(context.Background(), "s1", 0)

	require.ErrorIs(t, err, entity.ErrNoTemplates)
}

func TestImplementationPlan_TopMatchByDefault(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q1", Response: "bold"})
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q2", Response: "high"})

	plan, err := uc.ImplementationPlan(context.Background(), "s1", "")
	require.NoError(t, err)

	assert.Equal(t, "fit-style", plan.TemplateID)
	// No weaknesses at full alignment, so only the two rollout steps remain.
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, "Customize the template", plan.Steps[0].Title)
}

func TestImplementationPlan_ExplicitTemplate(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q1", Response: "bold"})
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q2", Response: "high"})

	plan, err := uc.ImplementationPlan(context.Background(), "s1", "fit-tech")
	require.NoError(t, err)

	assert.Equal(t, "fit-tech", plan.TemplateID)
	assert.Equal(t, "Fit Tech", plan.TemplateName)
}

func TestImplementationPlan_UnknownTemplate(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)

	_, err := uc.ImplementationPlan(context.Background(), "s1", "no-such-template")

	require.ErrorIs(t, err, entity.ErrTemplateNotFound)
}

func TestImplementationPlan_WeakDimensionAddsRemediation(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q1", Response: "bold"})
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q2", Response: "low"})

	plan, err := uc.ImplementationPlan(context.Background(), "s1", "fit-style")
	require.NoError(t, err)

	// Technical similarity 40 is at the weakness threshold, and the profile
	// technical score 20 is under the floor, so difficulty bumps.
	assert.Equal(t, entity.DifficultyMedium, plan.Difficulty)
	require.Len(t, plan.Steps, 3)
	assert.Equal(t, "Simplify advanced features", plan.Steps[0].Title)
	assert.Equal(t, 1, plan.Steps[0].Order)
}

func TestExportPlan_Markdown(t *testing.T) {
	uc, metrics := newTestUsecase(t, advisorCatalogYAML)
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q1", Response: "bold"})

	exported, err := uc.ExportPlan(context.Background(), "s1", "", entity.FormatMarkdown)
	require.NoError(t, err)

	assert.Equal(t, "text/markdown; charset=utf-8", exported.ContentType)
	assert.Equal(t, "implementation-plan-fit-style.md", exported.Filename)
	assert.Contains(t, string(exported.Content), "Fit Style")
	assert.Equal(t, 1, metrics.exports["markdown"])
}

func TestExportPlan_PDF(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)

	exported, err := uc.ExportPlan(context.Background(), "s1", "", entity.FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", exported.ContentType)
	assert.Equal(t, "implementation-plan-fit-style.pdf", exported.Filename)
	assert.NotEmpty(t, exported.Content)
}

func TestExportPlan_InvalidFormat(t *testing.T) {
	uc, metrics := newTestUsecase(t, advisorCatalogYAML)

	_, err := uc.ExportPlan(context.Background(), "s1", "", entity.ExportFormat("xlsx"))

	require.ErrorIs(t, err, entity.ErrInvalidParameter)
	assert.Empty(t, metrics.exports)
}

func TestClearSession_ResetsProgressAndProfile(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q1", Response: "bold"})
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q3", Response: "launch deck"})

	uc.ClearSession(context.Background(), "s1")

	progress := uc.Progress(context.Background(), "s1")
	assert.Zero(t, progress.AnsweredCount)
	assert.Equal(t, entity.Profile{"style": 0, "technical": 0}, uc.ProfileScore(context.Background(), "s1"))
}

func TestProgress_CountsUnmappedQuestions(t *testing.T) {
	uc, _ := newTestUsecase(t, advisorCatalogYAML)
	submit(t, uc, "s1", &entity.SubmitResponseRequest{QuestionID: "q3", Response: "launch deck"})

	progress := uc.Progress(context.Background(), "s1")

	// q3 maps to no dimension: it moves progress but not the profile.
	assert.Equal(t, 1, progress.AnsweredCount)
	assert.Equal(t, 3, progress.TotalCount)
	assert.InDelta(t, 1.0/3.0, progress.Overall, 0.001)
	assert.Equal(t, entity.Profile{"style": 0, "technical": 0}, uc.ProfileScore(context.Background(), "s1"))
}
