package advisor

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ikjoobang/ppt-designer/internal/catalog"
	"github.com/ikjoobang/ppt-designer/internal/entity"
	"github.com/ikjoobang/ppt-designer/internal/scoring"
	"go.uber.org/zap"
)

// AdvisorUsecase implements the questionnaire and recommendation business
// logic on top of the immutable catalog and the session response store.
type AdvisorUsecase struct {
	catalog   *catalog.Catalog
	store     ResponseStore
	formatter FormatterFactory
	metrics   Metrics
}

// NewUsecase creates a new advisor use case
func NewUsecase(cat *catalog.Catalog, store ResponseStore, formatter FormatterFactory, metrics Metrics) *AdvisorUsecase {
	return &AdvisorUsecase{
		catalog:   cat,
		store:     store,
		formatter: formatter,
		metrics:   metrics,
	}
}

// Questions returns the full questionnaire in catalog order.
func (uc *AdvisorUsecase) Questions(ctx context.Context) []entity.Question {
	return uc.catalog.Questions()
}

// QuestionsByPhase returns one phase's questions in catalog order.
func (uc *AdvisorUsecase) QuestionsByPhase(ctx context.Context, phase int) ([]entity.Question, error) {
	questions, err := uc.catalog.QuestionsByPhase(phase)
	if err != nil {
		return nil, fmt.Errorf("questions by phase: %w", err)
	}
	return questions, nil
}

// SubmitResponse validates and stores one answer, overwriting any earlier
// answer for the same question.
func (uc *AdvisorUsecase) SubmitResponse(ctx context.Context, sessionID string, req *entity.SubmitResponseRequest) (*entity.Response, error) {
	resp, err := uc.store.Submit(ctx, sessionID, req)
	if err != nil {
		return nil, fmt.Errorf("submit response: %w", err)
	}

	uc.metrics.RecordResponseSubmitted()
	ctxzap.Info(ctx, "response stored", zap.String("question_id", resp.QuestionID))

	return resp, nil
}

// ClearSession destroys every response of the session.
func (uc *AdvisorUsecase) ClearSession(ctx context.Context, sessionID string) {
	uc.store.Clear(ctx, sessionID)
	ctxzap.Info(ctx, "session cleared")
}

// ProfileScore derives the dimension profile from the session's responses.
// An unanswered session yields an all-zero profile, not an error.
func (uc *AdvisorUsecase) ProfileScore(ctx context.Context, sessionID string) entity.Profile {
	return scoring.ComputeProfile(uc.store.Snapshot(ctx, sessionID), uc.catalog)
}

// Recommendations matches the session's profile against the template
// catalog. limit caps the list; zero means everything.
func (uc *AdvisorUsecase) Recommendations(ctx context.Context, sessionID string, limit int) ([]entity.MatchResult, error) {
	if limit < 0 {
		return nil, fmt.Errorf("limit must not be negative: %w", entity.ErrInvalidParameter)
	}

	matches, err := uc.matches(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}

	uc.metrics.RecordRecommendationsServed()
	ctxzap.Info(ctx, "recommendations computed", zap.Int("count", len(matches)))

	return matches, nil
}

// ImplementationPlan prepares the plan for one template, or for the top
// match when templateID is empty.
func (uc *AdvisorUsecase) ImplementationPlan(ctx context.Context, sessionID, templateID string) (*entity.PlanDocument, error) {
	match, err := uc.matchForTemplate(ctx, sessionID, templateID)
	if err != nil {
		return nil, err
	}

	plan := scoring.GeneratePlan(match, uc.catalog)
	ctxzap.Info(ctx, "implementation plan generated",
		zap.String("template_id", plan.TemplateID),
		zap.Int("steps", len(plan.Steps)),
	)

	return plan, nil
}

// ExportPlan renders the implementation plan in the requested format.
func (uc *AdvisorUsecase) ExportPlan(ctx context.Context, sessionID, templateID string, format entity.ExportFormat) (*entity.ExportedPlan, error) {
	plan, err := uc.ImplementationPlan(ctx, sessionID, templateID)
	if err != nil {
		return nil, err
	}

	fmtr, err := uc.formatter.Create(format)
	if err != nil {
		return nil, fmt.Errorf("create formatter: %w", err)
	}

	content, err := fmtr.Format(plan)
	if err != nil {
		return nil, fmt.Errorf("format plan: %w", err)
	}

	uc.metrics.RecordPlanExported(string(format))
	ctxzap.Info(ctx, "plan exported",
		zap.String("format", string(format)),
		zap.Int("bytes", len(content)),
	)

	return &entity.ExportedPlan{
		Content:     content,
		ContentType: fmtr.ContentType(),
		Filename:    fmt.Sprintf("implementation-plan-%s%s", plan.TemplateID, fmtr.FileExtension()),
	}, nil
}

// Progress reports questionnaire completion for the session.
func (uc *AdvisorUsecase) Progress(ctx context.Context, sessionID string) entity.Progress {
	return scoring.ComputeProgress(uc.store.Snapshot(ctx, sessionID), uc.catalog)
}

func (uc *AdvisorUsecase) matches(ctx context.Context, sessionID string) ([]entity.MatchResult, error) {
	profile := scoring.ComputeProfile(uc.store.Snapshot(ctx, sessionID), uc.catalog)

	matches, err := scoring.MatchTemplates(profile, uc.catalog)
	if err != nil {
		return nil, fmt.Errorf("match templates: %w", err)
	}

	return matches, nil
}

func (uc *AdvisorUsecase) matchForTemplate(ctx context.Context, sessionID, templateID string) (*entity.MatchResult, error) {
	if templateID != "" {
		if _, ok := uc.catalog.TemplateByID(templateID); !ok {
			return nil, fmt.Errorf("template %q: %w", templateID, entity.ErrTemplateNotFound)
		}
	}

	matches, err := uc.matches(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if templateID == "" {
		return &matches[0], nil
	}

	for i := range matches {
		if matches[i].TemplateID == templateID {
			return &matches[i], nil
		}
	}

	// TemplateByID succeeded above, so the id is always in the match list.
	return nil, fmt.Errorf("template %q: %w", templateID, entity.ErrTemplateNotFound)
}
