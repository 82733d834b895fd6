package recommendation

import (
	"context"

	"github.com/ikjoobang/ppt-designer/internal/entity"
)

type RecommendationUsecase interface {
	ProfileScore(ctx context.Context, sessionID string) entity.Profile
	Recommendations(ctx context.Context, sessionID string, limit int) ([]entity.MatchResult, error)
	ImplementationPlan(ctx context.Context, sessionID, templateID string) (*entity.PlanDocument, error)
	ExportPlan(ctx context.Context, sessionID, templateID string, format entity.ExportFormat) (*entity.ExportedPlan, error)
}
