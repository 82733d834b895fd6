package questionnaire

import (
	"context"

	"github.com/ikjoobang/ppt-designer/internal/entity"
)

type QuestionnaireUsecase interface {
	Questions(ctx context.Context) []entity.Question
	QuestionsByPhase(ctx context.Context, phase int) ([]entity.Question, error)
	SubmitResponse(ctx context.Context, sessionID string, req *entity.SubmitResponseRequest) (*entity.Response, error)
	ClearSession(ctx context.Context, sessionID string)
	Progress(ctx context.Context, sessionID string) entity.Progress
}
