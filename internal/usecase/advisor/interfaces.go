package advisor

import (
	"context"

	"github.com/ikjoobang/ppt-designer/internal/entity"
	"github.com/ikjoobang/ppt-designer/internal/pkg/formatter"
)

// ResponseStore keeps per-session questionnaire responses.
type ResponseStore interface {
	Submit(ctx context.Context, sessionID string, req *entity.SubmitResponseRequest) (*entity.Response, error)
	Snapshot(ctx context.Context, sessionID string) map[string]entity.Response
	Clear(ctx context.Context, sessionID string)
}

// FormatterFactory creates one plan exporter per output format.
type FormatterFactory interface {
	Create(format entity.ExportFormat) (formatter.Formatter, error)
}

// Metrics counts domain events.
type Metrics interface {
	RecordResponseSubmitted()
	RecordRecommendationsServed()
	RecordPlanExported(format string)
}
