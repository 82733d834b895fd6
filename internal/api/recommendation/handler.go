package recommendation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ikjoobang/ppt-designer/internal/api/middleware"
	"github.com/ikjoobang/ppt-designer/internal/entity"
	"github.com/ikjoobang/ppt-designer/internal/pkg/logger"
	"github.com/ikjoobang/ppt-designer/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	usecase RecommendationUsecase
}

func NewHandler(usecase RecommendationUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// GetProfileScore handles GET /api/profile/score
func (h *Handler) GetProfileScore(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetProfileScore")

	profile := h.usecase.ProfileScore(ctx, middleware.SessionID(ctx))

	ctxzap.Debug(ctx, "profile computed", zap.Int("dimensions", len(profile)))
	response.Success(w, profile)
}

// GetRecommendations handles GET /api/recommendations
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetRecommendations")

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			h.respondError(ctx, w, http.StatusBadRequest, response.ReasonValidation, "limit must be a number", err)
			return
		}
		limit = parsed
	}

	matches, err := h.usecase.Recommendations(ctx, middleware.SessionID(ctx), limit)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "recommendations listed successfully", zap.Int("count", len(matches)))
	response.Success(w, matches)
}

// GetImplementationPlan handles GET /api/implementation-plan
func (h *Handler) GetImplementationPlan(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetImplementationPlan")

	templateID := r.URL.Query().Get("template_id")
	if templateID != "" {
		ctx = logger.AddFields(ctx, zap.String("template_id", templateID))
	}

	plan, err := h.usecase.ImplementationPlan(ctx, middleware.SessionID(ctx), templateID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "implementation plan generated successfully", zap.Int("steps", len(plan.Steps)))
	response.Success(w, plan)
}

// ExportImplementationPlan handles GET /api/implementation-plan/export
func (h *Handler) ExportImplementationPlan(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExportImplementationPlan")

	templateID := r.URL.Query().Get("template_id")
	if templateID != "" {
		ctx = logger.AddFields(ctx, zap.String("template_id", templateID))
	}

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = "markdown"
	}

	format := entity.ExportFormat(formatParam)
	if !format.IsValid() {
		ctxzap.Warn(ctx, "invalid format parameter", zap.String("format", formatParam))
		h.respondError(ctx, w, http.StatusBadRequest, response.ReasonValidation, "invalid format parameter",
			fmt.Errorf("format must be one of: markdown, docx, pdf"))
		return
	}

	ctx = logger.AddFields(ctx, zap.String("format", string(format)))

	exported, err := h.usecase.ExportPlan(ctx, middleware.SessionID(ctx), templateID, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "implementation plan exported successfully", zap.Int("bytes", len(exported.Content)))
	response.File(w, exported.ContentType, exported.Filename, exported.Content)
}

// Helper methods
func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, reason, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.Error(w, status, reason, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrTemplateNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, response.ReasonNotFound, "template not found", err)
	} else if errors.Is(err, entity.ErrNoTemplates) {
		h.respondError(ctx, w, http.StatusInternalServerError, response.ReasonNoTemplates, "no templates available", err)
	} else if errors.Is(err, entity.ErrInvalidParameter) {
		h.respondError(ctx, w, http.StatusBadRequest, response.ReasonValidation, "invalid parameter", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, response.ReasonInternal, "internal server error", err)
	}
}
