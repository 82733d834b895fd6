package questionnaire

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ikjoobang/ppt-designer/internal/api/middleware"
	"github.com/ikjoobang/ppt-designer/internal/entity"
	"github.com/ikjoobang/ppt-designer/internal/pkg/logger"
	"github.com/ikjoobang/ppt-designer/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	usecase QuestionnaireUsecase
}

func NewHandler(usecase QuestionnaireUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// ListQuestions handles GET /api/questions
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListQuestions")

	questions := h.usecase.Questions(ctx)

	ctxzap.Info(ctx, "questions listed successfully", zap.Int("count", len(questions)))
	response.Success(w, toQuestionDTOs(questions))
}

// ListPhaseQuestions handles GET /api/questions/phase/{phase_id}
func (h *Handler) ListPhaseQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListPhaseQuestions")

	phaseParam := chi.URLParam(r, "phase_id")
	phase, err := strconv.Atoi(phaseParam)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, response.ReasonValidation, "phase_id must be a number", err)
		return
	}

	ctx = logger.AddFields(ctx, zap.Int("phase", phase))

	ctxzap.Debug(ctx, "listing phase questions")

	questions, err := h.usecase.QuestionsByPhase(ctx, phase)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "phase questions listed successfully", zap.Int("count", len(questions)))
	response.Success(w, toQuestionDTOs(questions))
}

// SubmitResponse handles POST /api/responses
func (h *Handler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SubmitResponse")

	var req entity.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, response.ReasonValidation, "invalid request body", err)
		return
	}

	if req.QuestionID == "" {
		h.respondError(ctx, w, http.StatusBadRequest, response.ReasonValidation, "question_id is required", nil)
		return
	}

	ctx = logger.AddFields(ctx, zap.String("question_id", req.QuestionID))

	resp, err := h.usecase.SubmitResponse(ctx, middleware.SessionID(ctx), &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "response submitted successfully")
	response.Success(w, resp)
}

// ClearSession handles DELETE /api/session
func (h *Handler) ClearSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ClearSession")

	h.usecase.ClearSession(ctx, middleware.SessionID(ctx))

	ctxzap.Info(ctx, "session cleared successfully")
	response.NoContent(w)
}

// GetProgress handles GET /api/progress
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetProgress")

	progress := h.usecase.Progress(ctx, middleware.SessionID(ctx))

	ctxzap.Debug(ctx, "progress computed",
		zap.Int("answered", progress.AnsweredCount),
		zap.Int("total", progress.TotalCount),
	)
	response.Success(w, progress)
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
	if errors.Is(err, entity.ErrPhaseNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, response.ReasonNotFound, "phase not found", err)
	} else if errors.Is(err, entity.ErrQuestionNotFound) || errors.Is(err, entity.ErrInvalidResponse) || errors.Is(err, entity.ErrOptionNotAllowed) || errors.Is(err, entity.ErrMissingAnswer) {
		h.respondError(ctx, w, http.StatusBadRequest, response.ReasonValidation, "invalid response", err)
	} else if errors.Is(err, entity.ErrInvalidParameter) {
		h.respondError(ctx, w, http.StatusBadRequest, response.ReasonValidation, "invalid parameter", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, response.ReasonInternal, "internal server error", err)
	}
}
