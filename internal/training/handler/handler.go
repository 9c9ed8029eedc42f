package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"museum/internal/training/models"
	"museum/internal/training/service"
	"museum/pkg/platform/httputil"
	"museum/pkg/requestcontext"
)

const registeredMessage = "Training registration completed successfully! Confirmation email has been sent."

// Service defines the training operations used by the HTTP layer.
type Service interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Registration, error)
	Check(ctx context.Context, email string) (*models.Existing, error)
	Stats(ctx context.Context) (*models.Stats, []models.TrackCount, error)
	List(ctx context.Context) ([]*models.Registration, error)
	Get(ctx context.Context, id int64) (*models.Registration, error)
	Update(ctx context.Context, id int64, req *models.RegisterRequest) (*models.Registration, error)
	Delete(ctx context.Context, id int64) (*models.Registration, error)
}

type Handler struct {
	training Service
	logger   *slog.Logger
}

func New(training Service, logger *slog.Logger) *Handler {
	return &Handler{training: training, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/api/training", func(r chi.Router) {
		r.Post("/register", h.HandleRegister)
		r.Post("/check", h.HandleCheck)
		r.Get("/stats", h.HandleStats)
		r.Get("/", h.HandleList)
		r.Get("/{id}", h.HandleGet)
		r.Put("/{id}", h.HandleUpdate)
		r.Delete("/{id}", h.HandleDelete)
	})
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.RegisterRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	reg, err := h.training.Register(ctx, req)
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "register trainee", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.RegisteredResponse{
		Success:      true,
		Message:      registeredMessage,
		Registration: reg.Summary(),
	})
}

// HandleCheck lets the form warn about an existing registration before
// the applicant fills everything in.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.CheckRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	existing, err := h.training.Check(ctx, req.Email)
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "check trainee", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.CheckResponse{
		Success: true,
		Exists:  existing != nil,
		User:    existing,
	})
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	st, tracks, err := h.training.Stats(r.Context())
	if err != nil {
		httputil.WriteServiceError(w, h.logger, r.Context(), "training stats", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.StatsResponse{Success: true, Stats: st, TrainingTracks: tracks})
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	regs, err := h.training.List(r.Context())
	h.respond(w, r, "list trainees", regs, err)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	reg, err := h.training.Get(r.Context(), id)
	h.respond(w, r, "get trainee", reg, err)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.RegisterRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	reg, err := h.training.Update(ctx, id, req)
	h.respond(w, r, "update trainee", reg, err)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	reg, err := h.training.Delete(r.Context(), id)
	h.respond(w, r, "delete trainee", reg, err)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.WriteError(w, service.InvalidID())
		return 0, false
	}
	return id, true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, op string, data any, err error) {
	if err != nil {
		httputil.WriteServiceError(w, h.logger, r.Context(), op, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.DataResponse{Success: true, Data: data})
}
