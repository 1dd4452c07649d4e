package attendance

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/chastucker/wrestling-club/internal/access"
	"github.com/chastucker/wrestling-club/internal/observability"
	"github.com/chastucker/wrestling-club/internal/platform/httpx"
	"github.com/chastucker/wrestling-club/internal/shared"
)

// Handler wires HTTP endpoints for practice check-ins.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	guard     access.Guard
	clubID    string
	metrics   *observability.Metrics
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, guard access.Guard, clubID string, metrics *observability.Metrics) *Handler {
	return &Handler{logger: logger, service: service, guard: guard, clubID: clubID, metrics: metrics, validator: validator.New()}
}

// MountRoutes registers attendance routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireCapability(access.CapCheckIn))
		r.Post("/check-ins", h.checkIn)
		r.Get("/check-ins", h.history)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireCapability(access.CapViewEvents))
		r.Get("/practices/{practiceID}/check-ins", h.roster)
	})
}

type checkInRequest struct {
	PracticeID string `json:"practiceId" validate:"required"`
	UserID     string `json:"userId"`
	Notes      string `json:"notes"`
}

func (h *Handler) checkIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}

	checkIn, err := h.service.CheckIn(r.Context(), CheckInInput{
		PracticeID: req.PracticeID,
		UserID:     req.UserID,
		Notes:      req.Notes,
	})
	if err != nil {
		h.logger.Info("check-in rejected", slog.String("practice_id", req.PracticeID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.metrics.RecordCheckIn()
	httpx.JSON(w, http.StatusCreated, checkIn)
}

func (h *Handler) roster(w http.ResponseWriter, r *http.Request) {
	checkIns, err := h.service.Roster(r.Context(), chi.URLParam(r, "practiceID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if checkIns == nil {
		checkIns = []CheckIn{}
	}
	httpx.JSON(w, http.StatusOK, checkIns)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	checkIns, err := h.service.History(r.Context(), h.clubID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if checkIns == nil {
		checkIns = []CheckIn{}
	}
	httpx.JSON(w, http.StatusOK, checkIns)
}
