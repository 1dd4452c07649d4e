package schedule

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/chastucker/wrestling-club/internal/access"
	"github.com/chastucker/wrestling-club/internal/platform/httpx"
	"github.com/chastucker/wrestling-club/internal/shared"
)

// Handler wires HTTP endpoints for sessions and practices.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	guard     access.Guard
	clubID    string
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, guard access.Guard, clubID string) *Handler {
	return &Handler{logger: logger, service: service, guard: guard, clubID: clubID, validator: validator.New()}
}

// MountRoutes registers schedule routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sessions", h.listSessions)
	r.Get("/sessions/{sessionID}/practices", h.listPractices)

	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireCapability(access.CapManageSessions))
		r.Post("/sessions", h.createSession)
		r.Post("/sessions/{sessionID}/practices", h.createPractice)
	})
}

type createSessionRequest struct {
	Name             string  `json:"name" validate:"required"`
	Description      string  `json:"description"`
	StartDate        string  `json:"startDate" validate:"required"`
	EndDate          string  `json:"endDate" validate:"required"`
	RepeatPattern    string  `json:"repeatPattern" validate:"required"`
	PricePerSession  float64 `json:"pricePerSession" validate:"gte=0"`
	PricePerPractice float64 `json:"pricePerPractice" validate:"gte=0"`
	MaxEnrollments   int     `json:"maxEnrollments" validate:"gt=0"`
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	pattern, err := ParseRepeatPattern(req.RepeatPattern)
	if err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}

	session, err := h.service.CreateSession(r.Context(), Session{
		ClubID:           h.clubID,
		Name:             req.Name,
		Description:      req.Description,
		StartDate:        start,
		EndDate:          end,
		RepeatPattern:    pattern,
		PricePerSession:  req.PricePerSession,
		PricePerPractice: req.PricePerPractice,
		MaxEnrollments:   req.MaxEnrollments,
	})
	if err != nil {
		h.logger.Info("create session rejected", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, session)
}

type sessionListResponse struct {
	Items      []Session         `json:"items"`
	Pagination shared.Pagination `json:"pagination"`
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.ListSessions(r.Context(), h.clubID)
	if err != nil {
		h.logger.Error("list sessions", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if sessions == nil {
		sessions = []Session{}
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("perPage"))
	pagination := shared.NewPagination(page, perPage, len(sessions))
	start := (pagination.Page - 1) * pagination.PerPage
	if start > len(sessions) {
		start = len(sessions)
	}
	end := start + pagination.PerPage
	if end > len(sessions) {
		end = len(sessions)
	}
	httpx.JSON(w, http.StatusOK, sessionListResponse{Items: sessions[start:end], Pagination: pagination})
}

type createPracticeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
	Location    string `json:"location" validate:"required"`
	MaxCapacity int    `json:"maxCapacity" validate:"gt=0"`
}

func (h *Handler) createPractice(w http.ResponseWriter, r *http.Request) {
	var req createPracticeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}

	practice, err := h.service.CreatePractice(r.Context(), Practice{
		SessionID:   chi.URLParam(r, "sessionID"),
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Location:    req.Location,
		MaxCapacity: req.MaxCapacity,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, practice)
}

func (h *Handler) listPractices(w http.ResponseWriter, r *http.Request) {
	practices, err := h.service.ListPractices(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if practices == nil {
		practices = []Practice{}
	}
	httpx.JSON(w, http.StatusOK, practices)
}
