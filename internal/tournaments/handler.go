package tournaments

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/chastucker/wrestling-club/internal/access"
	"github.com/chastucker/wrestling-club/internal/platform/httpx"
	"github.com/chastucker/wrestling-club/internal/shared"
)

// Handler wires HTTP endpoints for tournaments and interest registration.
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

// MountRoutes registers tournament routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/tournaments", h.list)

	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireCapability(access.CapManageTournaments))
		r.Post("/tournaments", h.create)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireCapability(access.CapShowInterest))
		r.Post("/tournaments/{tournamentID}/interest", h.registerInterest)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireCapability(access.CapManageTournaments, access.CapViewEvents))
		r.Get("/tournaments/{tournamentID}/interests", h.listInterests)
	})
}

type createTournamentRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate" validate:"required"`
	Location      string `json:"location" validate:"required"`
	TournamentURL string `json:"tournamentUrl" validate:"omitempty,url"`
	Type          string `json:"type" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTournamentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	typ, err := ParseType(req.Type)
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

	tournament, err := h.service.Create(r.Context(), Tournament{
		ClubID:        h.clubID,
		Name:          req.Name,
		Description:   req.Description,
		StartDate:     start,
		EndDate:       end,
		Location:      req.Location,
		TournamentURL: req.TournamentURL,
		Type:          typ,
	})
	if err != nil {
		h.logger.Info("create tournament rejected", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, tournament)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.service.List(r.Context(), h.clubID)
	if err != nil {
		h.logger.Error("list tournaments", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if tournaments == nil {
		tournaments = []Tournament{}
	}
	httpx.JSON(w, http.StatusOK, tournaments)
}

type interestRequest struct {
	WeightClass string `json:"weightClass"`
}

func (h *Handler) registerInterest(w http.ResponseWriter, r *http.Request) {
	var req interestRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	interest, err := h.service.RegisterInterest(r.Context(), chi.URLParam(r, "tournamentID"), req.WeightClass)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, interest)
}

func (h *Handler) listInterests(w http.ResponseWriter, r *http.Request) {
	interests, err := h.service.ListInterests(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if interests == nil {
		interests = []Interest{}
	}
	httpx.JSON(w, http.StatusOK, interests)
}
