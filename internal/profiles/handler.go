package profiles

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

// Handler wires HTTP endpoints for profile onboarding and administration.
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
	return &Handler{
		logger:    logger,
		service:   service,
		guard:     guard,
		clubID:    clubID,
		metrics:   metrics,
		validator: validator.New(),
	}
}

// MountRoutes registers profile routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/profile", h.createProfile)
	r.Get("/profile", h.getProfile)

	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireCapability(access.CapManageMembers))
		r.Get("/admin/pending-coaches", h.listPendingCoaches)
		r.Post("/admin/members/{userID}/promote", h.promote)
	})
}

type createProfileRequest struct {
	Role      string `json:"role" validate:"required"`
	ClubID    string `json:"clubId"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required,len=2,alpha"`
}

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", shared.UserSafeMessage(shared.ErrValidation))
		return
	}
	role, err := access.ParseRole(req.Role)
	if err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	clubID := req.ClubID
	if clubID == "" {
		clubID = h.clubID
	}

	profile, err := h.service.CreateProfile(r.Context(), CreateProfileInput{
		Role:      role,
		ClubID:    clubID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		City:      req.City,
		State:     req.State,
	})
	if err != nil {
		h.logger.Info("create profile rejected", slog.String("club_id", clubID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.metrics.RecordProfileCreated()
	httpx.JSON(w, http.StatusCreated, profile)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	clubID := r.URL.Query().Get("clubId")
	if clubID == "" {
		clubID = h.clubID
	}
	records, err := h.service.GetProfiles(r.Context(), clubID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, records)
}

func (h *Handler) listPendingCoaches(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.PendingCoaches(r.Context(), h.clubID)
	if err != nil {
		h.logger.Error("list pending coaches", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, records)
}

func (h *Handler) promote(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	if err := h.service.Promote(r.Context(), userID, h.clubID); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"role": string(access.RoleCoach)})
}
