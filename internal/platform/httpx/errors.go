package httpx

import (
	"errors"
	"net/http"

	"github.com/chastucker/wrestling-club/internal/shared"
)

// RespondError maps domain errors to HTTP responses using RFC7807.
// Authentication and duplicate-profile failures surface with their contract
// messages; anything unrecognized collapses to a bare 500.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotAuthenticated):
		Problem(w, http.StatusUnauthorized, "Not Authenticated", err.Error())
	case errors.Is(err, shared.ErrDuplicateProfile):
		Problem(w, http.StatusConflict, "Duplicate", err.Error())
	case errors.Is(err, shared.ErrDuplicate):
		Problem(w, http.StatusConflict, "Duplicate", err.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Problem(w, http.StatusUnauthorized, "Invalid Credentials", err.Error())
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
