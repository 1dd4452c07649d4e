package shared

import "errors"

// Sentinel errors shared across feature packages. The duplicate-profile and
// not-authenticated messages are part of the client contract and must stay
// byte-for-byte stable.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthenticated indicates a backend operation requiring caller
	// identity was invoked without one.
	ErrNotAuthenticated = errors.New("User not found")
	// ErrDuplicateProfile indicates a profile already exists for the
	// (user, club) pair. Clients treat this as "already set up", not as a
	// failure to retry.
	ErrDuplicateProfile = errors.New("Profile already exists")
	// ErrDuplicate indicates a record that must be unique already exists.
	ErrDuplicate = errors.New("already exists")
	// ErrInvalidCredentials indicates sign-in failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation indicates a malformed request payload.
	ErrValidation = errors.New("validation failed")
)

// UserSafeMessage returns a message suitable for showing to end users.
// Unknown errors collapse to a generic message so internals never leak.
func UserSafeMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrNotAuthenticated),
		errors.Is(err, ErrDuplicateProfile),
		errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrValidation):
		return err.Error()
	}
	return "something went wrong"
}
