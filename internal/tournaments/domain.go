package tournaments

import (
	"fmt"
	"time"
)

// Type distinguishes dual meets from individual brackets.
type Type string

const (
	TypeDual       Type = "dual"
	TypeIndividual Type = "individual"
)

// ParseType validates a raw tournament type.
func ParseType(raw string) (Type, error) {
	switch Type(raw) {
	case TypeDual, TypeIndividual:
		return Type(raw), nil
	}
	return "", fmt.Errorf("tournaments: unknown type %q", raw)
}

// Tournament is a club-scoped competition entry on the calendar.
type Tournament struct {
	ID            string    `json:"id"`
	ClubID        string    `json:"clubId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Location      string    `json:"location"`
	TournamentURL string    `json:"tournamentUrl"`
	Type          Type      `json:"type"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Interest records that a wrestler (or their parent) wants to compete,
// optionally at a given weight class. One interest per (tournament, user).
type Interest struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournamentId"`
	UserID       string    `json:"userId"`
	WeightClass  string    `json:"weightClass,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
