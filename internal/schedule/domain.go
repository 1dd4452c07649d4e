package schedule

import (
	"fmt"
	"time"
)

// RepeatPattern describes how a training session recurs.
type RepeatPattern string

const (
	RepeatNone     RepeatPattern = "none"
	RepeatWeekly   RepeatPattern = "weekly"
	RepeatBiweekly RepeatPattern = "biweekly"
	RepeatMonthly  RepeatPattern = "monthly"
)

// ParseRepeatPattern validates a raw repeat pattern value.
func ParseRepeatPattern(raw string) (RepeatPattern, error) {
	switch RepeatPattern(raw) {
	case RepeatNone, RepeatWeekly, RepeatBiweekly, RepeatMonthly:
		return RepeatPattern(raw), nil
	}
	return "", fmt.Errorf("schedule: unknown repeat pattern %q", raw)
}

// Session is a club training block that parents and wrestlers enroll in.
type Session struct {
	ID               string        `json:"id"`
	ClubID           string        `json:"clubId"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	StartDate        time.Time     `json:"startDate"`
	EndDate          time.Time     `json:"endDate"`
	RepeatPattern    RepeatPattern `json:"repeatPattern"`
	PricePerSession  float64       `json:"pricePerSession"`
	PricePerPractice float64       `json:"pricePerPractice"`
	MaxEnrollments   int           `json:"maxEnrollments"`
	CreatedBy        string        `json:"createdBy"`
	UpdatedBy        string        `json:"updatedBy"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// Practice is a single dated occurrence inside a session.
type Practice struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	ClubID      string    `json:"clubId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Location    string    `json:"location"`
	MaxCapacity int       `json:"maxCapacity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
