package attendance

import "time"

// CheckIn records that a wrestler attended a practice. One check-in per
// (user, practice); duplicates are a conflict, not an update.
type CheckIn struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	PracticeID  string    `json:"practiceId"`
	ClubID      string    `json:"clubId"`
	CheckedInAt time.Time `json:"checkedInAt"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
