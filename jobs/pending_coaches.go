package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/chastucker/wrestling-club/internal/profiles"
)

// PendingCoachChecker runs the reminder scan over profile records.
type PendingCoachChecker struct {
	Service *profiles.Service
	ClubID  string
	Logger  *slog.Logger
	// MaxAge is how long a pending_coach profile may sit before it is
	// flagged for admin attention.
	MaxAge time.Duration
}

// Run logs every coach signup that has waited past MaxAge for promotion.
// The admin dashboard lists the same records; the job makes sure stalled
// signups show up in the logs even when nobody opens that screen.
func (c PendingCoachChecker) Run(ctx context.Context) error {
	pending, err := c.Service.PendingCoaches(ctx, c.ClubID)
	if err != nil {
		return err
	}
	cutoff := time.Now().Add(-c.MaxAge)
	stalled := 0
	for _, p := range pending {
		if p.CreatedAt.Before(cutoff) {
			stalled++
			c.Logger.Warn("coach signup awaiting promotion",
				slog.String("user_id", p.UserID),
				slog.Time("signed_up_at", p.CreatedAt),
			)
		}
	}
	c.Logger.Info("pending coach scan complete",
		slog.Int("pending", len(pending)),
		slog.Int("stalled", stalled),
	)
	return nil
}
