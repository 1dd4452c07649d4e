package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/chastucker/wrestling-club/internal/auth"
)

// SessionSweeper deletes expired auth session audit rows.
type SessionSweeper struct {
	Service *auth.Service
	Logger  *slog.Logger
}

// Run removes session rows whose expiry has passed.
func (s SessionSweeper) Run(ctx context.Context) error {
	removed, err := s.Service.SweepExpiredSessions(ctx, time.Now())
	if err != nil {
		return err
	}
	if removed > 0 {
		s.Logger.Info("expired sessions swept", slog.Int64("removed", removed))
	}
	return nil
}
