package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chastucker/wrestling-club/internal/shared"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a check-in. The unique constraint on
// (user_id, practice_id) maps to shared.ErrDuplicate.
func (r *Repository) Create(ctx context.Context, c CheckIn) (CheckIn, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if c.CheckedInAt.IsZero() {
		c.CheckedInAt = now
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.pool.Exec(ctx, `
		INSERT INTO attendance (id, user_id, practice_id, club_id, checked_in_at, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`,
		c.ID, c.UserID, c.PracticeID, c.ClubID, c.CheckedInAt, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return CheckIn{}, shared.ErrDuplicate
		}
		return CheckIn{}, err
	}
	return c, nil
}

// ListByPractice returns check-ins for a practice ordered by time.
func (r *Repository) ListByPractice(ctx context.Context, practiceID string) ([]CheckIn, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, practice_id, club_id, checked_in_at, COALESCE(notes, ''), created_at, updated_at
		FROM attendance WHERE practice_id = $1 ORDER BY checked_in_at`,
		practiceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CheckIn
	for rows.Next() {
		var c CheckIn
		if err := rows.Scan(&c.ID, &c.UserID, &c.PracticeID, &c.ClubID, &c.CheckedInAt, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListByUser returns a user's check-ins for a club, most recent first.
func (r *Repository) ListByUser(ctx context.Context, userID, clubID string) ([]CheckIn, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, practice_id, club_id, checked_in_at, COALESCE(notes, ''), created_at, updated_at
		FROM attendance WHERE user_id = $1 AND club_id = $2 ORDER BY checked_in_at DESC`,
		userID, clubID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CheckIn
	for rows.Next() {
		var c CheckIn
		if err := rows.Scan(&c.ID, &c.UserID, &c.PracticeID, &c.ClubID, &c.CheckedInAt, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
