package tournaments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

const tournamentColumns = `id, club_id, name, description, start_date, end_date, location,
	tournament_url, type, created_at, updated_at`

// Create inserts a new tournament.
func (r *Repository) Create(ctx context.Context, t Tournament) (Tournament, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tournaments (`+tournamentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		t.ID, t.ClubID, t.Name, t.Description, t.StartDate, t.EndDate, t.Location,
		t.TournamentURL, string(t.Type), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return Tournament{}, err
	}
	return t, nil
}

// List returns a club's tournaments ordered by start date.
func (r *Repository) List(ctx context.Context, clubID string) ([]Tournament, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+tournamentColumns+` FROM tournaments WHERE club_id = $1 ORDER BY start_date`,
		clubID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Tournament
	for rows.Next() {
		var t Tournament
		var typ string
		if err := rows.Scan(&t.ID, &t.ClubID, &t.Name, &t.Description, &t.StartDate, &t.EndDate,
			&t.Location, &t.TournamentURL, &typ, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Type = Type(typ)
		out = append(out, t)
	}
	return out, rows.Err()
}

// Get fetches a tournament by ID.
func (r *Repository) Get(ctx context.Context, id string) (Tournament, error) {
	var t Tournament
	var typ string
	err := r.pool.QueryRow(ctx,
		`SELECT `+tournamentColumns+` FROM tournaments WHERE id = $1`, id,
	).Scan(&t.ID, &t.ClubID, &t.Name, &t.Description, &t.StartDate, &t.EndDate,
		&t.Location, &t.TournamentURL, &typ, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Tournament{}, shared.ErrNotFound
		}
		return Tournament{}, err
	}
	t.Type = Type(typ)
	return t, nil
}

// CreateInterest records a user's interest in a tournament. The unique
// constraint on (tournament_id, user_id) rejects a second registration.
func (r *Repository) CreateInterest(ctx context.Context, in Interest) (Interest, error) {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tournament_interests (id, tournament_id, user_id, weight_class, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`,
		in.ID, in.TournamentID, in.UserID, in.WeightClass, in.CreatedAt, in.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Interest{}, shared.ErrDuplicate
		}
		return Interest{}, err
	}
	return in, nil
}

// ListInterests returns interests for a tournament, oldest first.
func (r *Repository) ListInterests(ctx context.Context, tournamentID string) ([]Interest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, tournament_id, user_id, COALESCE(weight_class, ''), created_at, updated_at
		FROM tournament_interests WHERE tournament_id = $1 ORDER BY created_at`,
		tournamentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Interest
	for rows.Next() {
		var in Interest
		if err := rows.Scan(&in.ID, &in.TournamentID, &in.UserID, &in.WeightClass, &in.CreatedAt, &in.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}
