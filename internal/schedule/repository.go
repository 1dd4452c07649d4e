package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

const sessionColumns = `id, club_id, name, description, start_date, end_date, repeat_pattern,
	price_per_session, price_per_practice, max_enrollments, created_by, updated_by, created_at, updated_at`

// CreateSession inserts a new training session.
func (r *Repository) CreateSession(ctx context.Context, s Session) (Session, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	_, err := r.pool.Exec(ctx, `
		INSERT INTO club_sessions (`+sessionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		s.ID, s.ClubID, s.Name, s.Description, s.StartDate, s.EndDate, string(s.RepeatPattern),
		s.PricePerSession, s.PricePerPractice, s.MaxEnrollments, s.CreatedBy, s.UpdatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return Session{}, err
	}
	return s, nil
}

// ListSessions returns all sessions for a club ordered by start date.
func (r *Repository) ListSessions(ctx context.Context, clubID string) ([]Session, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+sessionColumns+` FROM club_sessions WHERE club_id = $1 ORDER BY start_date`,
		clubID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetSession fetches a session by ID.
func (r *Repository) GetSession(ctx context.Context, id string) (Session, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+sessionColumns+` FROM club_sessions WHERE id = $1`, id)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Session{}, shared.ErrNotFound
		}
		return Session{}, err
	}
	return s, nil
}

const practiceColumns = `id, session_id, club_id, name, description, date, start_time, end_time,
	location, max_capacity, created_at, updated_at`

// CreatePractice inserts a practice under a session.
func (r *Repository) CreatePractice(ctx context.Context, p Practice) (Practice, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.pool.Exec(ctx, `
		INSERT INTO practices (`+practiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.SessionID, p.ClubID, p.Name, p.Description, p.Date, p.StartTime, p.EndTime,
		p.Location, p.MaxCapacity, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return Practice{}, err
	}
	return p, nil
}

// ListPractices returns practices for a session ordered by date.
func (r *Repository) ListPractices(ctx context.Context, sessionID string) ([]Practice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+practiceColumns+` FROM practices WHERE session_id = $1 ORDER BY date`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Practice
	for rows.Next() {
		p, err := scanPractice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetPractice fetches a practice by ID.
func (r *Repository) GetPractice(ctx context.Context, id string) (Practice, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+practiceColumns+` FROM practices WHERE id = $1`, id)
	p, err := scanPractice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Practice{}, shared.ErrNotFound
		}
		return Practice{}, err
	}
	return p, nil
}

func scanSession(row pgx.Row) (Session, error) {
	var s Session
	var pattern string
	err := row.Scan(&s.ID, &s.ClubID, &s.Name, &s.Description, &s.StartDate, &s.EndDate, &pattern,
		&s.PricePerSession, &s.PricePerPractice, &s.MaxEnrollments, &s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return Session{}, err
	}
	s.RepeatPattern = RepeatPattern(pattern)
	return s, nil
}

func scanPractice(row pgx.Row) (Practice, error) {
	var p Practice
	err := row.Scan(&p.ID, &p.SessionID, &p.ClubID, &p.Name, &p.Description, &p.Date, &p.StartTime, &p.EndTime,
		&p.Location, &p.MaxCapacity, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Practice{}, err
	}
	return p, nil
}
