package profiles

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chastucker/wrestling-club/internal/access"
	"github.com/chastucker/wrestling-club/internal/platform/db"
	"github.com/chastucker/wrestling-club/internal/shared"
)

const uniqueViolation = "23505"

// Repository provides PostgreSQL backed persistence for profiles and role
// grants.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreateProfile inserts the profile and its initial role grant in one
// transaction. The unique constraint on (user_id, club_id) is the
// authoritative duplicate guard; a violation surfaces as
// shared.ErrDuplicateProfile.
func (r *Repository) CreateProfile(ctx context.Context, profile Profile) (Profile, error) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO profiles (id, user_id, club_id, role, first_name, last_name, city, state, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			profile.ID, profile.UserID, profile.ClubID, string(profile.Role),
			profile.FirstName, profile.LastName, profile.City, profile.State,
			profile.CreatedAt, profile.UpdatedAt,
		)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO role_grants (user_id, club_id, role, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, club_id, role) DO NOTHING`,
			profile.UserID, profile.ClubID, string(profile.Role), now,
		)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Profile{}, shared.ErrDuplicateProfile
		}
		return Profile{}, err
	}
	return profile, nil
}

// ListProfiles returns every profile for the (user, club) pair. In practice
// zero or one; callers treat an empty slice as "not onboarded".
func (r *Repository) ListProfiles(ctx context.Context, userID, clubID string) ([]Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, club_id, role, first_name, last_name, city, state, created_at, updated_at
		FROM profiles
		WHERE user_id = $1 AND club_id = $2
		ORDER BY created_at`,
		userID, clubID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p Profile
		var role string
		if err := rows.Scan(&p.ID, &p.UserID, &p.ClubID, &role, &p.FirstName, &p.LastName, &p.City, &p.State, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Role = access.Role(role)
		out = append(out, p)
	}
	return out, rows.Err()
}

// CountProfiles reports how many profiles the user holds for the club.
func (r *Repository) CountProfiles(ctx context.Context, userID, clubID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM profiles WHERE user_id = $1 AND club_id = $2`,
		userID, clubID,
	).Scan(&count)
	return count, err
}

// RolesFor loads the user's role set for the club from role grants.
func (r *Repository) RolesFor(ctx context.Context, userID, clubID string) (access.RoleSet, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT role FROM role_grants WHERE user_id = $1 AND club_id = $2`,
		userID, clubID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := access.RoleSet{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		role, err := access.ParseRole(raw)
		if err != nil {
			// Grants are written through ParseRole, so this only fires on
			// hand-edited rows. Skip rather than grant something unknown.
			continue
		}
		set = set.Add(role)
	}
	return set, rows.Err()
}

// GrantRole adds a role grant for the user.
func (r *Repository) GrantRole(ctx context.Context, userID, clubID string, role access.Role) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO role_grants (user_id, club_id, role, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, club_id, role) DO NOTHING`,
		userID, clubID, string(role), time.Now().UTC(),
	)
	return err
}

// PromotePendingCoach flips a pending_coach profile and grant to coach.
// Returns shared.ErrNotFound when the user has no pending_coach profile for
// the club.
func (r *Repository) PromotePendingCoach(ctx context.Context, userID, clubID string) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE profiles SET role = $1, updated_at = $2
			WHERE user_id = $3 AND club_id = $4 AND role = $5`,
			string(access.RoleCoach), time.Now().UTC(), userID, clubID, string(access.RolePendingCoach),
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return shared.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `
			DELETE FROM role_grants WHERE user_id = $1 AND club_id = $2 AND role = $3`,
			userID, clubID, string(access.RolePendingCoach),
		); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO role_grants (user_id, club_id, role, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, club_id, role) DO NOTHING`,
			userID, clubID, string(access.RoleCoach), time.Now().UTC(),
		)
		return err
	})
}

// ListPendingCoaches returns profiles still waiting for promotion, oldest
// first. Used by the admin screen and the reminder job.
func (r *Repository) ListPendingCoaches(ctx context.Context, clubID string) ([]Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, club_id, role, first_name, last_name, city, state, created_at, updated_at
		FROM profiles
		WHERE club_id = $1 AND role = $2
		ORDER BY created_at`,
		clubID, string(access.RolePendingCoach),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p Profile
		var role string
		if err := rows.Scan(&p.ID, &p.UserID, &p.ClubID, &role, &p.FirstName, &p.LastName, &p.City, &p.State, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Role = access.Role(role)
		out = append(out, p)
	}
	return out, rows.Err()
}
