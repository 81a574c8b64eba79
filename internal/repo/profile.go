// Package repo contains the database access logic for the trip-discovery API.
// Only the member-profile store is persistent — the trip catalog itself is
// built in-process and never touches the database. No business logic lives
// here, only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly lets integration
// tests pass a transaction that is rolled back after each test, giving
// per-test isolation without manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProfileRepo defines the persistence operations for member profiles keyed by
// the identity provider's user ID. The service layer depends on this
// interface, not the Postgres implementation.
type ProfileRepo interface {
	// Get retrieves the profile stored for a user.
	// Returns domain.ErrNotFound when the user has no profile yet.
	Get(ctx context.Context, userID string) (domain.MemberProfile, error)

	// Save stores or replaces the profile for a user.
	Save(ctx context.Context, userID string, profile domain.MemberProfile) error

	// Delete removes a user's profile.
	// Returns domain.ErrNotFound when no profile exists.
	Delete(ctx context.Context, userID string) error
}

// pgProfileRepo is the Postgres implementation of ProfileRepo. Profiles are
// stored as a JSONB document per user; the catalog shapes in internal/domain
// are the schema.
type pgProfileRepo struct {
	db db
}

// NewProfileRepo constructs a ProfileRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewProfileRepo(db db) ProfileRepo {
	return &pgProfileRepo{db: db}
}

// Get retrieves a profile document by user ID.
func (r *pgProfileRepo) Get(ctx context.Context, userID string) (domain.MemberProfile, error) {
	const q = `SELECT profile FROM profiles WHERE user_id = @user_id`

	var raw []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MemberProfile{}, fmt.Errorf("repo.ProfileRepo.Get: %w", domain.ErrNotFound)
		}
		return domain.MemberProfile{}, fmt.Errorf("repo.ProfileRepo.Get: %w", err)
	}

	var p domain.MemberProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.MemberProfile{}, fmt.Errorf("repo.ProfileRepo.Get: decode: %w", err)
	}
	return p, nil
}

// Save upserts a profile document, bumping updated_at on replacement.
func (r *pgProfileRepo) Save(ctx context.Context, userID string, profile domain.MemberProfile) error {
	const q = `
		INSERT INTO profiles (user_id, profile)
		VALUES (@user_id, @profile)
		ON CONFLICT (user_id) DO UPDATE
		SET profile = EXCLUDED.profile, updated_at = now()`

	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("repo.ProfileRepo.Save: encode: %w", err)
	}

	_, err = r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "profile": raw})
	if err != nil {
		return fmt.Errorf("repo.ProfileRepo.Save: %w", err)
	}
	return nil
}

// Delete removes a profile document by user ID.
func (r *pgProfileRepo) Delete(ctx context.Context, userID string) error {
	const q = `DELETE FROM profiles WHERE user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.ProfileRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ProfileRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}
