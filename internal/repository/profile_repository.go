package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/venue-service/internal/domain"
)

// ProfileWrite carries the fields the provisioning workflows set on an
// existing profile row.
type ProfileWrite struct {
	Role        domain.Role
	VenueID     *string
	FullName    *string
	PhoneNumber *string
}

// ProfileRepository handles persistence for profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	// Provision updates the row addressed by the account id with role and
	// venue fields. The row is expected to exist already (created with the
	// account); a missing row surfaces as pgx.ErrNoRows.
	Provision(ctx context.Context, id string, write ProfileWrite) (*domain.Profile, error)
	SetManagerOf(ctx context.Context, id, venueID string) error
	List(ctx context.Context, filter ProfileFilter) ([]domain.Profile, error)
}

// ProfileFilter defines query params for profile listings.
type ProfileFilter struct {
	VenueID *string
	Role    *domain.Role
	Limit   int
	Offset  int
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository instantiates the repository.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

const profileColumns = `id, venue_id, role, full_name, phone_number, created_at, updated_at`

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id=$1`
	return scanProfile(r.pool.QueryRow(ctx, query, id))
}

func (r *profileRepository) Provision(ctx context.Context, id string, write ProfileWrite) (*domain.Profile, error) {
	const query = `
        UPDATE profiles
        SET role=$1, venue_id=$2, full_name=$3, phone_number=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING ` + profileColumns

	return scanProfile(r.pool.QueryRow(ctx, query,
		write.Role,
		write.VenueID,
		write.FullName,
		write.PhoneNumber,
		id,
	))
}

func (r *profileRepository) SetManagerOf(ctx context.Context, id, venueID string) error {
	const query = `
        UPDATE profiles SET role=$1, venue_id=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, domain.RoleManager, venueID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *profileRepository) List(ctx context.Context, filter ProfileFilter) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles`
	args := []any{}
	clauses := []string{}

	if filter.VenueID != nil {
		args = append(args, *filter.VenueID)
		clauses = append(clauses, fmt.Sprintf("venue_id=$%d", len(args)))
	}
	if filter.Role != nil {
		args = append(args, *filter.Role)
		clauses = append(clauses, fmt.Sprintf("role=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY created_at DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Profile
	for rows.Next() {
		var profile domain.Profile
		if err := rows.Scan(
			&profile.ID,
			&profile.VenueID,
			&profile.Role,
			&profile.FullName,
			&profile.PhoneNumber,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, profile)
	}
	return result, rows.Err()
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var profile domain.Profile
	if err := row.Scan(
		&profile.ID,
		&profile.VenueID,
		&profile.Role,
		&profile.FullName,
		&profile.PhoneNumber,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}
