package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/venue-service/internal/domain"
)

// VenueRepository handles persistence for venues.
type VenueRepository interface {
	Create(ctx context.Context, venue *domain.Venue) error
	Update(ctx context.Context, venue *domain.Venue) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]domain.Venue, error)
	SetManager(ctx context.Context, id, managerID string) error
}

type venueRepository struct {
	pool *pgxpool.Pool
}

// NewVenueRepository instantiates the repository.
func NewVenueRepository(pool *pgxpool.Pool) VenueRepository {
	return &venueRepository{pool: pool}
}

const venueColumns = `id, name, address, city, state, logo_url, manager_id, created_at`

func (r *venueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	const query = `
        INSERT INTO venues (name, address, city, state, logo_url, manager_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		venue.Name,
		venue.Address,
		venue.City,
		venue.State,
		venue.LogoURL,
		venue.ManagerID,
	).Scan(&venue.ID, &venue.CreatedAt)
}

func (r *venueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	const query = `
        UPDATE venues
        SET name=$1, address=$2, city=$3, state=$4, logo_url=$5, manager_id=$6
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		venue.Name,
		venue.Address,
		venue.City,
		venue.State,
		venue.LogoURL,
		venue.ManagerID,
		venue.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM venues WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id=$1`

	var venue domain.Venue
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.Address,
		&venue.City,
		&venue.State,
		&venue.LogoURL,
		&venue.ManagerID,
		&venue.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) List(ctx context.Context) ([]domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Venue
	for rows.Next() {
		var venue domain.Venue
		if err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Address,
			&venue.City,
			&venue.State,
			&venue.LogoURL,
			&venue.ManagerID,
			&venue.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, venue)
	}
	return result, rows.Err()
}

func (r *venueRepository) SetManager(ctx context.Context, id, managerID string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE venues SET manager_id=$1 WHERE id=$2`, managerID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
