package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventhub/internal/domain"
)

type addressRepository struct {
	DB *sql.DB
}

// NewAddressRepository returns a domain.AddressRepository implemented with Postgres.
func NewAddressRepository(db *sql.DB) domain.AddressRepository {
	return &addressRepository{DB: db}
}

func (r *addressRepository) Create(ctx context.Context, a *domain.Address) error {
	query := `
		INSERT INTO addresses (event_id, city, uf)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, a.EventID, a.City, a.UF).Scan(&a.ID); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *addressRepository) GetByEventID(ctx context.Context, eventID string) (*domain.Address, error) {
	query := `
		SELECT id, event_id, city, uf
		FROM addresses
		WHERE event_id = $1
	`
	a := &domain.Address{}
	err := r.DB.QueryRowContext(ctx, query, eventID).Scan(&a.ID, &a.EventID, &a.City, &a.UF)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError(err)
	}
	return a, nil
}
