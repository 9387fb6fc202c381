package postgres

import (
	"context"
	"database/sql"
	"time"

	"eventhub/internal/domain"
)

type couponRepository struct {
	DB *sql.DB
}

// NewCouponRepository returns a domain.CouponRepository implemented with Postgres.
func NewCouponRepository(db *sql.DB) domain.CouponRepository {
	return &couponRepository{DB: db}
}

func (r *couponRepository) Create(ctx context.Context, c *domain.Coupon) error {
	query := `
		INSERT INTO coupons (event_id, code, discount, valid)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, c.EventID, c.Code, c.Discount, c.Valid).Scan(&c.ID); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *couponRepository) ListValidAfter(ctx context.Context, eventID string, instant time.Time) ([]*domain.Coupon, error) {
	query := `
		SELECT id, event_id, code, discount, valid
		FROM coupons
		WHERE event_id = $1 AND valid > $2
		ORDER BY valid ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, instant)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	coupons := make([]*domain.Coupon, 0)
	for rows.Next() {
		c := &domain.Coupon{}
		if err := rows.Scan(&c.ID, &c.EventID, &c.Code, &c.Discount, &c.Valid); err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return coupons, nil
}
