package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventhub/internal/domain"
)

type couponService struct {
	eventRepo      domain.EventRepository
	couponRepo     domain.CouponRepository
	contextTimeout time.Duration
}

// NewCouponService returns a CouponService backed by the given repositories.
func NewCouponService(eventRepo domain.EventRepository, couponRepo domain.CouponRepository, timeout time.Duration) domain.CouponService {
	return &couponService{
		eventRepo:      eventRepo,
		couponRepo:     couponRepo,
		contextTimeout: timeout,
	}
}

// AddCouponToEvent persists a coupon bound to an existing event. Codes are not
// required to be unique.
func (s *couponService) AddCouponToEvent(ctx context.Context, eventID string, in domain.CouponInput) (*domain.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	coupon := domain.NewCoupon(event.ID, in.Code, in.Discount, in.Valid)
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("create coupon: %w", err)
	}
	return coupon, nil
}

// ListActiveCoupons returns the event's coupons that are still valid at asOf.
// Rows the store returns that have already expired at asOf are dropped.
func (s *couponService) ListActiveCoupons(ctx context.Context, eventID string, asOf time.Time) ([]*domain.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	coupons, err := s.couponRepo.ListValidAfter(ctx, eventID, asOf)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	active := make([]*domain.Coupon, 0, len(coupons))
	for _, c := range coupons {
		if c.ActiveAt(asOf) {
			active = append(active, c)
		}
	}
	return active, nil
}
