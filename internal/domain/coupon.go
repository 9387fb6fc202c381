package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Coupon is a discount code bound to an event. It is active while Valid is
// after the reference instant of a query.
// swagger:model Coupon
type Coupon struct {
	ID       string          `json:"id"`
	EventID  string          `json:"event_id"`
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount" swaggertype:"string"`
	Valid    time.Time       `json:"valid"`
}

// NewCoupon returns a Coupon bound to eventID. ID is set by the repository on create.
func NewCoupon(eventID, code string, discount decimal.Decimal, valid time.Time) *Coupon {
	return &Coupon{
		EventID:  eventID,
		Code:     code,
		Discount: discount,
		Valid:    valid,
	}
}

// ActiveAt reports whether the coupon has not expired at t.
func (c *Coupon) ActiveAt(t time.Time) bool {
	return c.Valid.After(t)
}

// CouponView is the reduced coupon shape listed in event details.
// swagger:model CouponView
type CouponView struct {
	Code       string          `json:"code"`
	Discount   decimal.Decimal `json:"discount" swaggertype:"string"`
	ValidUntil time.Time       `json:"valid_until"`
}

// CouponInput holds the fields accepted when adding a coupon to an event.
type CouponInput struct {
	Code     string
	Discount decimal.Decimal
	Valid    time.Time
}

// CouponRepository defines storage operations for coupons.
type CouponRepository interface {
	Create(ctx context.Context, c *Coupon) error
	// ListValidAfter returns the event's coupons whose Valid is strictly after instant.
	ListValidAfter(ctx context.Context, eventID string, instant time.Time) ([]*Coupon, error)
}

// CouponService adds coupons to events and lists the active ones.
type CouponService interface {
	AddCouponToEvent(ctx context.Context, eventID string, in CouponInput) (*Coupon, error)
	ListActiveCoupons(ctx context.Context, eventID string, asOf time.Time) ([]*Coupon, error)
}
