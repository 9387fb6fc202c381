package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// CreateCouponRequest is the request body for POST /events/{eventID}/coupons.
type CreateCouponRequest struct {
	Code     string          `json:"code" validate:"required,max=64"`
	Discount decimal.Decimal `json:"discount" swaggertype:"string"`
	// Valid is the expiry instant in milliseconds since the Unix epoch.
	Valid int64 `json:"valid" validate:"gt=0"`
}

// Validate implements Validator.
func (c CreateCouponRequest) Validate() []string {
	errs := helpers.ValidateStruct(c)
	if c.Discount.IsNegative() {
		errs = append(errs, "discount must not be negative")
	}
	return errs
}

// CreateCouponSuccessResponse is the success response envelope for POST /events/{eventID}/coupons (201).
type CreateCouponSuccessResponse struct {
	Data  *domain.Coupon    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListCouponsSuccessResponse is the success response envelope for GET /events/{eventID}/coupons (200).
type ListCouponsSuccessResponse struct {
	Data  []*domain.Coupon  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type CouponController struct {
	Logger  *slog.Logger
	Service domain.CouponService
	Now     func() time.Time
}

func NewCouponController(logger *slog.Logger, svc domain.CouponService) *CouponController {
	return &CouponController{
		Logger:  logger,
		Service: svc,
		Now:     time.Now,
	}
}

// AddCouponToEvent godoc
// @Summary Add a coupon to an event
// @Description Creates a discount coupon for the event. valid is the expiry instant in milliseconds since the Unix epoch.
// @Tags coupons
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param coupon body CreateCouponRequest true "Coupon data"
// @Success 201 {object} controllers.CreateCouponSuccessResponse "data contains the created coupon"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/coupons [post]
func (c *CouponController) AddCouponToEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if !helpers.IsUUID(eventID) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	var req CreateCouponRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	coupon, err := c.Service.AddCouponToEvent(r.Context(), eventID, domain.CouponInput{
		Code:     req.Code,
		Discount: req.Discount,
		Valid:    helpers.EpochMillis(req.Valid),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to create coupon")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, coupon)
}

// ListActiveCoupons godoc
// @Summary List active coupons of an event
// @Description Returns the event's coupons that have not expired, ordered by expiry.
// @Tags coupons
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ListCouponsSuccessResponse "data contains the active coupons"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/coupons [get]
func (c *CouponController) ListActiveCoupons(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if !helpers.IsUUID(eventID) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	coupons, err := c.Service.ListActiveCoupons(r.Context(), eventID, c.Now())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list coupons")
		return
	}
	if coupons == nil {
		coupons = []*domain.Coupon{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, coupons)
}
