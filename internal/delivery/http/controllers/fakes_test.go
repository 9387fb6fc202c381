package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"eventhub/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createEventErr    error
	createEventResult *domain.Event
	listErr           error
	listItems         []domain.EventSummary
	listTotal         int
	detailsErr        error
	detailsResult     *domain.EventDetails

	lastCreateInput  *domain.CreateEventInput
	lastListParams   domain.PaginationParams
	lastFilter       *domain.EventFilter
	lastDetailsID    string
	createEventCalls int
}

func (f *fakeEventService) CreateEvent(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	f.createEventCalls++
	f.lastCreateInput = &in
	if f.createEventErr != nil {
		return nil, f.createEventErr
	}
	if f.createEventResult != nil {
		return f.createEventResult, nil
	}
	e := domain.NewEvent(in.Title, in.Description, in.EventURL, in.Date, in.Remote)
	e.ID = "11111111-1111-1111-1111-111111111111"
	return e, nil
}

func (f *fakeEventService) ListUpcomingEvents(ctx context.Context, params domain.PaginationParams) ([]domain.EventSummary, int, error) {
	f.lastListParams = params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listItems, f.listTotal, nil
}

func (f *fakeEventService) ListFilteredEvents(ctx context.Context, params domain.PaginationParams, filter domain.EventFilter) ([]domain.EventSummary, int, error) {
	f.lastListParams = params
	f.lastFilter = &filter
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listItems, f.listTotal, nil
}

func (f *fakeEventService) GetEventDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	f.lastDetailsID = eventID
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	return f.detailsResult, nil
}

// fakeCouponService implements domain.CouponService for handler tests.
type fakeCouponService struct {
	addErr     error
	listErr    error
	listResult []*domain.Coupon

	lastAddEventID  string
	lastAddInput    *domain.CouponInput
	lastListEventID string
	lastListAsOf    time.Time
	addCalls        int
}

func (f *fakeCouponService) AddCouponToEvent(ctx context.Context, eventID string, in domain.CouponInput) (*domain.Coupon, error) {
	f.addCalls++
	f.lastAddEventID = eventID
	f.lastAddInput = &in
	if f.addErr != nil {
		return nil, f.addErr
	}
	c := domain.NewCoupon(eventID, in.Code, in.Discount, in.Valid)
	c.ID = "22222222-2222-2222-2222-222222222222"
	return c, nil
}

func (f *fakeCouponService) ListActiveCoupons(ctx context.Context, eventID string, asOf time.Time) ([]*domain.Coupon, error) {
	f.lastListEventID = eventID
	f.lastListAsOf = asOf
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}
