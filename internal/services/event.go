package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventhub/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	addressService domain.AddressService
	couponService  domain.CouponService
	storage        domain.ObjectStorage
	bucket         string
	logger         *slog.Logger
	contextTimeout time.Duration

	now    func() time.Time
	newKey func(filename string) string
}

// EventServiceOption customizes an event service.
type EventServiceOption func(*eventService)

// WithClock sets the function used as "now" for upcoming, filter and coupon queries.
func WithClock(now func() time.Time) EventServiceOption {
	return func(s *eventService) { s.now = now }
}

// WithImageKeyFunc sets how object keys are derived from uploaded filenames.
func WithImageKeyFunc(fn func(filename string) string) EventServiceOption {
	return func(s *eventService) { s.newKey = fn }
}

func NewEventService(eventRepo domain.EventRepository,
	addressService domain.AddressService,
	couponService domain.CouponService,
	storage domain.ObjectStorage,
	bucket string,
	logger *slog.Logger,
	timeout time.Duration,
	opts ...EventServiceOption,
) domain.EventService {
	s := &eventService{
		eventRepo:      eventRepo,
		addressService: addressService,
		couponService:  couponService,
		storage:        storage,
		bucket:         bucket,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
		newKey:         imageKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// imageKey prefixes the filename with a random UUID so keys never collide.
func imageKey(filename string) string {
	return uuid.NewString() + "-" + filename
}

// CreateEvent persists an event, then its address when the event is not remote.
// The image upload is best effort: on failure the event is created with an
// empty ImgURL. No transaction spans the event and address inserts; if the
// address insert fails the event remains persisted and the error is returned.
func (s *eventService) CreateEvent(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	imgURL := ""
	if in.Image != nil {
		imgURL = s.uploadImage(ctx, in.Image)
	}

	// The upload has its own deadline; persistence starts with a fresh one.
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event := domain.NewEvent(in.Title, in.Description, in.EventURL, in.Date, in.Remote)
	event.ImgURL = imgURL
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if !in.Remote {
		if _, err := s.addressService.AttachAddress(ctx, event, in.City, in.UF); err != nil {
			return nil, fmt.Errorf("attach address to event %s: %w", event.ID, err)
		}
	}

	return event, nil
}

func (s *eventService) uploadImage(ctx context.Context, img *domain.ImageUpload) string {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	key := s.newKey(img.Filename)
	url, err := s.storage.Put(ctx, s.bucket, key, img.Data, img.ContentType)
	if err != nil {
		s.logger.WarnContext(ctx, "image upload failed, continuing without image",
			"bucket", s.bucket, "key", key, "err", err)
		return ""
	}
	return url
}

func (s *eventService) ListUpcomingEvents(ctx context.Context, params domain.PaginationParams) ([]domain.EventSummary, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rows, total, err := s.eventRepo.ListUpcoming(ctx, s.now(), params)
	if err != nil {
		return nil, 0, fmt.Errorf("list upcoming events: %w", err)
	}
	return summarize(rows), total, nil
}

func (s *eventService) ListFilteredEvents(ctx context.Context, params domain.PaginationParams, filter domain.EventFilter) ([]domain.EventSummary, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	q := resolveFilter(filter, s.now())
	rows, total, err := s.eventRepo.ListFiltered(ctx, q, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list filtered events: %w", err)
	}
	return summarize(rows), total, nil
}

func (s *eventService) GetEventDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	addr, err := s.addressService.AddressForEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	coupons, err := s.couponService.ListActiveCoupons(ctx, event.ID, s.now())
	if err != nil {
		return nil, err
	}
	views := make([]domain.CouponView, 0, len(coupons))
	for _, c := range coupons {
		views = append(views, domain.CouponView{
			Code:       c.Code,
			Discount:   c.Discount,
			ValidUntil: c.Valid,
		})
	}

	return &domain.EventDetails{
		EventSummary: domain.NewEventSummary(event, addr),
		Coupons:      views,
	}, nil
}

func summarize(rows []*domain.EventListing) []domain.EventSummary {
	out := make([]domain.EventSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.NewEventSummary(row.Event, row.Address))
	}
	return out
}

// resolveFilter replaces absent criteria with neutral values: match-all
// patterns, the Unix epoch as start and now as end.
func resolveFilter(f domain.EventFilter, now time.Time) domain.EventQuery {
	q := domain.EventQuery{
		TitlePattern: containsPattern(f.Title),
		CityPattern:  containsPattern(f.City),
		UFPattern:    containsPattern(f.UF),
		Start:        time.Unix(0, 0).UTC(),
		End:          now,
	}
	if f.StartDate != nil {
		q.Start = *f.StartDate
	}
	if f.EndDate != nil {
		q.End = *f.EndDate
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching values that contain *s.
func containsPattern(s *string) string {
	if s == nil || *s == "" {
		return domain.MatchAll
	}
	return "%" + likeEscaper.Replace(*s) + "%"
}
