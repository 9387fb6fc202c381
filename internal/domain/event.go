package domain

import (
	"context"
	"time"
)

// Event represents a scheduled activity published on the platform.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	EventURL    string    `json:"event_url"`
	ImgURL      string    `json:"img_url"`
	Remote      bool      `json:"remote"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title, description, eventURL string, date time.Time, remote bool) *Event {
	return &Event{
		Title:       title,
		Description: description,
		EventURL:    eventURL,
		Date:        date,
		Remote:      remote,
	}
}

// EventListing is a store row pairing an event with its optional address.
// Address is nil for remote events and for events whose address was never created.
type EventListing struct {
	Event   *Event
	Address *Address
}

// EventSummary is the list projection of an event. City and UF are empty when
// the event has no address.
// swagger:model EventSummary
type EventSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	City        string    `json:"city"`
	UF          string    `json:"uf"`
	Remote      bool      `json:"remote"`
	EventURL    string    `json:"event_url"`
	ImgURL      string    `json:"img_url"`
}

// NewEventSummary projects an event and its optional address.
func NewEventSummary(e *Event, addr *Address) EventSummary {
	s := EventSummary{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Remote:      e.Remote,
		EventURL:    e.EventURL,
		ImgURL:      e.ImgURL,
	}
	if addr != nil {
		s.City = addr.City
		s.UF = addr.UF
	}
	return s
}

// EventDetails is the detail view of an event with its currently active coupons.
// swagger:model EventDetails
type EventDetails struct {
	EventSummary
	Coupons []CouponView `json:"coupons"`
}

// ImageUpload is an image attached to an event creation request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateEventInput holds the fields accepted when creating an event.
// City and UF are only used when Remote is false. Image is optional.
type CreateEventInput struct {
	Title       string
	Description string
	EventURL    string
	Date        time.Time
	Remote      bool
	City        string
	UF          string
	Image       *ImageUpload
}

// EventFilter holds the optional criteria of a filtered search. A nil field
// matches every event.
type EventFilter struct {
	Title     *string
	City      *string
	UF        *string
	StartDate *time.Time
	EndDate   *time.Time
}

// EventQuery is an EventFilter with every criterion resolved to a concrete
// value. Patterns are SQL LIKE patterns; MatchAll means "no constraint".
type EventQuery struct {
	TitlePattern string
	CityPattern  string
	UFPattern    string
	Start        time.Time
	End          time.Time
}

// MatchAll is the LIKE pattern used for an absent text criterion.
const MatchAll = "%"

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// ListUpcoming returns events dated at or after from, with the total number of matches.
	ListUpcoming(ctx context.Context, from time.Time, params PaginationParams) ([]*EventListing, int, error)
	// ListFiltered returns events matching every criterion of q, with the total number of matches.
	ListFiltered(ctx context.Context, q EventQuery, params PaginationParams) ([]*EventListing, int, error)
}

// EventService creates events and assembles their list and detail views.
type EventService interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*Event, error)
	ListUpcomingEvents(ctx context.Context, params PaginationParams) ([]EventSummary, int, error)
	ListFilteredEvents(ctx context.Context, params PaginationParams, filter EventFilter) ([]EventSummary, int, error)
	GetEventDetails(ctx context.Context, eventID string) (*EventDetails, error)
}
