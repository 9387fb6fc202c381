package domain

import "context"

// Address is the physical location of a non-remote event.
// swagger:model Address
type Address struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	City    string `json:"city"`
	UF      string `json:"uf"`
}

// NewAddress returns an Address bound to eventID. ID is set by the repository on create.
func NewAddress(eventID, city, uf string) *Address {
	return &Address{
		EventID: eventID,
		City:    city,
		UF:      uf,
	}
}

// AddressRepository defines storage operations for addresses.
type AddressRepository interface {
	Create(ctx context.Context, addr *Address) error
	// GetByEventID returns ErrNotFound when the event has no address.
	GetByEventID(ctx context.Context, eventID string) (*Address, error)
}

// AddressService binds addresses to events.
type AddressService interface {
	AttachAddress(ctx context.Context, event *Event, city, uf string) (*Address, error)
	// AddressForEvent returns nil without error when the event has no address.
	AddressForEvent(ctx context.Context, eventID string) (*Address, error)
}
