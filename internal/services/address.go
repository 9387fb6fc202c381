package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventhub/internal/domain"
)

type addressService struct {
	addressRepo    domain.AddressRepository
	contextTimeout time.Duration
}

// NewAddressService returns an AddressService backed by the given repository.
func NewAddressService(addressRepo domain.AddressRepository, timeout time.Duration) domain.AddressService {
	return &addressService{
		addressRepo:    addressRepo,
		contextTimeout: timeout,
	}
}

// AttachAddress persists an address for event. Callers must not call it for remote events.
func (s *addressService) AttachAddress(ctx context.Context, event *domain.Event, city, uf string) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	addr := domain.NewAddress(event.ID, city, uf)
	if err := s.addressRepo.Create(ctx, addr); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return addr, nil
}

func (s *addressService) AddressForEvent(ctx context.Context, eventID string) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	addr, err := s.addressRepo.GetByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return addr, nil
}
