package usecase

import (
	"context"
	"errors"
	"strings"

	"eventos/internal/domain"
)

type GuestService struct {
	Guests GuestRepository
	Events EventRepository
}

func NewGuestService(guests GuestRepository, events EventRepository) *GuestService {
	return &GuestService{Guests: guests, Events: events}
}

// Invite attaches an external guest to an event. Required fields are checked
// up front; the same correo may not be invited twice to one event.
func (s *GuestService) Invite(ctx context.Context, guest *domain.ExternalGuest) error {
	if strings.TrimSpace(guest.Nombre) == "" ||
		strings.TrimSpace(guest.Apellido) == "" ||
		strings.TrimSpace(guest.Correo) == "" {
		return domain.ErrValidation
	}
	if _, err := s.Events.GetByID(ctx, guest.EventID); err != nil {
		return err
	}
	if _, err := s.Guests.FindByEventAndCorreo(ctx, guest.EventID, guest.Correo); err == nil {
		return domain.ErrDuplicateGuest
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return s.Guests.Create(ctx, guest)
}

func (s *GuestService) ListByEvent(ctx context.Context, eventID int64) ([]domain.ExternalGuest, error) {
	if _, err := s.Events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.Guests.ListByEvent(ctx, eventID)
}
