package usecase

import (
	"context"
	"strings"

	"eventos/internal/domain"
)

type EventService struct {
	Events EventRepository
	Users  UserRepository
}

func NewEventService(events EventRepository, users UserRepository) *EventService {
	return &EventService{Events: events, Users: users}
}

func (s *EventService) Create(ctx context.Context, event *domain.Event) error {
	if strings.TrimSpace(event.Nombre) == "" || strings.TrimSpace(event.Tipo) == "" {
		return domain.ErrValidation
	}
	return s.Events.Create(ctx, event)
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return s.Events.GetByID(ctx, id)
}

func (s *EventService) Update(ctx context.Context, id int64, update domain.Event) (*domain.Event, error) {
	event, err := s.Events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Nombre = update.Nombre
	event.Tipo = update.Tipo
	event.Fecha = update.Fecha
	event.Empresa = update.Empresa
	event.Descripcion = update.Descripcion
	if err := s.Events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.Events.Delete(ctx, id)
}

func (s *EventService) ListActive(ctx context.Context, limit int) ([]domain.Event, error) {
	return s.Events.ListActive(ctx, limit)
}

// ListAll returns every event, past ones included, for the history view.
func (s *EventService) ListAll(ctx context.Context) ([]domain.Event, error) {
	return s.Events.ListAll(ctx)
}

func (s *EventService) NextEvent(ctx context.Context) (*domain.Event, error) {
	return s.Events.NextEvent(ctx)
}

func (s *EventService) CountActive(ctx context.Context) (int64, error) {
	return s.Events.CountActive(ctx)
}

func (s *EventService) ActiveParticipantCounts(ctx context.Context) ([]domain.EventParticipantCount, error) {
	return s.Events.ActiveParticipantCounts(ctx)
}

func (s *EventService) TotalActiveParticipants(ctx context.Context) (int64, error) {
	return s.Events.TotalActiveParticipants(ctx)
}

// Join registers the calling user as a participant. Joining twice is an error
// surfaced to the client, not a silent no-op.
func (s *EventService) Join(ctx context.Context, username string, eventID int64) (*domain.Event, error) {
	event, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if event.HasParticipant(username) {
		return nil, domain.ErrAlreadyJoined
	}
	if err := s.Events.AddParticipant(ctx, event.ID, user.ID); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Leave(ctx context.Context, username string, eventID int64) (*domain.Event, error) {
	event, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !event.HasParticipant(username) {
		return nil, domain.ErrNotParticipant
	}
	if err := s.Events.RemoveParticipant(ctx, event.ID, user.ID); err != nil {
		return nil, err
	}
	return event, nil
}

// EventsOf lists the events the named user participates in.
func (s *EventService) EventsOf(ctx context.Context, username string) ([]domain.Event, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.Events.ListByParticipant(ctx, user.ID)
}

// Participants resolves the full profiles of an event's participants.
// Usernames that no longer resolve are skipped rather than failing the list.
func (s *EventService) Participants(ctx context.Context, eventID int64) ([]domain.Profile, error) {
	event, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	profiles := make([]domain.Profile, 0, len(event.Participantes))
	for _, username := range event.Participantes {
		user, err := s.Users.FindByUsername(ctx, username)
		if err != nil {
			continue
		}
		profiles = append(profiles, user.Profile())
	}
	return profiles, nil
}
