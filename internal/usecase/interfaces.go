package usecase

import (
	"context"

	"eventos/internal/domain"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.User, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.Event, error)
	ListActive(ctx context.Context, limit int) ([]domain.Event, error)
	NextEvent(ctx context.Context) (*domain.Event, error)
	CountActive(ctx context.Context) (int64, error)
	ActiveParticipantCounts(ctx context.Context) ([]domain.EventParticipantCount, error)
	TotalActiveParticipants(ctx context.Context) (int64, error)
	ListByParticipant(ctx context.Context, userID int64) ([]domain.Event, error)
	AddParticipant(ctx context.Context, eventID, userID int64) error
	RemoveParticipant(ctx context.Context, eventID, userID int64) error
}

type MilestoneRepository interface {
	Create(ctx context.Context, hito *domain.Milestone) error
	GetByID(ctx context.Context, id int64) (*domain.Milestone, error)
	ListAll(ctx context.Context) ([]domain.Milestone, error)
	ListByBeneficiary(ctx context.Context, userID int64) ([]domain.Milestone, error)
	Update(ctx context.Context, hito *domain.Milestone) error
	Delete(ctx context.Context, id int64) error
}

type GuestRepository interface {
	Create(ctx context.Context, guest *domain.ExternalGuest) error
	FindByEventAndCorreo(ctx context.Context, eventID int64, correo string) (*domain.ExternalGuest, error)
	ListByEvent(ctx context.Context, eventID int64) ([]domain.ExternalGuest, error)
}
