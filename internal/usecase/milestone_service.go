package usecase

import (
	"context"
	"strings"
	"time"

	"eventos/internal/domain"
)

type MilestoneService struct {
	Milestones MilestoneRepository
	Events     EventRepository
	Users      UserRepository
	now        func() time.Time
}

func NewMilestoneService(milestones MilestoneRepository, events EventRepository, users UserRepository) *MilestoneService {
	return &MilestoneService{
		Milestones: milestones,
		Events:     events,
		Users:      users,
		now:        time.Now,
	}
}

type GrantMilestoneRequest struct {
	EventID     int64
	UserID      int64
	Titulo      string
	Descripcion string
	Categoria   string
}

// Grant awards a milestone to an event participant. The membership check runs
// before the insert; non-participants cannot receive event milestones.
func (s *MilestoneService) Grant(ctx context.Context, req GrantMilestoneRequest) (*domain.Milestone, error) {
	if strings.TrimSpace(req.Titulo) == "" || strings.TrimSpace(req.Categoria) == "" {
		return nil, domain.ErrValidation
	}
	event, err := s.Events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	user, err := s.Users.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !event.HasParticipant(user.Username) {
		return nil, domain.ErrNotParticipant
	}
	eventID := event.ID
	hito := &domain.Milestone{
		Titulo:        req.Titulo,
		Descripcion:   req.Descripcion,
		Categoria:     req.Categoria,
		FechaRegistro: s.now().UTC(),
		BeneficiaryID: user.ID,
		EventID:       &eventID,
	}
	if err := s.Milestones.Create(ctx, hito); err != nil {
		return nil, err
	}
	return hito, nil
}

func (s *MilestoneService) GetByID(ctx context.Context, id int64) (*domain.Milestone, error) {
	return s.Milestones.GetByID(ctx, id)
}

func (s *MilestoneService) ListAll(ctx context.Context) ([]domain.Milestone, error) {
	return s.Milestones.ListAll(ctx)
}

// ListMine returns the milestones where the named user is the beneficiary.
func (s *MilestoneService) ListMine(ctx context.Context, username string) ([]domain.Milestone, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.Milestones.ListByBeneficiary(ctx, user.ID)
}

func (s *MilestoneService) Update(ctx context.Context, id int64, update domain.Milestone) (*domain.Milestone, error) {
	hito, err := s.Milestones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hito.Titulo = update.Titulo
	hito.Descripcion = update.Descripcion
	hito.Categoria = update.Categoria
	if !update.FechaRegistro.IsZero() {
		hito.FechaRegistro = update.FechaRegistro
	}
	if err := s.Milestones.Update(ctx, hito); err != nil {
		return nil, err
	}
	return hito, nil
}

func (s *MilestoneService) Delete(ctx context.Context, id int64) error {
	return s.Milestones.Delete(ctx, id)
}
