package db

import (
	"context"
	"errors"
	"time"

	"eventos/internal/domain"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

// Create inserts a guest. The composite unique index on (evento, correo)
// enforces one invitation per address per event.
func (r *GuestRepository) Create(ctx context.Context, guest *domain.ExternalGuest) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := ExternalGuestModel{
		EventoID:  guest.EventID,
		Nombre:    guest.Nombre,
		Apellido:  guest.Apellido,
		Correo:    guest.Correo,
		Telefono:  guest.Telefono,
		Empresa:   guest.Empresa,
		CreatedAt: time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).Create(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateGuest
		}
		return err
	}
	guest.ID = model.ID
	return nil
}

func (r *GuestRepository) FindByEventAndCorreo(ctx context.Context, eventID int64, correo string) (*domain.ExternalGuest, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model ExternalGuestModel
	err := r.db.WithContext(ctx).Where("evento_id = ? AND correo = ?", eventID, correo).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return guestToDomain(model), nil
}

func (r *GuestRepository) ListByEvent(ctx context.Context, eventID int64) ([]domain.ExternalGuest, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []ExternalGuestModel
	if err := r.db.WithContext(ctx).Where("evento_id = ?", eventID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.ExternalGuest, 0, len(models))
	for _, m := range models {
		out = append(out, *guestToDomain(m))
	}
	return out, nil
}

func guestToDomain(m ExternalGuestModel) *domain.ExternalGuest {
	return &domain.ExternalGuest{
		ID:       m.ID,
		EventID:  m.EventoID,
		Nombre:   m.Nombre,
		Apellido: m.Apellido,
		Correo:   m.Correo,
		Telefono: m.Telefono,
		Empresa:  m.Empresa,
	}
}
