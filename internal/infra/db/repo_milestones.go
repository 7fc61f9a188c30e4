package db

import (
	"context"
	"errors"
	"time"

	"eventos/internal/domain"

	"gorm.io/gorm"
)

type MilestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) Create(ctx context.Context, hito *domain.Milestone) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := MilestoneModel{
		Titulo:        hito.Titulo,
		Descripcion:   hito.Descripcion,
		Categoria:     hito.Categoria,
		FechaRegistro: hito.FechaRegistro,
		UsuarioID:     hito.BeneficiaryID,
		EventoID:      hito.EventID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	hito.ID = model.ID
	return nil
}

func (r *MilestoneRepository) GetByID(ctx context.Context, id int64) (*domain.Milestone, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model MilestoneModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return milestoneToDomain(model), nil
}

func (r *MilestoneRepository) ListAll(ctx context.Context) ([]domain.Milestone, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []MilestoneModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return milestonesToDomain(models), nil
}

func (r *MilestoneRepository) ListByBeneficiary(ctx context.Context, userID int64) ([]domain.Milestone, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []MilestoneModel
	err := r.db.WithContext(ctx).Where("usuario_id = ?", userID).Order("fecha_registro DESC").Find(&models).Error
	if err != nil {
		return nil, err
	}
	return milestonesToDomain(models), nil
}

func (r *MilestoneRepository) Update(ctx context.Context, hito *domain.Milestone) error {
	if r.db == nil {
		return errDBUnavailable
	}
	updates := map[string]any{
		"titulo":         hito.Titulo,
		"descripcion":    hito.Descripcion,
		"categoria":      hito.Categoria,
		"fecha_registro": hito.FechaRegistro,
	}
	res := r.db.WithContext(ctx).Model(&MilestoneModel{}).Where("id = ?", hito.ID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MilestoneRepository) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	res := r.db.WithContext(ctx).Delete(&MilestoneModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func milestoneToDomain(m MilestoneModel) *domain.Milestone {
	return &domain.Milestone{
		ID:            m.ID,
		Titulo:        m.Titulo,
		Descripcion:   m.Descripcion,
		Categoria:     m.Categoria,
		FechaRegistro: m.FechaRegistro,
		BeneficiaryID: m.UsuarioID,
		EventID:       m.EventoID,
	}
}

func milestonesToDomain(models []MilestoneModel) []domain.Milestone {
	out := make([]domain.Milestone, 0, len(models))
	for _, m := range models {
		out = append(out, *milestoneToDomain(m))
	}
	return out
}
