package db

import (
	"context"
	"errors"
	"time"

	"eventos/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db, now: time.Now}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := EventModel{
		Nombre:      event.Nombre,
		Tipo:        event.Tipo,
		Fecha:       event.Fecha,
		Empresa:     event.Empresa,
		Descripcion: event.Descripcion,
		CreatedAt:   time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).Omit("Participantes").Create(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrValidation
		}
		return err
	}
	event.ID = model.ID
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model EventModel
	err := r.db.WithContext(ctx).Preload("Participantes").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return eventToDomain(model), nil
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	if r.db == nil {
		return errDBUnavailable
	}
	updates := map[string]any{
		"nombre":      event.Nombre,
		"tipo":        event.Tipo,
		"fecha":       event.Fecha,
		"empresa":     event.Empresa,
		"descripcion": event.Descripcion,
	}
	res := r.db.WithContext(ctx).Model(&EventModel{}).Where("id = ?", event.ID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	res := r.db.WithContext(ctx).Delete(&EventModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EventRepository) ListAll(ctx context.Context) ([]domain.Event, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []EventModel
	if err := r.db.WithContext(ctx).Preload("Participantes").Order("fecha").Find(&models).Error; err != nil {
		return nil, err
	}
	return eventsToDomain(models), nil
}

// ListActive returns events whose fecha is still ahead of now, soonest first.
func (r *EventRepository) ListActive(ctx context.Context, limit int) ([]domain.Event, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	q := r.db.WithContext(ctx).Preload("Participantes").
		Where("fecha > ?", r.now()).
		Order("fecha ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var models []EventModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}
	return eventsToDomain(models), nil
}

// NextEvent returns the soonest upcoming event, or nil when none is scheduled.
func (r *EventRepository) NextEvent(ctx context.Context) (*domain.Event, error) {
	events, err := r.ListActive(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

func (r *EventRepository) CountActive(ctx context.Context) (int64, error) {
	if r.db == nil {
		return 0, errDBUnavailable
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&EventModel{}).
		Where("fecha > ?", r.now()).
		Count(&count).Error
	return count, err
}

func (r *EventRepository) ActiveParticipantCounts(ctx context.Context) ([]domain.EventParticipantCount, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var rows []domain.EventParticipantCount
	err := r.db.WithContext(ctx).Model(&EventModel{}).
		Select("evento.id AS id, evento.nombre AS nombre, COUNT(eu.user_model_id) AS participantes").
		Joins("LEFT JOIN evento_usuario eu ON eu.event_model_id = evento.id").
		Where("evento.fecha > ?", r.now()).
		Group("evento.id, evento.nombre").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EventRepository) TotalActiveParticipants(ctx context.Context) (int64, error) {
	counts, err := r.ActiveParticipantCounts(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range counts {
		total += c.Participantes
	}
	return total, nil
}

// ListByParticipant returns the events a user has joined.
func (r *EventRepository) ListByParticipant(ctx context.Context, userID int64) ([]domain.Event, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []EventModel
	err := r.db.WithContext(ctx).Preload("Participantes").
		Joins("JOIN evento_usuario eu ON eu.event_model_id = evento.id").
		Where("eu.user_model_id = ?", userID).
		Order("fecha").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return eventsToDomain(models), nil
}

func (r *EventRepository) AddParticipant(ctx context.Context, eventID, userID int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	event := EventModel{ID: eventID}
	user := UserModel{ID: userID}
	return r.db.WithContext(ctx).Model(&event).Association("Participantes").Append(&user)
}

func (r *EventRepository) RemoveParticipant(ctx context.Context, eventID, userID int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	event := EventModel{ID: eventID}
	user := UserModel{ID: userID}
	return r.db.WithContext(ctx).Model(&event).Association("Participantes").Delete(&user)
}

func eventToDomain(m EventModel) *domain.Event {
	participants := make([]string, 0, len(m.Participantes))
	for _, p := range m.Participantes {
		participants = append(participants, p.Username)
	}
	return &domain.Event{
		ID:            m.ID,
		Nombre:        m.Nombre,
		Tipo:          m.Tipo,
		Fecha:         m.Fecha,
		Empresa:       m.Empresa,
		Descripcion:   m.Descripcion,
		Participantes: participants,
	}
}

func eventsToDomain(models []EventModel) []domain.Event {
	out := make([]domain.Event, 0, len(models))
	for _, m := range models {
		out = append(out, *eventToDomain(m))
	}
	return out
}
