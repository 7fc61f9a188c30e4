package http

import (
	"context"
	"sort"

	"eventos/internal/domain"
)

type fakeUsers struct {
	nextID int64
	byID   map[int64]*domain.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{nextID: 1, byID: map[int64]*domain.User{}}
}

func (f *fakeUsers) add(u domain.User) *domain.User {
	u.ID = f.nextID
	f.nextID++
	cp := u
	f.byID[cp.ID] = &cp
	return &cp
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) Save(_ context.Context, user *domain.User) error {
	for _, u := range f.byID {
		if u.Username == user.Username {
			return domain.ErrDuplicateIdentity
		}
	}
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.byID[cp.ID] = &cp
	return nil
}

func (f *fakeUsers) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *user
	f.byID[cp.ID] = &cp
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUsers) ListAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeEvents struct {
	nextID int64
	byID   map[int64]*domain.Event
	users  *fakeUsers
}

func newFakeEvents(users *fakeUsers) *fakeEvents {
	return &fakeEvents{nextID: 1, byID: map[int64]*domain.Event{}, users: users}
}

func (f *fakeEvents) Create(_ context.Context, event *domain.Event) error {
	event.ID = f.nextID
	f.nextID++
	cp := *event
	f.byID[cp.ID] = &cp
	return nil
}

func (f *fakeEvents) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	cp.Participantes = append([]string(nil), e.Participantes...)
	return &cp, nil
}

func (f *fakeEvents) Update(_ context.Context, event *domain.Event) error {
	stored, ok := f.byID[event.ID]
	if !ok {
		return domain.ErrNotFound
	}
	participants := stored.Participantes
	cp := *event
	cp.Participantes = participants
	f.byID[cp.ID] = &cp
	return nil
}

func (f *fakeEvents) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEvents) ListAll(_ context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEvents) ListActive(ctx context.Context, limit int) ([]domain.Event, error) {
	all, _ := f.ListAll(ctx)
	sort.Slice(all, func(i, j int) bool { return all[i].Fecha.Before(all[j].Fecha) })
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeEvents) NextEvent(ctx context.Context) (*domain.Event, error) {
	active, _ := f.ListActive(ctx, 1)
	if len(active) == 0 {
		return nil, domain.ErrNotFound
	}
	return &active[0], nil
}

func (f *fakeEvents) CountActive(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeEvents) ActiveParticipantCounts(ctx context.Context) ([]domain.EventParticipantCount, error) {
	all, _ := f.ListAll(ctx)
	out := make([]domain.EventParticipantCount, 0, len(all))
	for _, e := range all {
		out = append(out, domain.EventParticipantCount{
			ID:            e.ID,
			Nombre:        e.Nombre,
			Participantes: int64(len(e.Participantes)),
		})
	}
	return out, nil
}

func (f *fakeEvents) TotalActiveParticipants(ctx context.Context) (int64, error) {
	var total int64
	for _, e := range f.byID {
		total += int64(len(e.Participantes))
	}
	return total, nil
}

func (f *fakeEvents) ListByParticipant(ctx context.Context, userID int64) ([]domain.Event, error) {
	user, err := f.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	all, _ := f.ListAll(ctx)
	out := make([]domain.Event, 0)
	for _, e := range all {
		if e.HasParticipant(user.Username) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEvents) AddParticipant(ctx context.Context, eventID, userID int64) error {
	user, err := f.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	e, ok := f.byID[eventID]
	if !ok {
		return domain.ErrNotFound
	}
	e.Participantes = append(e.Participantes, user.Username)
	return nil
}

func (f *fakeEvents) RemoveParticipant(ctx context.Context, eventID, userID int64) error {
	user, err := f.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	e, ok := f.byID[eventID]
	if !ok {
		return domain.ErrNotFound
	}
	kept := e.Participantes[:0]
	for _, p := range e.Participantes {
		if p != user.Username {
			kept = append(kept, p)
		}
	}
	e.Participantes = kept
	return nil
}

type fakeMilestones struct {
	nextID int64
	byID   map[int64]*domain.Milestone
}

func newFakeMilestones() *fakeMilestones {
	return &fakeMilestones{nextID: 1, byID: map[int64]*domain.Milestone{}}
}

func (f *fakeMilestones) Create(_ context.Context, hito *domain.Milestone) error {
	hito.ID = f.nextID
	f.nextID++
	cp := *hito
	f.byID[cp.ID] = &cp
	return nil
}

func (f *fakeMilestones) GetByID(_ context.Context, id int64) (*domain.Milestone, error) {
	h, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (f *fakeMilestones) ListAll(_ context.Context) ([]domain.Milestone, error) {
	out := make([]domain.Milestone, 0, len(f.byID))
	for _, h := range f.byID {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMilestones) ListByBeneficiary(ctx context.Context, userID int64) ([]domain.Milestone, error) {
	all, _ := f.ListAll(ctx)
	out := make([]domain.Milestone, 0)
	for _, h := range all {
		if h.BeneficiaryID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeMilestones) Update(_ context.Context, hito *domain.Milestone) error {
	if _, ok := f.byID[hito.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *hito
	f.byID[cp.ID] = &cp
	return nil
}

func (f *fakeMilestones) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeGuests struct {
	nextID int64
	byID   map[int64]*domain.ExternalGuest
}

func newFakeGuests() *fakeGuests {
	return &fakeGuests{nextID: 1, byID: map[int64]*domain.ExternalGuest{}}
}

func (f *fakeGuests) Create(_ context.Context, guest *domain.ExternalGuest) error {
	for _, g := range f.byID {
		if g.EventID == guest.EventID && g.Correo == guest.Correo {
			return domain.ErrDuplicateGuest
		}
	}
	guest.ID = f.nextID
	f.nextID++
	cp := *guest
	f.byID[cp.ID] = &cp
	return nil
}

func (f *fakeGuests) FindByEventAndCorreo(_ context.Context, eventID int64, correo string) (*domain.ExternalGuest, error) {
	for _, g := range f.byID {
		if g.EventID == eventID && g.Correo == correo {
			cp := *g
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGuests) ListByEvent(_ context.Context, eventID int64) ([]domain.ExternalGuest, error) {
	out := make([]domain.ExternalGuest, 0)
	for _, g := range f.byID {
		if g.EventID == eventID {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
