package usecase

import (
	"context"
	"sort"
	"sync"

	"eventos/internal/domain"
)

// memUsers backs both domain.IdentityStore and UserRepository in tests.
type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{nextID: 1, byID: map[int64]*domain.User{}}
}

func (m *memUsers) add(u domain.User) *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = m.nextID
	m.nextID++
	cp := u
	m.byID[cp.ID] = &cp
	return &cp
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUsers) FindByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Save(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == user.Username {
			return domain.ErrDuplicateIdentity
		}
	}
	user.ID = m.nextID
	m.nextID++
	cp := *user
	m.byID[cp.ID] = &cp
	return nil
}

func (m *memUsers) Update(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[user.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *user
	m.byID[cp.ID] = &cp
	return nil
}

func (m *memUsers) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memUsers) ListAll(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// memEvents keeps participants as usernames, resolved through users.
type memEvents struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.Event
	users  *memUsers
}

func newMemEvents(users *memUsers) *memEvents {
	return &memEvents{nextID: 1, byID: map[int64]*domain.Event{}, users: users}
}

func (m *memEvents) Create(_ context.Context, event *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	event.ID = m.nextID
	m.nextID++
	cp := *event
	m.byID[cp.ID] = &cp
	return nil
}

func (m *memEvents) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	cp.Participantes = append([]string(nil), e.Participantes...)
	return &cp, nil
}

func (m *memEvents) Update(_ context.Context, event *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[event.ID]
	if !ok {
		return domain.ErrNotFound
	}
	participants := stored.Participantes
	cp := *event
	cp.Participantes = participants
	m.byID[cp.ID] = &cp
	return nil
}

func (m *memEvents) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memEvents) ListAll(_ context.Context) ([]domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Event, 0, len(m.byID))
	for _, e := range m.byID {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memEvents) ListActive(ctx context.Context, limit int) ([]domain.Event, error) {
	all, _ := m.ListAll(ctx)
	sort.Slice(all, func(i, j int) bool { return all[i].Fecha.Before(all[j].Fecha) })
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memEvents) NextEvent(ctx context.Context) (*domain.Event, error) {
	active, _ := m.ListActive(ctx, 1)
	if len(active) == 0 {
		return nil, domain.ErrNotFound
	}
	return &active[0], nil
}

func (m *memEvents) CountActive(ctx context.Context) (int64, error) {
	all, _ := m.ListAll(ctx)
	return int64(len(all)), nil
}

func (m *memEvents) ActiveParticipantCounts(ctx context.Context) ([]domain.EventParticipantCount, error) {
	all, _ := m.ListAll(ctx)
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

func (m *memEvents) TotalActiveParticipants(ctx context.Context) (int64, error) {
	counts, _ := m.ActiveParticipantCounts(ctx)
	var total int64
	for _, c := range counts {
		total += c.Participantes
	}
	return total, nil
}

func (m *memEvents) ListByParticipant(ctx context.Context, userID int64) ([]domain.Event, error) {
	user, err := m.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	all, _ := m.ListAll(ctx)
	out := make([]domain.Event, 0)
	for _, e := range all {
		if e.HasParticipant(user.Username) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEvents) AddParticipant(ctx context.Context, eventID, userID int64) error {
	user, err := m.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[eventID]
	if !ok {
		return domain.ErrNotFound
	}
	e.Participantes = append(e.Participantes, user.Username)
	return nil
}

func (m *memEvents) RemoveParticipant(ctx context.Context, eventID, userID int64) error {
	user, err := m.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[eventID]
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

type memMilestones struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.Milestone
}

func newMemMilestones() *memMilestones {
	return &memMilestones{nextID: 1, byID: map[int64]*domain.Milestone{}}
}

func (m *memMilestones) Create(_ context.Context, hito *domain.Milestone) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	hito.ID = m.nextID
	m.nextID++
	cp := *hito
	m.byID[cp.ID] = &cp
	return nil
}

func (m *memMilestones) GetByID(_ context.Context, id int64) (*domain.Milestone, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *memMilestones) ListAll(_ context.Context) ([]domain.Milestone, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Milestone, 0, len(m.byID))
	for _, h := range m.byID {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memMilestones) ListByBeneficiary(ctx context.Context, userID int64) ([]domain.Milestone, error) {
	all, _ := m.ListAll(ctx)
	out := make([]domain.Milestone, 0)
	for _, h := range all {
		if h.BeneficiaryID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memMilestones) Update(_ context.Context, hito *domain.Milestone) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[hito.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *hito
	m.byID[cp.ID] = &cp
	return nil
}

func (m *memMilestones) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memGuests struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.ExternalGuest
}

func newMemGuests() *memGuests {
	return &memGuests{nextID: 1, byID: map[int64]*domain.ExternalGuest{}}
}

func (m *memGuests) Create(_ context.Context, guest *domain.ExternalGuest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.byID {
		if g.EventID == guest.EventID && g.Correo == guest.Correo {
			return domain.ErrDuplicateGuest
		}
	}
	guest.ID = m.nextID
	m.nextID++
	cp := *guest
	m.byID[cp.ID] = &cp
	return nil
}

func (m *memGuests) FindByEventAndCorreo(_ context.Context, eventID int64, correo string) (*domain.ExternalGuest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.byID {
		if g.EventID == eventID && g.Correo == correo {
			cp := *g
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memGuests) ListByEvent(_ context.Context, eventID int64) ([]domain.ExternalGuest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ExternalGuest, 0)
	for _, g := range m.byID {
		if g.EventID == eventID {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// stubCodec records what Issue was called with and returns a fixed token.
type stubCodec struct {
	issuedSubject string
	issuedRole    domain.Role
}

func (c *stubCodec) Issue(subject string, role domain.Role) (string, error) {
	c.issuedSubject = subject
	c.issuedRole = role
	return "token-" + subject, nil
}

func (c *stubCodec) Decode(string) (domain.TokenClaims, error) {
	return domain.TokenClaims{}, domain.ErrInvalidToken
}

func (c *stubCodec) SubjectOf(string) (string, error) {
	return "", domain.ErrInvalidToken
}
