package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"eventportal/internal/domain"
)

// fakeAccountRepo is an in-memory AccountRepository for tests.
type fakeAccountRepo struct {
	byID      map[int64]*domain.Account
	roles     map[int64][]int64 // accountID -> roleIDs
	nextID    int64
	createErr error
	deleted   []int64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byID:   make(map[int64]*domain.Account),
		roles:  make(map[int64][]int64),
		nextID: 1,
	}
}

// create inserts the account without a role. Used directly by tests that
// need to stage pre-existing rows, including role-less ones.
func (f *fakeAccountRepo) create(a *domain.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if strings.EqualFold(existing.Email, a.Email) {
			return domain.ErrDuplicateEmail
		}
	}
	a.ID = f.nextID
	f.nextID++
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAccountRepo) CreateWithRole(ctx context.Context, a *domain.Account, roleID int64) error {
	if err := f.create(a); err != nil {
		return err
	}
	f.roles[a.ID] = append(f.roles[a.ID], roleID)
	return nil
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	for _, a := range f.byID {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(f.byID, id)
	delete(f.roles, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAccountRepo) AssignRole(ctx context.Context, accountID, roleID int64) error {
	f.roles[accountID] = append(f.roles[accountID], roleID)
	return nil
}

func (f *fakeAccountRepo) RecordLoginFailure(ctx context.Context, id int64, failures int, lockedUntil *time.Time) error {
	a, ok := f.byID[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.FailedLogins = failures
	a.LockedUntil = lockedUntil
	return nil
}

func (f *fakeAccountRepo) ResetLoginFailures(ctx context.Context, id int64) error {
	a, ok := f.byID[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.FailedLogins = 0
	a.LockedUntil = nil
	return nil
}

func (f *fakeAccountRepo) ListOrganisers(ctx context.Context) ([]*domain.OrganiserSummary, error) {
	var out []*domain.OrganiserSummary
	for _, a := range f.byID {
		if a.HasRole(domain.RoleOrganiser) {
			out = append(out, &domain.OrganiserSummary{ID: a.ID, FullName: a.FullName, Email: a.Email, CreatedAt: a.CreatedAt})
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) CountByRole(ctx context.Context, roleCode string) (int, error) {
	n := 0
	for _, a := range f.byID {
		if a.HasRole(roleCode) {
			n++
		}
	}
	return n, nil
}

// fakeRoleRepo is an in-memory RoleRepository seeded with both roles.
type fakeRoleRepo struct {
	byCode    map[string]*domain.Role
	byAccount map[int64][]*domain.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		byCode: map[string]*domain.Role{
			domain.RoleAdmin:     {ID: 1, Code: domain.RoleAdmin},
			domain.RoleOrganiser: {ID: 2, Code: domain.RoleOrganiser},
		},
		byAccount: make(map[int64][]*domain.Role),
	}
}

func (f *fakeRoleRepo) GetByCode(ctx context.Context, code string) (*domain.Role, error) {
	if r, ok := f.byCode[code]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRoleRepo) ListByAccountID(ctx context.Context, accountID int64) ([]*domain.Role, error) {
	return f.byAccount[accountID], nil
}

func (f *fakeRoleRepo) Ensure(ctx context.Context, code string) (*domain.Role, error) {
	if r, ok := f.byCode[code]; ok {
		return r, nil
	}
	r := &domain.Role{ID: int64(len(f.byCode) + 1), Code: code}
	f.byCode[code] = r
	return r, nil
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID    map[int64]*domain.Event
	nextID  int64
	deleted []int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:   make(map[int64]*domain.Event),
		nextID: 1,
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	e.ID = f.nextID
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEventNotFound
}

func (f *fakeEventRepo) Update(ctx context.Context, id int64, upd domain.EventUpdate) (*domain.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	if upd.StartsAt != nil {
		e.StartsAt = *upd.StartsAt
	}
	return e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEventRepo) ListByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.byID {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (f *fakeEventRepo) ListAll(ctx context.Context) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeEventRepo) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.byID {
		if e.StartsAt.After(now) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEventRepo) Count(ctx context.Context) (int, error) {
	return len(f.byID), nil
}

// fakeGuestRepo is an in-memory GuestRepository for tests. It is safe for
// concurrent use, like the store it stands in for.
type fakeGuestRepo struct {
	mu        sync.Mutex
	byID      map[int64]*domain.Guest
	nextID    int64
	createErr error
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{
		byID:   make(map[int64]*domain.Guest),
		nextID: 1,
	}
}

func (f *fakeGuestRepo) Create(ctx context.Context, g *domain.Guest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.EventID == g.EventID && strings.EqualFold(existing.Email, g.Email) {
			return domain.ErrDuplicateRegistration
		}
	}
	g.ID = f.nextID
	f.nextID++
	f.byID[g.ID] = g
	return nil
}

func (f *fakeGuestRepo) GetByID(ctx context.Context, id int64) (*domain.GuestDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok := f.byID[id]; ok {
		return &domain.GuestDetails{Guest: *g}, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGuestRepo) GetByEventAndEmail(ctx context.Context, eventID int64, email string) (*domain.Guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.byID {
		if g.EventID == eventID && strings.EqualFold(g.Email, email) {
			return g, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGuestRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Guest
	for _, g := range f.byID {
		if g.EventID == eventID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RegisteredAt.Before(out[j].RegisteredAt) })
	return out, nil
}

func (f *fakeGuestRepo) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID), nil
}

// fakeSessionRepo is an in-memory SessionRepository for tests.
type fakeSessionRepo struct {
	byID map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[string]*domain.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, id string) error {
	if s, ok := f.byID[id]; ok && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

// fakeHasher is a transparent PasswordHasher so tests can reason about stored values.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return fmt.Sprintf("hash(%s,%s)", salt, password), nil
}

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash == fmt.Sprintf("hash(%s,%s)", salt, password) {
		return nil
	}
	return fmt.Errorf("hash mismatch")
}

// fakeTokenIssuer returns a predictable token embedding the session id.
type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Issue(claims *domain.TokenClaims, expiry time.Duration) (string, error) {
	return "token-" + claims.SessionID, nil
}

// fakeEmailService records what was sent.
type fakeEmailService struct {
	welcomes      []*domain.OrganiserWelcomeEmailData
	confirmations []*domain.GuestConfirmationEmailData
	err           error
}

func (f *fakeEmailService) SendOrganiserWelcome(ctx context.Context, data *domain.OrganiserWelcomeEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.welcomes = append(f.welcomes, data)
	return nil
}

func (f *fakeEmailService) SendGuestConfirmation(ctx context.Context, data *domain.GuestConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.confirmations = append(f.confirmations, data)
	return nil
}
