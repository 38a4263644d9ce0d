package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventportal/internal/authz"
	"eventportal/internal/domain"
)

func adminCaller() *authz.Caller {
	return &authz.Caller{ID: 1, Roles: []string{domain.RoleAdmin}}
}

type adminFixture struct {
	accounts *fakeAccountRepo
	roles    *fakeRoleRepo
	events   *fakeEventRepo
	guests   *fakeGuestRepo
	emails   *fakeEmailService
	svc      domain.AdminService
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		accounts: newFakeAccountRepo(),
		roles:    newFakeRoleRepo(),
		events:   newFakeEventRepo(),
		guests:   newFakeGuestRepo(),
		emails:   &fakeEmailService{},
	}
	f.svc = NewAdminService(f.accounts, f.roles, f.events, f.guests, fakeHasher{}, f.emails)
	return f
}

func TestAdminService_Dashboard(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	// 3 events (2 future, 1 past) and 5 guests.
	past := domain.NewEvent(2, "Past", "", "", time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, f.events.Create(ctx, past))
	later := domain.NewEvent(2, "Later", "", "", time.Now().Add(72*time.Hour), time.Now())
	require.NoError(t, f.events.Create(ctx, later))
	sooner := domain.NewEvent(2, "Sooner", "", "", time.Now().Add(24*time.Hour), time.Now())
	require.NoError(t, f.events.Create(ctx, sooner))
	for i := 0; i < 5; i++ {
		g := domain.NewGuest(past.ID, "G", string(rune('a'+i))+"@x.com", "+1", time.Now())
		require.NoError(t, f.guests.Create(ctx, g))
	}

	stats, err := f.svc.Dashboard(ctx, adminCaller())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, 5, stats.TotalGuests)
	require.Len(t, stats.UpcomingEvents, 2)
	assert.Equal(t, "Sooner", stats.UpcomingEvents[0].Title)
	assert.Equal(t, "Later", stats.UpcomingEvents[1].Title)

	t.Run("organiser denied", func(t *testing.T) {
		_, err := f.svc.Dashboard(ctx, organiserCaller(2))
		require.ErrorIs(t, err, domain.ErrInsufficientRole)
	})

	t.Run("anonymous denied", func(t *testing.T) {
		_, err := f.svc.Dashboard(ctx, nil)
		require.ErrorIs(t, err, domain.ErrInsufficientRole)
	})
}

func TestAdminService_CreateOrganiser(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	account, err := f.svc.CreateOrganiser(ctx, adminCaller(), "new@example.com", "New Organiser", goodPassword)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RoleOrganiser}, account.Roles)
	require.Len(t, f.emails.welcomes, 1)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := f.svc.CreateOrganiser(ctx, adminCaller(), "new@example.com", "Again", goodPassword)
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := f.svc.CreateOrganiser(ctx, adminCaller(), "other@example.com", "Other", "short")
		require.ErrorIs(t, err, domain.ErrWeakCredential)
	})

	t.Run("organiser denied", func(t *testing.T) {
		_, err := f.svc.CreateOrganiser(ctx, organiserCaller(2), "x@example.com", "X", goodPassword)
		require.ErrorIs(t, err, domain.ErrInsufficientRole)
	})
}

func TestAdminService_ListAllEvents(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	older := domain.NewEvent(2, "Older", "", "", time.Now().Add(time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, f.events.Create(ctx, older))
	newer := domain.NewEvent(3, "Newer", "", "", time.Now().Add(time.Hour), time.Now())
	require.NoError(t, f.events.Create(ctx, newer))

	list, err := f.svc.ListAllEvents(ctx, adminCaller())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Newer", list[0].Title)
	assert.Equal(t, "Older", list[1].Title)
}

func TestAdminService_DeleteEvent(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	event := domain.NewEvent(2, "Any", "", "", time.Now().Add(time.Hour), time.Now())
	require.NoError(t, f.events.Create(ctx, event))

	t.Run("organiser denied even for own event", func(t *testing.T) {
		require.ErrorIs(t, f.svc.DeleteEvent(ctx, organiserCaller(2), event.ID), domain.ErrInsufficientRole)
	})

	t.Run("admin deletes regardless of owner", func(t *testing.T) {
		require.NoError(t, f.svc.DeleteEvent(ctx, adminCaller(), event.ID))
	})

	t.Run("missing event", func(t *testing.T) {
		require.ErrorIs(t, f.svc.DeleteEvent(ctx, adminCaller(), 999), domain.ErrEventNotFound)
	})
}

func TestAdminService_DeleteOrganiser(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	organiser, err := f.svc.CreateOrganiser(ctx, adminCaller(), "o@example.com", "O", goodPassword)
	require.NoError(t, err)
	f.roles.byAccount[organiser.ID] = []*domain.Role{f.roles.byCode[domain.RoleOrganiser]}

	admin := domain.NewAccount("root@example.com", "Root", "h", "s", time.Now())
	require.NoError(t, f.accounts.create(admin))
	f.roles.byAccount[admin.ID] = []*domain.Role{f.roles.byCode[domain.RoleAdmin]}

	t.Run("admin-role account is refused as not found", func(t *testing.T) {
		require.ErrorIs(t, f.svc.DeleteOrganiser(ctx, adminCaller(), admin.ID), domain.ErrAccountNotFound)
	})

	t.Run("role-less account is refused as not found", func(t *testing.T) {
		plain := domain.NewAccount("plain@example.com", "Plain", "h", "s", time.Now())
		require.NoError(t, f.accounts.create(plain))
		require.ErrorIs(t, f.svc.DeleteOrganiser(ctx, adminCaller(), plain.ID), domain.ErrAccountNotFound)
	})

	t.Run("organiser account is deleted", func(t *testing.T) {
		require.NoError(t, f.svc.DeleteOrganiser(ctx, adminCaller(), organiser.ID))
		assert.Contains(t, f.accounts.deleted, organiser.ID)
	})

	t.Run("organiser caller denied", func(t *testing.T) {
		require.ErrorIs(t, f.svc.DeleteOrganiser(ctx, organiserCaller(2), organiser.ID), domain.ErrInsufficientRole)
	})
}
