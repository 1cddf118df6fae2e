package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/capsule-retail/inventory-dashboard/internal/database"
	"github.com/capsule-retail/inventory-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	svc      *AuthService
	users    *database.UserStore
	activity *memoryWriter
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()

	db := openTestDB(t)
	require.NoError(t, database.Seed(context.Background(), db, database.SeedOptions{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		AdminEmail:    "admin@retaildashboard.com",
		BcryptCost:    testCost,
	}))

	users := database.NewUserStore(db)
	activity := &memoryWriter{}
	return authFixture{
		svc:      NewAuthService(users, NewActivityRecorder(activity), testCost),
		users:    users,
		activity: activity,
	}
}

func TestAuthService_RegisterThenFind(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	id, err := f.svc.Register(ctx, RegisterInput{
		Username: "shopkeeper",
		Email:    "shop@example.com",
		Password: "Secret#123",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	u, err := f.svc.FindByUsername(ctx, "shopkeeper")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.Equal(t, "shop@example.com", u.Email)
	assert.NotEqual(t, "Secret#123", u.PasswordHash)

	assert.Equal(t, []models.ActivityType{models.ActivityRegister}, f.activity.Types())
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, RegisterInput{Username: "twin", Password: "Secret#123"})
	require.NoError(t, err)

	before, err := f.users.Count(ctx)
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, RegisterInput{Username: "twin", Password: "Other#4567"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	after, err := f.users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// only the first registration was recorded
	assert.Equal(t, []models.ActivityType{models.ActivityRegister}, f.activity.Types())
}

// racingUsers misses the pre-check and then loses the insert.
type racingUsers struct {
	UserRepository
	creates int
}

func (r *racingUsers) FindByUsername(context.Context, string) (*models.User, error) {
	return nil, database.ErrNotFound
}

func (r *racingUsers) Create(context.Context, *models.User) error {
	r.creates++
	return errors.Join(database.ErrDuplicate, errors.New("UNIQUE constraint failed: users.username"))
}

func TestAuthService_RegisterRace(t *testing.T) {
	users := &racingUsers{}
	svc := NewAuthService(users, NewActivityRecorder(&memoryWriter{}), testCost)

	_, err := svc.Register(context.Background(), RegisterInput{Username: "late", Password: "Secret#123"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.Equal(t, 1, users.creates)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Register(context.Background(), RegisterInput{Username: "  ", Password: "Secret#123"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Register(context.Background(), RegisterInput{Username: "nopass"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_LoginAdmin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	p, err := f.svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Username)
	assert.Equal(t, models.RoleAdmin, p.Role)
	assert.True(t, p.IsAdmin())

	u, err := f.users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, u.LastLogin)
	assert.True(t, u.LastLogin.Equal(now))

	assert.Equal(t, []models.ActivityType{models.ActivityLogin}, f.activity.Types())
}

func TestAuthService_LoginRegisteredUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, RegisterInput{Username: "clerk", Password: "Secret#123"})
	require.NoError(t, err)

	p, err := f.svc.Login(ctx, "clerk", "Secret#123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, p.Role)
	assert.False(t, p.IsAdmin())
}

func TestAuthService_LoginRejects(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, "ghost", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Empty(t, f.activity.Types())
}

func TestAuthService_LoginSurvivesAuditOutage(t *testing.T) {
	f := newAuthFixture(t)
	w := &failingWriter{}
	svc := NewAuthService(f.users, NewActivityRecorder(w), testCost)

	p, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, p.Role)
	assert.Equal(t, 1, w.Calls())
}
