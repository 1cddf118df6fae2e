package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/capsule-retail/inventory-dashboard/internal/database"
	"github.com/capsule-retail/inventory-dashboard/internal/models"
	"github.com/capsule-retail/inventory-dashboard/internal/session"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the credential store used by AuthService.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
}

type AuthService struct {
	users      UserRepository
	recorder   *ActivityRecorder
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(users UserRepository, recorder *ActivityRecorder, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		recorder:   recorder,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a user with the user role and returns its id. An
// existing username fails with ErrDuplicateUsername before anything is
// written.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (uint, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return 0, invalid("username is required")
	}
	if in.Password == "" {
		return 0, invalid("password is required")
	}

	_, err := s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return 0, ErrDuplicateUsername
	case !errors.Is(err, database.ErrNotFound):
		return 0, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, database.ErrDuplicate) {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}

	s.recorder.Record(ctx, user.ID, models.ActivityRegister, "New user registered: "+user.Username)
	return user.ID, nil
}

func (s *AuthService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.FindByUsername(ctx, strings.TrimSpace(username))
}

// Login checks the credentials and returns the principal to store in the
// session. Unknown users and wrong passwords give the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (session.Principal, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return session.Principal{}, ErrInvalidCredentials
		}
		return session.Principal{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return session.Principal{}, ErrInvalidCredentials
	}

	if err := s.users.TouchLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		return session.Principal{}, err
	}

	s.recorder.Record(ctx, user.ID, models.ActivityLogin, "User logged in: "+user.Username)

	return session.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// Logout only records the event. Tearing the session down is the caller's
// job.
func (s *AuthService) Logout(ctx context.Context, p session.Principal) {
	s.recorder.Record(ctx, p.UserID, models.ActivityLogout, "User logged out: "+p.Username)
}
