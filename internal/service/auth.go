package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/valeriy131100/star-burger/internal/domain"
	"github.com/valeriy131100/star-burger/internal/repo"
	"github.com/valeriy131100/star-burger/internal/session"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	users      repo.UserRepository
	sessions   session.Store
	sessionTTL time.Duration
	logger     *zap.SugaredLogger
}

func NewAuthService(
	users repo.UserRepository,
	sessions session.Store,
	sessionTTL time.Duration,
	logger *zap.SugaredLogger,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login checks the credentials and issues a session token. Unknown user and
// wrong password collapse into the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID.Hex(), s.sessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Infow("user logged in", "username", username)

	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Authenticate maps a session token back to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userIDHex, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return nil, fmt.Errorf("malformed session payload: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return user, nil
}

// EnsureAdmin creates the bootstrap staff account if it does not exist yet.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		IsStaff:      true,
	}); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	s.logger.Infow("bootstrap admin user created", "username", username)

	return nil
}
