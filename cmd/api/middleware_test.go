package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valeriy131100/star-burger/internal/domain"
	"github.com/valeriy131100/star-burger/internal/repo"
	"github.com/valeriy131100/star-burger/internal/service"
	"github.com/valeriy131100/star-burger/internal/session"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memoryUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, fmt.Errorf("user: %w", repo.ErrNotFound)
}

func (r *memoryUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user: %w", repo.ErrNotFound)
}

func TestManagerOnly(t *testing.T) {
	users := &memoryUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
	sessions := session.NewMemoryStore()
	logger := zap.NewNop().Sugar()
	app := &application{
		logger:      logger,
		authService: service.NewAuthService(users, sessions, time.Hour, logger),
	}

	staff := &domain.User{Username: "manager", IsStaff: true}
	require.NoError(t, users.Create(context.Background(), staff))
	customer := &domain.User{Username: "customer"}
	require.NoError(t, users.Create(context.Background(), customer))

	staffToken, err := sessions.Create(context.Background(), staff.ID.Hex(), time.Hour)
	require.NoError(t, err)
	customerToken, err := sessions.Create(context.Background(), customer.ID.Hex(), time.Hour)
	require.NoError(t, err)
	// a token minted for a user row deleted afterwards
	orphanToken, err := sessions.Create(context.Background(), primitive.NewObjectID().Hex(), time.Hour)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := app.managerOnly(next)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{"staff session passes", staffToken, http.StatusOK},
		{"non-staff session is forbidden", customerToken, http.StatusForbidden},
		{"unknown token is unauthorized", "nonsense", http.StatusUnauthorized},
		{"session of a deleted user is unauthorized", orphanToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/manager/orders", nil)
			r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.token})
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	t.Run("missing cookie is unauthorized", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/manager/orders", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
