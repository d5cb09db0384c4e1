package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/types"
)

type fakeUserStore struct {
	byEmail map[string]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*db.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (*db.User, error) {
	user := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.byEmail[email] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, &db.NotFoundError{Entity: "user", ID: email}
	}
	return user, nil
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func newTestUserService(store UserStore) *UserService {
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10})
}

func TestSignupAndLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	user, err := svc.Signup(context.Background(), &types.SignupRequest{
		Name: "Jane", Email: "jane@example.com", Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// Stored hash is not the plaintext password.
	assert.NotEqual(t, "correct horse", store.byEmail["jane@example.com"].PasswordHash)

	logged, err := svc.Login(context.Background(), &types.LoginRequest{
		Email: "jane@example.com", Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	_, err := svc.Signup(context.Background(), &types.SignupRequest{
		Name: "Jane", Email: "jane@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), &types.SignupRequest{
		Name: "Other Jane", Email: "jane@example.com", Password: "different horse",
	})
	var dup *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "jane@example.com", dup.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	_, err := svc.Signup(context.Background(), &types.SignupRequest{
		Name: "Jane", Email: "jane@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email: "jane@example.com", Password: "wrong horse",
	})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email: "nobody@example.com", Password: "correct horse",
	})
	assert.ErrorAs(t, err, &invalid)
}
