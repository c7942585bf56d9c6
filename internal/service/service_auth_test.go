// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pedro Falcao

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pfalcao/go-biblioteca/internal/config"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/mock"
	"github.com/pfalcao/go-biblioteca/internal/store"
	"github.com/pfalcao/go-biblioteca/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(mockUsers, config.Services{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-biblioteca-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	return svc, mockUsers
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Empty(t, u.Password, "plaintext password must be cleared before persistence")
			require.NotEmpty(t, u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("super-secret")))
			u.UserID = 7
			return u, nil
		})

	registered, err := svc.RegisterUser(ctx, models.User{Username: "maria", Password: "super-secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), registered.UserID)
}

func TestAuthService_RegisterUser_UsernameTooShort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "ab", Password: "super-secret"})

	require.ErrorIs(t, err, ErrValidationUsername)
}

func TestAuthService_RegisterUser_PasswordTooShort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "maria", Password: "12345"})

	require.ErrorIs(t, err, ErrValidationPassword)
}

func TestAuthService_RegisterUser_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.User{Username: "maria", Password: "super-secret"})

	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	mockUsers.EXPECT().FindUserByUsername(ctx, "maria").
		Return(models.User{UserID: 7, Username: "maria", PasswordHash: string(hash)}, nil)

	user, err := svc.Login(ctx, models.User{Username: "maria", Password: "super-secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	mockUsers.EXPECT().FindUserByUsername(ctx, "maria").
		Return(models.User{UserID: 7, Username: "maria", PasswordHash: string(hash)}, nil)

	_, err = svc.Login(ctx, models.User{Username: "maria", Password: "wrong-password"})

	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.User{Username: "ghost", Password: "super-secret"})

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.User{Username: "maria"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 7})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── ListUsers ────────────────────────────────────────────────────────────────

func TestAuthService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	expected := []models.UserListItem{{UserID: 1, Username: "maria"}, {UserID: 2, Username: "joao"}}
	mockUsers.EXPECT().GetAllUsers(ctx).Return(expected, nil)

	users, err := svc.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestAuthService_ListUsers_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	errStorage := errors.New("storage error")
	mockUsers.EXPECT().GetAllUsers(ctx).Return(nil, errStorage)

	_, err := svc.ListUsers(ctx)

	require.ErrorIs(t, err, errStorage)
}
