// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pedro Falcao

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/mock"
	"github.com/pfalcao/go-biblioteca/internal/service"
	"github.com/pfalcao/go-biblioteca/internal/store"
	"github.com/pfalcao/go-biblioteca/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler builds a Handler whose services are all gomock mocks.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockAuthService, *mock.MockCatalogService, *mock.MockLoanService) {
	t.Helper()
	mockAuth := mock.NewMockAuthService(ctrl)
	mockCatalog := mock.NewMockCatalogService(ctrl)
	mockLoans := mock.NewMockLoanService(ctrl)

	h := NewHandler(&service.Services{
		AuthService:    mockAuth,
		CatalogService: mockCatalog,
		LoanService:    mockLoans,
	}, logger.Nop())

	return h, mockAuth, mockCatalog, mockLoans
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 7, Username: "maria"}, nil)
	mockAuth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{SignedString: signedToken, UserID: 7}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register",
		strings.NewReader(jsonBody(t, models.User{Username: "maria", Password: "super-secret"})))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var created models.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(7), created.ID)
}

func TestRegister_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrValidationPassword)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register",
		strings.NewReader(jsonBody(t, models.User{Username: "maria", Password: "123"})))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register",
		strings.NewReader(jsonBody(t, models.User{Username: "maria", Password: "super-secret"})))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 7, Username: "maria"}, nil)
	mockAuth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{SignedString: signedToken, UserID: 7}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login",
		strings.NewReader(jsonBody(t, models.User{Username: "maria", Password: "super-secret"})))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login",
		strings.NewReader(jsonBody(t, models.User{Username: "maria", Password: "wrong"})))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestLogin_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrNoUserWasFound)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login",
		strings.NewReader(jsonBody(t, models.User{Username: "ghost", Password: "super-secret"})))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
