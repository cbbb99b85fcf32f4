package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/ledgerone/ledgerone-api/internal/api/handler/v1"
	"github.com/ledgerone/ledgerone-api/internal/api/handler/v1/response"
	"github.com/ledgerone/ledgerone-api/internal/api/middleware"
	"github.com/ledgerone/ledgerone-api/internal/config"
	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/service"
)

type stubAuthService struct {
	identity domain.Identity
	err      error
}

func (s *stubAuthService) Signup(_ context.Context, _, _, _ string) (domain.Identity, error) {
	return s.identity, s.err
}

func (s *stubAuthService) LoginOwner(_ context.Context, _, _ string) (domain.Identity, error) {
	return s.identity, s.err
}

func (s *stubAuthService) LoginEmployee(_ context.Context, _, _ uint, _ string) (domain.Identity, error) {
	return s.identity, s.err
}

func newAuthRouter(svc v1.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := v1.NewAuthHandler(&config.APIConfig{JWTSigningKey: "test-key"}, svc)
	router.POST("/auth/signup", handler.HandleSignup)
	router.POST("/auth/login", handler.HandleLogin)
	router.POST("/auth/employee-login", handler.HandleEmployeeLogin)
	router.GET("/auth/session", func(ctx *gin.Context) {
		middleware.SetIdentity(ctx, domain.Identity{
			Kind:     domain.IdentityOwner,
			Owner:    &domain.Owner{ID: 1, Email: "owner@shop.test"},
			Business: &domain.Business{ID: 1, Name: "Corner Shop"},
		})
		handler.HandleGetSession(ctx)
	})

	return router
}

func TestHandleSignup(t *testing.T) {
	ownerIdentity := domain.Identity{
		Kind:     domain.IdentityOwner,
		Owner:    &domain.Owner{ID: 1, Email: "owner@shop.test"},
		Business: &domain.Business{ID: 1, Name: "Corner Shop"},
	}

	t.Run("returns a token with the identity", func(t *testing.T) {
		router := newAuthRouter(&stubAuthService{identity: ownerIdentity})

		body := `{"email": "owner@shop.test", "password": "secret123", "business_name": "Corner Shop"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var got response.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.NotEmpty(t, got.Token)
		assert.Equal(t, "owner", got.Identity.Role)
		require.NotNil(t, got.Identity.Business)
		assert.Equal(t, "Corner Shop", got.Identity.Business.Name)
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		router := newAuthRouter(&stubAuthService{identity: ownerIdentity})

		body := `{"email": "owner@shop.test", "password": "short", "business_name": "Corner Shop"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		router := newAuthRouter(&stubAuthService{err: service.ErrOwnerEmailExists})

		body := `{"email": "owner@shop.test", "password": "secret123", "business_name": "Corner Shop"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleLogin(t *testing.T) {
	t.Run("wrong credentials map to unauthorized", func(t *testing.T) {
		router := newAuthRouter(&stubAuthService{err: service.ErrInvalidCredentials})

		body := `{"email": "owner@shop.test", "password": "wrongpass1"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleEmployeeLogin(t *testing.T) {
	employeeIdentity := domain.Identity{
		Kind:     domain.IdentityEmployee,
		Business: &domain.Business{ID: 1, Name: "Corner Shop"},
		Employee: &domain.Employee{ID: 7, BusinessID: 1, Name: "Dana", IsActive: true},
	}

	t.Run("returns an employee token", func(t *testing.T) {
		router := newAuthRouter(&stubAuthService{identity: employeeIdentity})

		body := `{"business_id": 1, "employee_id": 7, "passcode": "1234"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/employee-login", strings.NewReader(body))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got response.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.NotEmpty(t, got.Token)
		assert.Equal(t, "employee", got.Identity.Role)
	})

	t.Run("rejects a non-numeric passcode", func(t *testing.T) {
		router := newAuthRouter(&stubAuthService{identity: employeeIdentity})

		body := `{"business_id": 1, "employee_id": 7, "passcode": "abcd"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/employee-login", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong passcode maps to unauthorized", func(t *testing.T) {
		router := newAuthRouter(&stubAuthService{err: service.ErrInvalidCredentials})

		body := `{"business_id": 1, "employee_id": 7, "passcode": "9999"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/employee-login", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleGetSession(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got response.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "owner", got.Role)
}
