package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerone/ledgerone-api/internal/api/middleware"
	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/pkg/jwthelper"
	"github.com/ledgerone/ledgerone-api/internal/service"
)

const signingKey = "test-key"

type stubResolver struct {
	owner    domain.Identity
	employee domain.Identity
	err      error
}

func (s *stubResolver) ResolveOwner(_ context.Context, _ uint) (domain.Identity, error) {
	return s.owner, s.err
}

func (s *stubResolver) ResolveEmployee(_ context.Context, _, _ uint) (domain.Identity, error) {
	return s.employee, s.err
}

func newProtectedRouter(resolver middleware.SessionResolver, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authenticator := middleware.NewAuthenticator(signingKey, resolver)
	handlers := append([]gin.HandlerFunc{authenticator.VerifyJWT()}, extra...)
	handlers = append(handlers, func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	router.GET("/protected", handlers...)

	return router
}

func ownerToken(t *testing.T) string {
	t.Helper()

	token, err := jwthelper.GenerateOwnerToken([]byte(signingKey), 1, "test-agent")
	require.NoError(t, err)

	return token
}

func employeeToken(t *testing.T) string {
	t.Helper()

	token, err := jwthelper.GenerateEmployeeToken([]byte(signingKey), 1, 7, "test-agent")
	require.NoError(t, err)

	return token
}

func ownerIdentity() domain.Identity {
	return domain.Identity{
		Kind:     domain.IdentityOwner,
		Owner:    &domain.Owner{ID: 1},
		Business: &domain.Business{ID: 1},
	}
}

func employeeIdentity(permissions domain.EmployeePermissions) domain.Identity {
	return domain.Identity{
		Kind:     domain.IdentityEmployee,
		Business: &domain.Business{ID: 1},
		Employee: &domain.Employee{ID: 7, BusinessID: 1, Permissions: permissions, IsActive: true},
	}
}

func get(router *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	return w
}

func TestVerifyJWT(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		router := newProtectedRouter(&stubResolver{owner: ownerIdentity()})

		assert.Equal(t, http.StatusUnauthorized, get(router, "").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		router := newProtectedRouter(&stubResolver{owner: ownerIdentity()})

		assert.Equal(t, http.StatusUnauthorized, get(router, "not-a-jwt").Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		router := newProtectedRouter(&stubResolver{owner: ownerIdentity()})

		token, err := jwthelper.GenerateOwnerToken([]byte("other-key"), 1, "test-agent")
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, get(router, token).Code)
	})

	t.Run("valid owner token", func(t *testing.T) {
		router := newProtectedRouter(&stubResolver{owner: ownerIdentity()})

		assert.Equal(t, http.StatusOK, get(router, ownerToken(t)).Code)
	})

	t.Run("revoked session", func(t *testing.T) {
		router := newProtectedRouter(&stubResolver{err: service.ErrInvalidCredentials})

		assert.Equal(t, http.StatusUnauthorized, get(router, employeeToken(t)).Code)
	})
}

func TestRequirePage(t *testing.T) {
	t.Run("owner passes every page", func(t *testing.T) {
		router := newProtectedRouter(&stubResolver{owner: ownerIdentity()},
			middleware.RequirePage(domain.PageStaff))

		assert.Equal(t, http.StatusOK, get(router, ownerToken(t)).Code)
	})

	t.Run("employee with the flag passes", func(t *testing.T) {
		resolver := &stubResolver{employee: employeeIdentity(domain.EmployeePermissions{POSAccess: true})}
		router := newProtectedRouter(resolver, middleware.RequirePage(domain.PagePOS))

		assert.Equal(t, http.StatusOK, get(router, employeeToken(t)).Code)
	})

	t.Run("employee without the flag is forbidden", func(t *testing.T) {
		resolver := &stubResolver{employee: employeeIdentity(domain.EmployeePermissions{POSAccess: true})}
		router := newProtectedRouter(resolver, middleware.RequirePage(domain.PageInventory))

		assert.Equal(t, http.StatusForbidden, get(router, employeeToken(t)).Code)
	})

	t.Run("any of several pages grants access", func(t *testing.T) {
		resolver := &stubResolver{employee: employeeIdentity(domain.EmployeePermissions{POSAccess: true})}
		router := newProtectedRouter(resolver,
			middleware.RequirePage(domain.PageInventory, domain.PagePOS))

		assert.Equal(t, http.StatusOK, get(router, employeeToken(t)).Code)
	})

	t.Run("owner without a business yet is forbidden", func(t *testing.T) {
		identity := ownerIdentity()
		identity.Business = nil
		router := newProtectedRouter(&stubResolver{owner: identity},
			middleware.RequirePage(domain.PageDashboard))

		assert.Equal(t, http.StatusForbidden, get(router, ownerToken(t)).Code)
	})
}

func TestRequirePageEdit(t *testing.T) {
	t.Run("owner edits inventory", func(t *testing.T) {
		router := newProtectedRouter(&stubResolver{owner: ownerIdentity()},
			middleware.RequirePageEdit(domain.PageInventory))

		assert.Equal(t, http.StatusOK, get(router, ownerToken(t)).Code)
	})

	t.Run("employee with view access cannot edit inventory", func(t *testing.T) {
		resolver := &stubResolver{employee: employeeIdentity(domain.EmployeePermissions{InventoryAccess: true})}
		router := newProtectedRouter(resolver, middleware.RequirePageEdit(domain.PageInventory))

		assert.Equal(t, http.StatusForbidden, get(router, employeeToken(t)).Code)
	})
}

func TestRequireOwner(t *testing.T) {
	t.Run("owner passes", func(t *testing.T) {
		router := newProtectedRouter(&stubResolver{owner: ownerIdentity()}, middleware.RequireOwner())

		assert.Equal(t, http.StatusOK, get(router, ownerToken(t)).Code)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		resolver := &stubResolver{employee: employeeIdentity(domain.EmployeePermissions{
			POSAccess: true, InventoryAccess: true, DashboardAccess: true,
		})}
		router := newProtectedRouter(resolver, middleware.RequireOwner())

		assert.Equal(t, http.StatusForbidden, get(router, employeeToken(t)).Code)
	})
}
