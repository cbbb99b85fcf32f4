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
	"github.com/ledgerone/ledgerone-api/internal/api/middleware"
	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository"
	"github.com/ledgerone/ledgerone-api/internal/service"
)

type stubSaleService struct {
	commitResult domain.Transaction
	commitErr    error

	gotCart   domain.Cart
	gotMethod domain.PaymentMethod
	gotKey    string
}

func (s *stubSaleService) CommitSale(_ context.Context, _ domain.Identity, cart domain.Cart, method domain.PaymentMethod, idempotencyKey string) (domain.Transaction, error) {
	s.gotCart = cart
	s.gotMethod = method
	s.gotKey = idempotencyKey

	if s.commitErr != nil {
		return domain.Transaction{}, s.commitErr
	}

	return s.commitResult, nil
}

func (s *stubSaleService) ListSales(_ context.Context, _ uint, _ repository.SaleFilter) ([]domain.Transaction, error) {
	return []domain.Transaction{s.commitResult}, nil
}

func (s *stubSaleService) GetSale(_ context.Context, id, _ uint) (domain.Transaction, error) {
	if id != s.commitResult.ID {
		return domain.Transaction{}, service.ErrTransactionNotFound
	}

	return s.commitResult, nil
}

func posIdentity() domain.Identity {
	return domain.Identity{
		Kind:     domain.IdentityOwner,
		Owner:    &domain.Owner{ID: 1},
		Business: &domain.Business{ID: 1},
	}
}

func newSaleRouter(svc v1.SaleService, identity domain.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		middleware.SetIdentity(ctx, identity)
	})

	handler := v1.NewSaleHandler(svc)
	router.POST("/sales", handler.HandleCreateSale)
	router.GET("/sales", handler.HandleListSales)
	router.GET("/sales/:saleID", handler.HandleGetSale)

	return router
}

func TestHandleCreateSale(t *testing.T) {
	validBody := `{
		"payment_method": "cash",
		"idempotency_key": "key-1",
		"items": [{"name": "Espresso", "unit_price": 3.5, "quantity": 2, "product_id": 3}]
	}`

	t.Run("commits the sale", func(t *testing.T) {
		svc := &stubSaleService{commitResult: domain.Transaction{ID: 9, BusinessID: 1, TotalAmount: 7}}
		router := newSaleRouter(svc, posIdentity())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(validBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, domain.PaymentCash, svc.gotMethod)
		assert.Equal(t, "key-1", svc.gotKey)
		require.Len(t, svc.gotCart, 1)
		assert.Equal(t, "Espresso", svc.gotCart[0].Name)
		require.NotNil(t, svc.gotCart[0].ProductID)
		assert.Equal(t, uint(3), *svc.gotCart[0].ProductID)

		var got domain.Transaction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint(9), got.ID)
	})

	t.Run("rejects an unknown payment method", func(t *testing.T) {
		svc := &stubSaleService{}
		router := newSaleRouter(svc, posIdentity())

		body := `{"payment_method": "cheque", "items": [{"name": "Espresso", "unit_price": 3.5, "quantity": 1}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		svc := &stubSaleService{}
		router := newSaleRouter(svc, posIdentity())

		body := `{"payment_method": "cash", "items": []}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps insufficient stock to conflict", func(t *testing.T) {
		svc := &stubSaleService{commitErr: service.ErrInsufficientStock}
		router := newSaleRouter(svc, posIdentity())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(validBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleListSales(t *testing.T) {
	svc := &stubSaleService{commitResult: domain.Transaction{ID: 9, BusinessID: 1}}
	router := newSaleRouter(svc, posIdentity())

	t.Run("lists sales", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sales", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a malformed from date", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sales?from=yesterday", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("accepts date-only bounds", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sales?from=2026-08-01&to=2026-08-31", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleGetSale(t *testing.T) {
	svc := &stubSaleService{commitResult: domain.Transaction{ID: 9, BusinessID: 1}}
	router := newSaleRouter(svc, posIdentity())

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sales/9", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sales/42", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sales/not-a-number", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
