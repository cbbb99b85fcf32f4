package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ledgerone/ledgerone-api/internal/api/handler/v1/request"
	"github.com/ledgerone/ledgerone-api/internal/api/handler/v1/response"
	"github.com/ledgerone/ledgerone-api/internal/api/middleware"
	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository"
	"github.com/ledgerone/ledgerone-api/internal/service"
)

type SaleService interface {
	CommitSale(ctx context.Context, identity domain.Identity, cart domain.Cart, method domain.PaymentMethod, idempotencyKey string) (domain.Transaction, error)
	ListSales(ctx context.Context, businessID uint, filter repository.SaleFilter) ([]domain.Transaction, error)
	GetSale(ctx context.Context, id, businessID uint) (domain.Transaction, error)
}

type SaleHandler struct {
	svc SaleService
}

func NewSaleHandler(svc SaleService) *SaleHandler {
	return &SaleHandler{
		svc: svc,
	}
}

// HandleCreateSale godoc
// @Summary      Commit a sale and decrement stock atomically
// @Tags         sales
// @Produce      json
// @Param        request   body     request.CreateSaleRequest true "request body"
// @Success      201 {object}   domain.Transaction
// @Failure      400 {object}   response.Err
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      409 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /sales [post]
func (h *SaleHandler) HandleCreateSale(ctx *gin.Context) {
	req := request.CreateSaleRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity := middleware.GetIdentity(ctx)

	sale, err := h.svc.CommitSale(ctx.Request.Context(), identity, req.Cart(),
		domain.PaymentMethod(req.PaymentMethod), req.IdempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrInvalidPaymentMethod),
			errors.Is(err, service.ErrInvalidCartLine):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrInsufficientStock):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleCreateSale -> h.svc.CommitSale -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// HandleListSales godoc
// @Summary      List sales, newest first
// @Tags         sales
// @Produce      json
// @Param        from             query    string  false "start of range, RFC 3339 or YYYY-MM-DD"
// @Param        to               query    string  false "end of range, RFC 3339 or YYYY-MM-DD"
// @Param        employee_id      query    int     false "filter by employee"
// @Param        payment_method   query    string  false "filter by payment method"
// @Success      200 {object}   []domain.Transaction
// @Failure      400 {object}   response.Err
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /sales [get]
func (h *SaleHandler) HandleListSales(ctx *gin.Context) {
	filter, err := buildSaleFilter(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity := middleware.GetIdentity(ctx)

	sales, err := h.svc.ListSales(ctx.Request.Context(), identity.Business.ID, filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListSales -> h.svc.ListSales -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sales)
}

// HandleGetSale godoc
// @Summary      Get a sale with its line items
// @Tags         sales
// @Produce      json
// @Param        saleID   path     int  true "sale ID"
// @Success      200 {object}   domain.Transaction
// @Failure      400 {object}   response.Err
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      404 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /sales/{saleID} [get]
func (h *SaleHandler) HandleGetSale(ctx *gin.Context) {
	saleID, err := parseIDParam(ctx, "saleID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity := middleware.GetIdentity(ctx)

	sale, err := h.svc.GetSale(ctx.Request.Context(), saleID, identity.Business.ID)
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetSale -> h.svc.GetSale -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sale)
}

func buildSaleFilter(ctx *gin.Context) (repository.SaleFilter, error) {
	var filter repository.SaleFilter

	if raw := ctx.Query("from"); raw != "" {
		from, err := parseTimeParam(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid from %q", raw)
		}
		filter.From = &from
	}

	if raw := ctx.Query("to"); raw != "" {
		to, err := parseTimeParam(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid to %q", raw)
		}
		filter.To = &to
	}

	if raw := ctx.Query("employee_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid employee_id %q", raw)
		}
		employeeID := uint(id)
		filter.EmployeeID = &employeeID
	}

	filter.PaymentMethod = ctx.Query("payment_method")

	return filter, nil
}

func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", raw)
}
