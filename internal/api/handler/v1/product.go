package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerone/ledgerone-api/internal/api/handler/v1/request"
	"github.com/ledgerone/ledgerone-api/internal/api/handler/v1/response"
	"github.com/ledgerone/ledgerone-api/internal/api/middleware"
	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/service"
)

type ProductService interface {
	ListProducts(ctx context.Context, businessID uint, availableOnly bool) ([]domain.Product, error)
	GetProduct(ctx context.Context, id, businessID uint) (domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id, businessID uint) error
}

type ProductHandler struct {
	svc ProductService
}

func NewProductHandler(svc ProductService) *ProductHandler {
	return &ProductHandler{
		svc: svc,
	}
}

// HandleListProducts godoc
// @Summary      List products of the business
// @Tags         products
// @Produce      json
// @Param        available   query    bool  false "only active products with stock"
// @Success      200 {object}   []domain.Product
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /products [get]
func (h *ProductHandler) HandleListProducts(ctx *gin.Context) {
	identity := middleware.GetIdentity(ctx)
	availableOnly := ctx.Query("available") == "true"

	products, err := h.svc.ListProducts(ctx.Request.Context(), identity.Business.ID, availableOnly)
	if err != nil {
		err = fmt.Errorf("v1.HandleListProducts -> h.svc.ListProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleGetProduct godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        productID   path     int  true "product ID"
// @Success      200 {object}   domain.Product
// @Failure      400 {object}   response.Err
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      404 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /products/{productID} [get]
func (h *ProductHandler) HandleGetProduct(ctx *gin.Context) {
	productID, err := parseIDParam(ctx, "productID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity := middleware.GetIdentity(ctx)

	product, err := h.svc.GetProduct(ctx.Request.Context(), productID, identity.Business.ID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetProduct -> h.svc.GetProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleCreateProduct godoc
// @Summary      Create a product
// @Tags         products
// @Produce      json
// @Param        request   body     request.ProductRequest true "request body"
// @Success      201 {object}   domain.Product
// @Failure      400 {object}   response.Err
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /products [post]
func (h *ProductHandler) HandleCreateProduct(ctx *gin.Context) {
	req := request.ProductRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity := middleware.GetIdentity(ctx)

	product, err := h.svc.CreateProduct(ctx.Request.Context(), domain.Product{
		BusinessID:        identity.Business.ID,
		Name:              req.Name,
		Price:             req.Price,
		Cost:              req.Cost,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          req.Active(),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateProduct -> h.svc.CreateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// HandleUpdateProduct godoc
// @Summary      Update a product
// @Tags         products
// @Produce      json
// @Param        productID   path     int  true "product ID"
// @Param        request     body     request.ProductRequest true "request body"
// @Success      200 {object}   domain.Product
// @Failure      400 {object}   response.Err
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      404 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /products/{productID} [put]
func (h *ProductHandler) HandleUpdateProduct(ctx *gin.Context) {
	productID, err := parseIDParam(ctx, "productID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.ProductRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity := middleware.GetIdentity(ctx)

	product, err := h.svc.UpdateProduct(ctx.Request.Context(), domain.Product{
		ID:                productID,
		BusinessID:        identity.Business.ID,
		Name:              req.Name,
		Price:             req.Price,
		Cost:              req.Cost,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          req.Active(),
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateProduct -> h.svc.UpdateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleDeleteProduct godoc
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        productID   path     int  true "product ID"
// @Success      204 "No Content"
// @Failure      400 {object}   response.Err
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      404 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /products/{productID} [delete]
func (h *ProductHandler) HandleDeleteProduct(ctx *gin.Context) {
	productID, err := parseIDParam(ctx, "productID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity := middleware.GetIdentity(ctx)

	if err = h.svc.DeleteProduct(ctx.Request.Context(), productID, identity.Business.ID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteProduct -> h.svc.DeleteProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
