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

type BusinessService interface {
	GetBusiness(ctx context.Context, businessID uint) (domain.Business, error)
	UpdateSettings(ctx context.Context, businessID uint, name string, settings domain.BusinessSettings) (domain.Business, error)
	ListBusinesses(ctx context.Context) ([]domain.Business, error)
	ListLoginEmployees(ctx context.Context, businessID uint) ([]domain.Employee, error)
}

type BusinessHandler struct {
	svc BusinessService
}

func NewBusinessHandler(svc BusinessService) *BusinessHandler {
	return &BusinessHandler{
		svc: svc,
	}
}

// HandleListBusinesses godoc
// @Summary      List businesses for the employee login picker
// @Tags         businesses
// @Produce      json
// @Success      200 {object}   []response.BusinessSummary
// @Failure      500 {object}   response.Err
// @Router       /businesses [get]
func (h *BusinessHandler) HandleListBusinesses(ctx *gin.Context) {
	businesses, err := h.svc.ListBusinesses(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListBusinesses -> h.svc.ListBusinesses -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewBusinessSummaries(businesses))
}

// HandleListLoginEmployees godoc
// @Summary      List active employees of a business for the login picker
// @Tags         businesses
// @Produce      json
// @Param        businessID   path     int  true "business ID"
// @Success      200 {object}   []response.EmployeeSummary
// @Failure      400 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /businesses/{businessID}/employees [get]
func (h *BusinessHandler) HandleListLoginEmployees(ctx *gin.Context) {
	businessID, err := parseIDParam(ctx, "businessID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	employees, err := h.svc.ListLoginEmployees(ctx.Request.Context(), businessID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListLoginEmployees -> h.svc.ListLoginEmployees -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewEmployeeSummaries(employees))
}

// HandleGetBusiness godoc
// @Summary      Get the authenticated business's profile and settings
// @Tags         business
// @Produce      json
// @Success      200 {object}   domain.Business
// @Failure      401 {object}   response.Err
// @Failure      404 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /business [get]
func (h *BusinessHandler) HandleGetBusiness(ctx *gin.Context) {
	identity := middleware.GetIdentity(ctx)

	business, err := h.svc.GetBusiness(ctx.Request.Context(), identity.Business.ID)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetBusiness -> h.svc.GetBusiness -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, business)
}

// HandleUpdateBusiness godoc
// @Summary      Update the business's name and settings
// @Tags         business
// @Produce      json
// @Param        request   body     request.UpdateBusinessRequest true "request body"
// @Success      200 {object}   domain.Business
// @Failure      400 {object}   response.Err
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /business [put]
func (h *BusinessHandler) HandleUpdateBusiness(ctx *gin.Context) {
	req := request.UpdateBusinessRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity := middleware.GetIdentity(ctx)

	business, err := h.svc.UpdateSettings(ctx.Request.Context(), identity.Business.ID, req.Name, domain.BusinessSettings{
		POSMode:    domain.POSMode(req.Settings.POSMode),
		AutoLogout: req.Settings.AutoLogout,
	})
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateBusiness -> h.svc.UpdateSettings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, business)
}
