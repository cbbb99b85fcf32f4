package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ledgerone/ledgerone-api/internal/api/handler/v1/request"
	"github.com/ledgerone/ledgerone-api/internal/api/handler/v1/response"
	"github.com/ledgerone/ledgerone-api/internal/api/middleware"
	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/service"
)

type EmployeeService interface {
	ListEmployees(ctx context.Context, businessID uint) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, employee domain.Employee, passcode string) (domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee, passcode string) (domain.Employee, error)
	DeleteEmployee(ctx context.Context, id, businessID uint) error
}

type EmployeeHandler struct {
	svc EmployeeService
}

func NewEmployeeHandler(svc EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		svc: svc,
	}
}

// HandleListEmployees godoc
// @Summary      List all employees of the business
// @Tags         employees
// @Produce      json
// @Success      200 {object}   []domain.Employee
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /employees [get]
func (h *EmployeeHandler) HandleListEmployees(ctx *gin.Context) {
	identity := middleware.GetIdentity(ctx)

	employees, err := h.svc.ListEmployees(ctx.Request.Context(), identity.Business.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListEmployees -> h.svc.ListEmployees -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, employees)
}

// HandleCreateEmployee godoc
// @Summary      Create an employee
// @Tags         employees
// @Produce      json
// @Param        request   body     request.CreateEmployeeRequest true "request body"
// @Success      201 {object}   domain.Employee
// @Failure      400 {object}   response.Err
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /employees [post]
func (h *EmployeeHandler) HandleCreateEmployee(ctx *gin.Context) {
	req := request.CreateEmployeeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity := middleware.GetIdentity(ctx)

	employee, err := h.svc.CreateEmployee(ctx.Request.Context(), domain.Employee{
		BusinessID: identity.Business.ID,
		Name:       req.Name,
		Permissions: domain.EmployeePermissions{
			POSAccess:       req.Permissions.POSAccess,
			InventoryAccess: req.Permissions.InventoryAccess,
			DashboardAccess: req.Permissions.DashboardAccess,
		},
	}, req.Passcode)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEmployee -> h.svc.CreateEmployee -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, employee)
}

// HandleUpdateEmployee godoc
// @Summary      Update an employee
// @Tags         employees
// @Produce      json
// @Param        employeeID   path     int  true "employee ID"
// @Param        request      body     request.UpdateEmployeeRequest true "request body"
// @Success      200 {object}   domain.Employee
// @Failure      400 {object}   response.Err
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      404 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /employees/{employeeID} [put]
func (h *EmployeeHandler) HandleUpdateEmployee(ctx *gin.Context) {
	employeeID, err := parseIDParam(ctx, "employeeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateEmployeeRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity := middleware.GetIdentity(ctx)

	employee, err := h.svc.UpdateEmployee(ctx.Request.Context(), domain.Employee{
		ID:         employeeID,
		BusinessID: identity.Business.ID,
		Name:       req.Name,
		Permissions: domain.EmployeePermissions{
			POSAccess:       req.Permissions.POSAccess,
			InventoryAccess: req.Permissions.InventoryAccess,
			DashboardAccess: req.Permissions.DashboardAccess,
		},
		IsActive: req.IsActive,
	}, req.Passcode)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateEmployee -> h.svc.UpdateEmployee -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, employee)
}

// HandleDeleteEmployee godoc
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Param        employeeID   path     int  true "employee ID"
// @Success      204 "No Content"
// @Failure      400 {object}   response.Err
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      404 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /employees/{employeeID} [delete]
func (h *EmployeeHandler) HandleDeleteEmployee(ctx *gin.Context) {
	employeeID, err := parseIDParam(ctx, "employeeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity := middleware.GetIdentity(ctx)

	if err = h.svc.DeleteEmployee(ctx.Request.Context(), employeeID, identity.Business.ID); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteEmployee -> h.svc.DeleteEmployee -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v %q", name, raw)
	}

	return uint(id), nil
}
