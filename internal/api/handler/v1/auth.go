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
	"github.com/ledgerone/ledgerone-api/internal/config"
	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/pkg/jwthelper"
	"github.com/ledgerone/ledgerone-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, businessName string) (domain.Identity, error)
	LoginOwner(ctx context.Context, email, password string) (domain.Identity, error)
	LoginEmployee(ctx context.Context, businessID, employeeID uint, passcode string) (domain.Identity, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Signup a new owner with their business
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	req := request.SignupRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity, err := h.svc.Signup(ctx.Request.Context(), req.Email, req.Password, req.BusinessName)
	if err != nil {
		if errors.Is(err, service.ErrOwnerEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrOwnerEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateOwnerToken([]byte(h.conf.JWTSigningKey), identity.Owner.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleSignup -> jwthelper.GenerateOwnerToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.LoginResponse{
		Token:    token,
		Identity: response.NewSessionResponse(identity),
	})
}

// HandleLogin godoc
// @Summary      Login an owner by email and password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity, err := h.svc.LoginOwner(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.LoginOwner -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateOwnerToken([]byte(h.conf.JWTSigningKey), identity.Owner.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateOwnerToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:    token,
		Identity: response.NewSessionResponse(identity),
	})
}

// HandleEmployeeLogin godoc
// @Summary      Login an employee by business, employee and passcode
// @Tags         auth
// @Produce      json
// @Param        request   body      request.EmployeeLoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/employee-login [post]
func (h *AuthHandler) HandleEmployeeLogin(ctx *gin.Context) {
	req := request.EmployeeLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity, err := h.svc.LoginEmployee(ctx.Request.Context(), req.BusinessID, req.EmployeeID, req.Passcode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleEmployeeLogin -> h.svc.LoginEmployee -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateEmployeeToken([]byte(h.conf.JWTSigningKey), identity.Business.ID, identity.Employee.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleEmployeeLogin -> jwthelper.GenerateEmployeeToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:    token,
		Identity: response.NewSessionResponse(identity),
	})
}

// HandleGetSession godoc
// @Summary      Get the current session's identity
// @Tags         auth
// @Produce      json
// @Success      200 {object}   response.SessionResponse
// @Failure      401 {object}   response.Err
// @Router       /auth/session [get]
func (h *AuthHandler) HandleGetSession(ctx *gin.Context) {
	identity := middleware.GetIdentity(ctx)

	ctx.JSON(http.StatusOK, response.NewSessionResponse(identity))
}

// HandleLogout godoc
// @Summary      Logout the current session
// @Tags         auth
// @Produce      json
// @Success      204 "No Content"
// @Failure      401 {object}   response.Err
// @Router       /auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	// Tokens are stateless. The client discards its copy; this endpoint
	// exists so a logout still round-trips through auth.
	ctx.Status(http.StatusNoContent)
}
