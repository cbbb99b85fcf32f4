package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ledgerone/ledgerone-api/internal/api/handler/v1/response"
	"github.com/ledgerone/ledgerone-api/internal/api/middleware"
	"github.com/ledgerone/ledgerone-api/internal/domain"
)

type ReportService interface {
	Dashboard(ctx context.Context, businessID uint) (domain.DashboardStats, error)
	Analytics(ctx context.Context, businessID uint, days int) (domain.Analytics, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleDashboard godoc
// @Summary      Get today's and this month's sales plus low-stock products
// @Tags         reports
// @Produce      json
// @Success      200 {object}   domain.DashboardStats
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /reports/dashboard [get]
func (h *ReportHandler) HandleDashboard(ctx *gin.Context) {
	identity := middleware.GetIdentity(ctx)

	stats, err := h.svc.Dashboard(ctx.Request.Context(), identity.Business.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleDashboard -> h.svc.Dashboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleAnalytics godoc
// @Summary      Get sales analytics over a trailing window
// @Tags         reports
// @Produce      json
// @Param        days   query    int  false "trailing window in days, default 30"
// @Success      200 {object}   domain.Analytics
// @Failure      400 {object}   response.Err
// @Failure      401 {object}   response.Err
// @Failure      403 {object}   response.Err
// @Failure      500 {object}   response.Err
// @Router       /reports/analytics [get]
func (h *ReportHandler) HandleAnalytics(ctx *gin.Context) {
	days := 0
	if raw := ctx.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid days %q", raw)))

			return
		}
		days = parsed
	}

	identity := middleware.GetIdentity(ctx)

	analytics, err := h.svc.Analytics(ctx.Request.Context(), identity.Business.ID, days)
	if err != nil {
		err = fmt.Errorf("v1.HandleAnalytics -> h.svc.Analytics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, analytics)
}
