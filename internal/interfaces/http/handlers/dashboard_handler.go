package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/interfaces/http/middleware"
	"ecoscrap.backend/internal/interfaces/http/response"
	"ecoscrap.backend/internal/usecases"
)

type dashboardService interface {
	AdminStats(ctx context.Context) (*entities.AdminStats, error)
	DealerStats(ctx context.Context, dealerEmail string) (*entities.DealerStats, error)
	CustomerStats(ctx context.Context, customerEmail string) (*entities.CustomerStats, error)
}

// DashboardHandler serves the role-specific dashboard summary
type DashboardHandler struct {
	dashboardUsecase dashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUsecase *usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetStats returns the dashboard summary for the caller's role
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	roleStr, _ := middleware.GetUserRole(c)

	var (
		stats interface{}
		err   error
	)
	switch entities.UserRole(roleStr) {
	case entities.UserRoleAdmin:
		stats, err = h.dashboardUsecase.AdminStats(c.Request.Context())
	case entities.UserRoleDealer:
		stats, err = h.dashboardUsecase.DealerStats(c.Request.Context(), email)
	default:
		stats, err = h.dashboardUsecase.CustomerStats(c.Request.Context(), email)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
