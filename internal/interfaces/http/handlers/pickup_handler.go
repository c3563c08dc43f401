package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/interfaces/http/middleware"
	"ecoscrap.backend/internal/interfaces/http/response"
	"ecoscrap.backend/internal/usecases"
)

type pickupService interface {
	Estimate(ctx context.Context, input *entities.EstimateInput) (*entities.Estimate, error)
	Create(ctx context.Context, userID uuid.UUID, input *entities.CreatePickupInput) (*entities.Pickup, error)
	List(ctx context.Context, userEmail string, role entities.UserRole) ([]*entities.Pickup, error)
	UpdateStatus(ctx context.Context, actorEmail string, actorRole entities.UserRole, id string, status entities.PickupStatus) (*entities.Pickup, error)
}

// PickupHandler handles scrap pickup endpoints
type PickupHandler struct {
	pickupUsecase pickupService
}

// NewPickupHandler creates a new pickup handler
func NewPickupHandler(pickupUsecase *usecases.PickupUsecase) *PickupHandler {
	return &PickupHandler{pickupUsecase: pickupUsecase}
}

// Estimate returns the buyback value for a material and weight
// POST /api/v1/estimate
func (h *PickupHandler) Estimate(c *gin.Context) {
	var input entities.EstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	estimate, err := h.pickupUsecase.Estimate(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrUnknownMaterial {
			response.Error(c, domainerrors.NotFound("No rate for material: "+input.Material))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, estimate)
}

// CreatePickup schedules a pickup for the authenticated customer
// POST /api/v1/pickups
func (h *PickupHandler) CreatePickup(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreatePickupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pickup, err := h.pickupUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, pickup)
}

// ListPickups lists pickups visible to the caller
// GET /api/v1/pickups
func (h *PickupHandler) ListPickups(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	roleStr, _ := middleware.GetUserRole(c)

	pickups, err := h.pickupUsecase.List(c.Request.Context(), email, entities.UserRole(roleStr))
	if err != nil {
		response.Error(c, err)
		return
	}
	if pickups == nil {
		pickups = []*entities.Pickup{}
	}

	response.Success(c, http.StatusOK, gin.H{"pickups": pickups})
}

// UpdatePickup updates the status of a pickup
// PUT /api/v1/pickups/:id
func (h *PickupHandler) UpdatePickup(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	roleStr, _ := middleware.GetUserRole(c)

	var input entities.UpdatePickupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pickup, err := h.pickupUsecase.UpdateStatus(
		c.Request.Context(), email, entities.UserRole(roleStr), c.Param("id"), entities.PickupStatus(input.Status))
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Pickup not found"))
			return
		}
		if err == domainerrors.ErrForbidden {
			response.Error(c, domainerrors.Forbidden("Not your pickup"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, pickup)
}
