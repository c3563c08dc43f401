package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/interfaces/http/response"
	"ecoscrap.backend/internal/usecases"
)

type adminService interface {
	ListUsers(ctx context.Context, search string) ([]*entities.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *entities.AdminUpdateUserInput) (*entities.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type productModerationService interface {
	SetStatus(ctx context.Context, id uuid.UUID, status entities.ProductStatus) (*entities.Product, error)
}

// AdminHandler handles moderation endpoints
type AdminHandler struct {
	adminUsecase   adminService
	productUsecase productModerationService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase, productUsecase *usecases.ProductUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase, productUsecase: productUsecase}
}

// ListUsers lists accounts with an optional search filter
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUsecase.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if users == nil {
		users = []*entities.User{}
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// UpdateUser changes an account's status and/or role
// PUT /api/v1/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user ID"))
		return
	}

	var input entities.AdminUpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUsecase.UpdateUser(c.Request.Context(), id, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// DeleteUser soft-deletes an account
// DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user ID"))
		return
	}

	if err := h.adminUsecase.DeleteUser(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
}

// ApproveProduct marks a pending listing as approved
// POST /api/v1/admin/products/:id/approve
func (h *AdminHandler) ApproveProduct(c *gin.Context) {
	h.setProductStatus(c, entities.ProductStatusApproved)
}

// RejectProduct marks a pending listing as rejected
// POST /api/v1/admin/products/:id/reject
func (h *AdminHandler) RejectProduct(c *gin.Context) {
	h.setProductStatus(c, entities.ProductStatusRejected)
}

func (h *AdminHandler) setProductStatus(c *gin.Context, status entities.ProductStatus) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	product, err := h.productUsecase.SetStatus(c.Request.Context(), id, status)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Product not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}
