package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/interfaces/http/middleware"
	"ecoscrap.backend/internal/interfaces/http/response"
	"ecoscrap.backend/internal/usecases"
)

type productService interface {
	Create(ctx context.Context, dealerID uuid.UUID, input *entities.CreateProductInput) (*entities.Product, error)
	List(ctx context.Context, filter entities.ProductFilter, role entities.UserRole) ([]*entities.Product, int64, error)
	Update(ctx context.Context, actorEmail string, actorRole entities.UserRole, id uuid.UUID, input *entities.UpdateProductInput) (*entities.Product, error)
	Delete(ctx context.Context, actorEmail string, actorRole entities.UserRole, id uuid.UUID) error
}

// ProductHandler handles marketplace listing endpoints
type ProductHandler struct {
	productUsecase productService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// ListProducts lists listings with optional filters
// GET /api/v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := entities.ProductFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	}

	// Anonymous callers carry no role and only see approved listings
	roleStr, _ := middleware.GetUserRole(c)
	role := entities.UserRole(roleStr)

	products, total, err := h.productUsecase.List(c.Request.Context(), filter, role)
	if err != nil {
		response.Error(c, err)
		return
	}
	if products == nil {
		products = []*entities.Product{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"products": products,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// CreateProduct creates a listing pending approval
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Dealer account not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, product)
}

// UpdateProduct updates a listing owned by the caller
// PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	email, _ := middleware.GetUserEmail(c)
	roleStr, _ := middleware.GetUserRole(c)

	var input entities.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Update(c.Request.Context(), email, entities.UserRole(roleStr), id, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Product not found"))
			return
		}
		if err == domainerrors.ErrForbidden {
			response.Error(c, domainerrors.Forbidden("Not your listing"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a listing owned by the caller
// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	email, _ := middleware.GetUserEmail(c)
	roleStr, _ := middleware.GetUserRole(c)

	if err := h.productUsecase.Delete(c.Request.Context(), email, entities.UserRole(roleStr), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Product not found"))
			return
		}
		if err == domainerrors.ErrForbidden {
			response.Error(c, domainerrors.Forbidden("Not your listing"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted"})
}
