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

type contentService interface {
	ListRates(ctx context.Context) ([]*entities.Rate, error)
	UpdateRates(ctx context.Context, updates []entities.RateUpdate) ([]*entities.Rate, error)
	ListTips(ctx context.Context, category string) ([]*entities.Tip, error)
	CreateTip(ctx context.Context, input *entities.TipInput) (*entities.Tip, error)
	UpdateTip(ctx context.Context, id uuid.UUID, input *entities.TipInput) (*entities.Tip, error)
	DeleteTip(ctx context.Context, id uuid.UUID) error
}

// ContentHandler handles rate and recycling tip endpoints
type ContentHandler struct {
	contentUsecase contentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentUsecase *usecases.ContentUsecase) *ContentHandler {
	return &ContentHandler{contentUsecase: contentUsecase}
}

// ListRates lists the buyback rate for every material
// GET /api/v1/rates
func (h *ContentHandler) ListRates(c *gin.Context) {
	rates, err := h.contentUsecase.ListRates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if rates == nil {
		rates = []*entities.Rate{}
	}

	response.Success(c, http.StatusOK, gin.H{"rates": rates})
}

type updateRatesRequest struct {
	Rates []entities.RateUpdate `json:"rates" binding:"required,min=1,dive"`
}

// UpdateRates bulk-upserts material rates
// PUT /api/v1/rates
func (h *ContentHandler) UpdateRates(c *gin.Context) {
	var req updateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	rates, err := h.contentUsecase.UpdateRates(c.Request.Context(), req.Rates)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rates": rates})
}

// ListTips lists recycling tips, optionally by category
// GET /api/v1/tips
func (h *ContentHandler) ListTips(c *gin.Context) {
	tips, err := h.contentUsecase.ListTips(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if tips == nil {
		tips = []*entities.Tip{}
	}

	response.Success(c, http.StatusOK, gin.H{"tips": tips})
}

// CreateTip publishes a recycling tip
// POST /api/v1/tips
func (h *ContentHandler) CreateTip(c *gin.Context) {
	var input entities.TipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	tip, err := h.contentUsecase.CreateTip(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, tip)
}

// UpdateTip replaces the content of a tip
// PUT /api/v1/tips/:id
func (h *ContentHandler) UpdateTip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid tip ID"))
		return
	}

	var input entities.TipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	tip, err := h.contentUsecase.UpdateTip(c.Request.Context(), id, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Tip not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, tip)
}

// DeleteTip removes a tip
// DELETE /api/v1/tips/:id
func (h *ContentHandler) DeleteTip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid tip ID"))
		return
	}

	if err := h.contentUsecase.DeleteTip(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Tip not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Tip deleted"})
}
