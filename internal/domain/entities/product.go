package entities

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus represents the approval state of a listing
type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusApproved ProductStatus = "approved"
	ProductStatusRejected ProductStatus = "rejected"
)

// Product represents a marketplace listing owned by a dealer.
// Dealer name is denormalized for display, matching the dealer's
// profile at listing time.
type Product struct {
	ID          uuid.UUID     `json:"id"`
	DealerEmail string        `json:"dealerEmail"`
	DealerName  string        `json:"dealerName"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Status      ProductStatus `json:"status"`
	Stock       int           `json:"stock"`
	Rating      float64       `json:"rating"`
	Image       string        `json:"image"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"-"`
}

// CreateProductInput represents input for creating a listing
type CreateProductInput struct {
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Stock       int     `json:"stock" binding:"required,gte=0"`
	Image       string  `json:"image"`
}

// UpdateProductInput represents input for updating a listing
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Stock       *int     `json:"stock"`
	Image       *string  `json:"image"`
}

// ProductFilter holds list query filters
type ProductFilter struct {
	Status   string
	Category string
	Search   string
	Page     int
	Limit    int
}
