package entities

import "github.com/google/uuid"

// Tip represents an educational content entry shown to customers
type Tip struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Icon        string    `json:"icon"`
	Impact      string    `json:"impact"`
}

// TipInput represents input for creating or updating a tip
type TipInput struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Icon        string `json:"icon"`
	Impact      string `json:"impact"`
}
