package entities

import "github.com/google/uuid"

// RateTrend represents the market direction for a material
type RateTrend string

const (
	RateTrendUp     RateTrend = "up"
	RateTrendDown   RateTrend = "down"
	RateTrendStable RateTrend = "stable"
)

// Rate represents the current buyback price for a scrap material
type Rate struct {
	ID        uuid.UUID `json:"id"`
	Material  string    `json:"material"`
	RatePerKg float64   `json:"ratePerKg"`
	Trend     RateTrend `json:"trend"`
	Icon      string    `json:"icon"`
}

// RateUpdate is a single entry of a bulk rate update
type RateUpdate struct {
	Material  string  `json:"material" binding:"required"`
	RatePerKg float64 `json:"ratePerKg" binding:"required,gt=0"`
	Trend     string  `json:"trend"`
	Icon      string  `json:"icon"`
}
