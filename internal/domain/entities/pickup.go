package entities

import "time"

// PickupStatus represents the lifecycle of a pickup request
type PickupStatus string

const (
	PickupStatusScheduled PickupStatus = "scheduled"
	PickupStatusCompleted PickupStatus = "completed"
	PickupStatusCancelled PickupStatus = "cancelled"
)

// Pickup represents a scheduled scrap collection.
// IDs carry a "PU" prefix followed by the booking unix timestamp.
type Pickup struct {
	ID             string       `json:"id"`
	UserEmail      string       `json:"userEmail"`
	UserName       string       `json:"userName"`
	Material       string       `json:"material"`
	Weight         float64      `json:"weight"`
	Date           time.Time    `json:"date"`
	Time           string       `json:"time"`
	Address        string       `json:"address"`
	EstimatedValue float64      `json:"estimatedValue"`
	Status         PickupStatus `json:"status"`
	BookedDate     time.Time    `json:"bookedDate"`
}

// CreatePickupInput represents input for scheduling a pickup
type CreatePickupInput struct {
	Material string  `json:"material" binding:"required"`
	Weight   float64 `json:"weight" binding:"required,gt=0"`
	Date     string  `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string  `json:"time" binding:"required"`
	Address  string  `json:"address" binding:"required"`
}

// UpdatePickupInput represents a status change on a pickup
type UpdatePickupInput struct {
	Status string `json:"status" binding:"required,oneof=scheduled completed cancelled"`
}

// EstimateInput represents input for the public value calculator
type EstimateInput struct {
	Material string  `json:"material" binding:"required"`
	Weight   float64 `json:"weight" binding:"required,gt=0"`
}

// Estimate represents a calculated scrap value
type Estimate struct {
	Material       string  `json:"material"`
	Weight         float64 `json:"weight"`
	RatePerKg      float64 `json:"ratePerKg"`
	BulkBonus      float64 `json:"bulkBonus"`
	EstimatedValue float64 `json:"estimatedValue"`
}
