package models

import "github.com/google/uuid"

type Rate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Material  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	RatePerKg float64   `gorm:"not null"`
	Trend     string    `gorm:"type:varchar(20);not null;default:'stable'"`
	Icon      string    `gorm:"type:varchar(10)"`
}
