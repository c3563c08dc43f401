package models

import "time"

type Pickup struct {
	ID             string  `gorm:"type:varchar(20);primaryKey"`
	UserEmail      string  `gorm:"type:varchar(120);index;not null"`
	UserName       string  `gorm:"type:varchar(100);not null"`
	Material       string  `gorm:"type:varchar(50);not null"`
	Weight         float64 `gorm:"not null"`
	Date           time.Time
	Time           string  `gorm:"type:varchar(20);not null"`
	Address        string  `gorm:"type:text;not null"`
	EstimatedValue float64 `gorm:"not null;default:0"`
	Status         string  `gorm:"type:varchar(20);not null;default:'scheduled'"`
	BookedDate     time.Time
	UpdatedAt      time.Time
}
