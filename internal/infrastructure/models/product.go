package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	DealerEmail string    `gorm:"type:varchar(120);index;not null"`
	DealerName  string    `gorm:"type:varchar(100);not null"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Price       float64   `gorm:"not null"`
	Category    string    `gorm:"type:varchar(50);index;not null"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	Stock       int       `gorm:"not null;default:0"`
	Rating      float64   `gorm:"not null;default:0"`
	Image       string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
