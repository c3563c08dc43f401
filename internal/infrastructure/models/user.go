package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	Address      string    `gorm:"type:text;not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'customer'"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active'"`
	BusinessName *string   `gorm:"type:varchar(100)"`
	JoinDate     time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
