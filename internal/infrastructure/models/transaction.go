package models

import "time"

type Transaction struct {
	ID            string  `gorm:"type:varchar(20);primaryKey"`
	CustomerEmail string  `gorm:"type:varchar(120);index;not null"`
	CustomerName  string  `gorm:"type:varchar(100);not null"`
	DealerEmail   string  `gorm:"type:varchar(120);index;not null"`
	Items         string  `gorm:"type:text;not null"` // JSON-encoded order lines
	Amount        float64 `gorm:"not null"`
	PaymentMethod string  `gorm:"type:varchar(50);not null"`
	Address       string  `gorm:"type:text;not null"`
	Status        string  `gorm:"type:varchar(20);not null;default:'pending'"`
	CompletedAt   *time.Time
	Timestamp     time.Time
	UpdatedAt     time.Time
}
