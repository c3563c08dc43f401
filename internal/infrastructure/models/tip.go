package models

import "github.com/google/uuid"

type Tip struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:varchar(50);index;not null"`
	Icon        string    `gorm:"type:varchar(10)"`
	Impact      string    `gorm:"type:varchar(100)"`
}
