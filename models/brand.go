package models

import "time"

// Brand is the manufacturer or label a product is sold under.
type Brand struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:200;not null"`
	Slug      string    `gorm:"size:200;uniqueIndex;not null"`
	CreatedAt time.Time
}

func (b *Brand) TableName() string {
	return "brands"
}
