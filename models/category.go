package models

import "time"

// Category groups products in the catalog.
// Categories are listed in the order they were created.
type Category struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:200;not null"`
	Slug      string    `gorm:"size:200;uniqueIndex;not null"`
	CreatedAt time.Time
}

func (c *Category) TableName() string {
	return "categories"
}
