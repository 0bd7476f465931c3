package models

import (
	"time"
)

// Continent groups countries by geographic region
type Continent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Countries []Country `json:"countries,omitempty" gorm:"foreignKey:ContinentID;constraint:OnDelete:CASCADE"`
}
