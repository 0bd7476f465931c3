package models

import (
	"time"
)

// Stadium represents a football ground. City is a free-text column,
// intentionally distinct from the normalized City entity. Capacity is
// nullable: an unknown capacity is NULL, never zero.
type Stadium struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	City      string    `json:"city" gorm:"size:100;not null"`
	Latitude  float64   `json:"latitude" gorm:"not null"`
	Longitude float64   `json:"longitude" gorm:"not null"`
	Capacity  *int      `json:"capacity"`
	Image     *string   `json:"image" gorm:"size:255"`
	CountryID uint      `json:"countryId" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Country Country `json:"country,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
	Teams   []Team  `json:"teams,omitempty" gorm:"foreignKey:StadiumID"`
}
