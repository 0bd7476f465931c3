package models

import (
	"time"
)

// City is a normalized city record owned by a country
type City struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null;index"`
	CountryID uint      `json:"countryId" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Country Country `json:"country,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
}
