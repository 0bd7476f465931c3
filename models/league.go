package models

import (
	"time"
)

// League represents a football competition owned by a country.
// Founded is stored as a date but only the year is meaningful;
// month and day are normalized to January 1.
type League struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"size:100;not null"`
	Logo        *string    `json:"logo" gorm:"size:255"`
	Founded     *time.Time `json:"founded"`
	Description *string    `json:"description" gorm:"type:text"`
	ResourceURL *string    `json:"resourceUrl" gorm:"size:500"`
	CountryID   uint       `json:"countryId" gorm:"not null;index"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Country Country `json:"country,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
	Teams   []Team  `json:"teams,omitempty" gorm:"foreignKey:LeagueID;constraint:OnDelete:CASCADE"`
}
