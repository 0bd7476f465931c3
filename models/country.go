package models

import (
	"time"
)

// Country represents a nation in the reference database. Flag holds
// either an emoji or an image reference.
type Country struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Flag        string    `json:"flag" gorm:"size:255"`
	ContinentID uint      `json:"continentId" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Continent Continent `json:"continent,omitempty" gorm:"foreignKey:ContinentID;constraint:OnDelete:CASCADE"`
	Cities    []City    `json:"cities,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
	Leagues   []League  `json:"leagues,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
	Stadiums  []Stadium `json:"stadiums,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
}
