package models

import (
	"time"
)

// Team represents a football club. Its country is derived through
// League.Country and never stored on the row itself.
type Team struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Logo      *string   `json:"logo" gorm:"size:255"`
	Founded   time.Time `json:"founded" gorm:"not null"`
	Website   *string   `json:"website" gorm:"size:250"`
	LeagueID  uint      `json:"leagueId" gorm:"not null;index"`
	StadiumID uint      `json:"stadiumId" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	League  League  `json:"league,omitempty" gorm:"foreignKey:LeagueID;constraint:OnDelete:CASCADE"`
	Stadium Stadium `json:"stadium,omitempty" gorm:"foreignKey:StadiumID"`
}
