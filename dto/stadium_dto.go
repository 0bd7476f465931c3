package dto

import (
	"footyref/models"
)

// StadiumFilter represents filter criteria for the public stadium listing
type StadiumFilter struct {
	Search    string
	CountryID uint
	Page      int
}

// StadiumRequest represents the create/update payload for a stadium.
// Latitude/Longitude are pointers so that zero is a valid submitted
// coordinate; range checks live in the service layer.
type StadiumRequest struct {
	Name      string   `form:"name" binding:"required,max=100"`
	City      string   `form:"city" binding:"required,max=100"`
	CountryID uint     `form:"country_id" binding:"required"`
	Latitude  *float64 `form:"latitude" binding:"required"`
	Longitude *float64 `form:"longitude" binding:"required"`
	Capacity  *int     `form:"capacity" binding:"omitempty"`
	ImageURL  string   `form:"image_url" binding:"omitempty,max=255"`
}

// StadiumListItem is the flattened public view of a stadium row.
// Capacity stays a pointer: unknown capacity serializes as null,
// never as zero.
type StadiumListItem struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	City        string        `json:"city"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Capacity    *int          `json:"capacity"`
	Image       *string       `json:"image"`
	CountryID   uint          `json:"countryId"`
	CountryName string        `json:"countryName"`
	CountryFlag string        `json:"countryFlag"`
	TeamCount   int           `json:"teamCount"`
	Teams       []TeamSummary `json:"teams"`
}

// NewStadiumListItem flattens a stadium row with its resolved country
// and preloaded teams
func NewStadiumListItem(s models.Stadium) StadiumListItem {
	item := StadiumListItem{
		ID:          s.ID,
		Name:        s.Name,
		City:        s.City,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		Capacity:    s.Capacity,
		Image:       ResolveImageURL(s.Image),
		CountryID:   s.CountryID,
		CountryName: NotAvailable,
		TeamCount:   len(s.Teams),
		Teams:       NewTeamSummaries(s.Teams),
	}
	if s.Country.ID != 0 {
		item.CountryName = s.Country.Name
		item.CountryFlag = s.Country.Flag
	}
	return item
}

// StadiumListResponse represents the paginated public stadium listing
type StadiumListResponse struct {
	Stadiums   []StadiumListItem `json:"stadiums"`
	TotalCount int64             `json:"totalCount"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

// AdminStadiumItem is the admin table view of a stadium row
type AdminStadiumItem struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Capacity    *int    `json:"capacity"`
	Image       *string `json:"image"`
	CountryID   uint    `json:"countryId"`
	CountryName string  `json:"countryName"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// NewAdminStadiumItem flattens a stadium row for the admin listing
func NewAdminStadiumItem(s models.Stadium) AdminStadiumItem {
	item := AdminStadiumItem{
		ID:          s.ID,
		Name:        s.Name,
		City:        s.City,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		Capacity:    s.Capacity,
		Image:       ResolveImageURL(s.Image),
		CountryID:   s.CountryID,
		CountryName: NotAvailable,
		CreatedAt:   FormatDate(s.CreatedAt),
		UpdatedAt:   FormatDate(s.UpdatedAt),
	}
	if s.Country.ID != 0 {
		item.CountryName = s.Country.Name
	}
	return item
}

// AdminStadiumListResponse represents the paginated admin stadium listing
type AdminStadiumListResponse struct {
	Stadiums   []AdminStadiumItem `json:"stadiums"`
	TotalCount int64              `json:"totalCount"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}
