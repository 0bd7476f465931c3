package dto

import (
	"footyref/models"
)

// LeagueFilter represents filter criteria for the public league listing
type LeagueFilter struct {
	Search    string
	CountryID uint
}

// LeagueRequest represents the create/update payload for a league.
// The logo arrives separately, either as a multipart file or as the
// logo_url field (see ImageInput).
type LeagueRequest struct {
	Name        string `form:"name" binding:"required,max=100"`
	CountryID   uint   `form:"country_id" binding:"required"`
	LogoURL     string `form:"logo_url" binding:"omitempty,max=255"`
	FoundedYear string `form:"founded_year" binding:"omitempty"`
	Description string `form:"description" binding:"omitempty"`
	ResourceURL string `form:"resource_url" binding:"omitempty,url,max=500"`
}

// LeagueListItem is the flattened public view of a league row
type LeagueListItem struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Logo        *string `json:"logo"`
	FoundedYear *string `json:"foundedYear"`
	Description *string `json:"description"`
	CountryID   uint    `json:"countryId"`
	CountryName string  `json:"countryName"`
	CountryFlag string  `json:"countryFlag"`
	TeamCount   int64   `json:"teamCount"`
}

// NewLeagueListItem flattens a league row with its resolved country and
// computed team count
func NewLeagueListItem(l models.League, teamCount int64) LeagueListItem {
	item := LeagueListItem{
		ID:          l.ID,
		Name:        l.Name,
		Logo:        ResolveImageURL(l.Logo),
		FoundedYear: FormatYear(l.Founded),
		Description: TruncateDescription(l.Description),
		CountryID:   l.CountryID,
		CountryName: NotAvailable,
		TeamCount:   teamCount,
	}
	if l.Country.ID != 0 {
		item.CountryName = l.Country.Name
		item.CountryFlag = l.Country.Flag
	}
	return item
}

// LeagueDetail is the public detail view of a league and its teams
type LeagueDetail struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Logo        *string       `json:"logo"`
	FoundedYear *string       `json:"foundedYear"`
	Description *string       `json:"description"`
	ResourceURL *string       `json:"resourceUrl"`
	CountryID   uint          `json:"countryId"`
	CountryName string        `json:"countryName"`
	CountryFlag string        `json:"countryFlag"`
	Teams       []TeamSummary `json:"teams"`
}

// NewLeagueDetail flattens a league row with its preloaded teams
func NewLeagueDetail(l models.League) LeagueDetail {
	detail := LeagueDetail{
		ID:          l.ID,
		Name:        l.Name,
		Logo:        ResolveImageURL(l.Logo),
		FoundedYear: FormatYear(l.Founded),
		Description: l.Description,
		ResourceURL: l.ResourceURL,
		CountryID:   l.CountryID,
		CountryName: NotAvailable,
		Teams:       NewTeamSummaries(l.Teams),
	}
	if l.Country.ID != 0 {
		detail.CountryName = l.Country.Name
		detail.CountryFlag = l.Country.Flag
	}
	return detail
}

// AdminLeagueItem is the admin table view of a league row
type AdminLeagueItem struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Logo        *string `json:"logo"`
	FoundedYear *string `json:"foundedYear"`
	Description *string `json:"description"`
	CountryID   uint    `json:"countryId"`
	CountryName string  `json:"countryName"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// NewAdminLeagueItem flattens a league row for the admin listing
func NewAdminLeagueItem(l models.League) AdminLeagueItem {
	item := AdminLeagueItem{
		ID:          l.ID,
		Name:        l.Name,
		Logo:        ResolveImageURL(l.Logo),
		FoundedYear: FormatYear(l.Founded),
		Description: TruncateDescription(l.Description),
		CountryID:   l.CountryID,
		CountryName: NotAvailable,
		CreatedAt:   FormatDate(l.CreatedAt),
		UpdatedAt:   FormatDate(l.UpdatedAt),
	}
	if l.Country.ID != 0 {
		item.CountryName = l.Country.Name
	}
	return item
}

// AdminLeagueListResponse represents the paginated admin league listing
type AdminLeagueListResponse struct {
	Leagues    []AdminLeagueItem `json:"leagues"`
	TotalCount int64             `json:"totalCount"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}
