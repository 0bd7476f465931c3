package dto

import (
	"footyref/models"
)

// TeamFilter represents filter criteria for the public team listing
type TeamFilter struct {
	Search   string
	LeagueID uint
	Page     int
}

// TeamRequest represents the create/update payload for a team
type TeamRequest struct {
	Name        string `form:"name" binding:"required,max=100"`
	LeagueID    uint   `form:"league_id" binding:"required"`
	StadiumID   uint   `form:"stadium_id" binding:"required"`
	LogoURL     string `form:"logo_url" binding:"omitempty,max=255"`
	FoundedYear string `form:"founded_year" binding:"required"`
	Website     string `form:"website" binding:"omitempty,url,max=250"`
}

// TeamSummary is the minimal team shape embedded in other view-models
type TeamSummary struct {
	ID   uint    `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

// NewTeamSummaries maps team rows to their embedded shape
func NewTeamSummaries(teams []models.Team) []TeamSummary {
	summaries := make([]TeamSummary, 0, len(teams))
	for _, t := range teams {
		summaries = append(summaries, TeamSummary{
			ID:   t.ID,
			Name: t.Name,
			Logo: ResolveImageURL(t.Logo),
		})
	}
	return summaries
}

// TeamListItem is the flattened public view of a team row. CountryName
// is the two-hop resolution through League.Country.
type TeamListItem struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Logo        *string `json:"logo"`
	FoundedYear string  `json:"foundedYear"`
	Website     *string `json:"website"`
	LeagueID    uint    `json:"leagueId"`
	LeagueName  string  `json:"leagueName"`
	CountryName string  `json:"countryName"`
	CountryFlag string  `json:"countryFlag"`
	StadiumID   uint    `json:"stadiumId"`
	StadiumName string  `json:"stadiumName"`
	StadiumCity string  `json:"stadiumCity"`
}

// NewTeamListItem flattens a team row with its league, the league's
// country, and its stadium. Missing relationships degrade to "N/A".
func NewTeamListItem(t models.Team) TeamListItem {
	item := TeamListItem{
		ID:          t.ID,
		Name:        t.Name,
		Logo:        ResolveImageURL(t.Logo),
		FoundedYear: YearOf(t.Founded),
		Website:     t.Website,
		LeagueID:    t.LeagueID,
		LeagueName:  NotAvailable,
		CountryName: NotAvailable,
		StadiumID:   t.StadiumID,
		StadiumName: NotAvailable,
	}
	if t.League.ID != 0 {
		item.LeagueName = t.League.Name
		if t.League.Country.ID != 0 {
			item.CountryName = t.League.Country.Name
			item.CountryFlag = t.League.Country.Flag
		}
	}
	if t.Stadium.ID != 0 {
		item.StadiumName = t.Stadium.Name
		item.StadiumCity = t.Stadium.City
	}
	return item
}

// NewTeamListItems maps a slice of team rows
func NewTeamListItems(teams []models.Team) []TeamListItem {
	items := make([]TeamListItem, 0, len(teams))
	for _, t := range teams {
		items = append(items, NewTeamListItem(t))
	}
	return items
}

// TeamListResponse represents the paginated public team listing
type TeamListResponse struct {
	Teams      []TeamListItem `json:"teams"`
	TotalCount int64          `json:"totalCount"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// AdminTeamItem is the admin table view of a team row
type AdminTeamItem struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Logo        *string `json:"logo"`
	FoundedYear string  `json:"foundedYear"`
	Website     *string `json:"website"`
	LeagueID    uint    `json:"leagueId"`
	LeagueName  string  `json:"leagueName"`
	StadiumID   uint    `json:"stadiumId"`
	StadiumName string  `json:"stadiumName"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// NewAdminTeamItem flattens a team row for the admin listing
func NewAdminTeamItem(t models.Team) AdminTeamItem {
	item := AdminTeamItem{
		ID:          t.ID,
		Name:        t.Name,
		Logo:        ResolveImageURL(t.Logo),
		FoundedYear: YearOf(t.Founded),
		Website:     t.Website,
		LeagueID:    t.LeagueID,
		LeagueName:  NotAvailable,
		StadiumID:   t.StadiumID,
		StadiumName: NotAvailable,
		CreatedAt:   FormatDate(t.CreatedAt),
		UpdatedAt:   FormatDate(t.UpdatedAt),
	}
	if t.League.ID != 0 {
		item.LeagueName = t.League.Name
	}
	if t.Stadium.ID != 0 {
		item.StadiumName = t.Stadium.Name
	}
	return item
}

// AdminTeamListResponse represents the paginated admin team listing
type AdminTeamListResponse struct {
	Teams      []AdminTeamItem `json:"teams"`
	TotalCount int64           `json:"totalCount"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}
