package dto

// DashboardTotals carries the global row counts per entity type
type DashboardTotals struct {
	Teams     int64 `json:"teams"`
	Stadiums  int64 `json:"stadiums"`
	Leagues   int64 `json:"leagues"`
	Countries int64 `json:"countries"`
	Users     int64 `json:"users"`
}

// CountryTeamCount is one row of the top-countries-by-team-count
// aggregate (Team -> League -> Country join)
type CountryTeamCount struct {
	CountryID uint   `json:"countryId"`
	Name      string `json:"name"`
	Flag      string `json:"flag"`
	TeamCount int64  `json:"teamCount"`
}

// LeagueTeamCount is one row of the top-leagues-by-team-count aggregate
type LeagueTeamCount struct {
	LeagueID  uint   `json:"leagueId"`
	Name      string `json:"name"`
	TeamCount int64  `json:"teamCount"`
}

// DashboardResponse represents the admin dashboard aggregates. The
// values are recomputed on every call; nothing here is cached.
type DashboardResponse struct {
	Totals       DashboardTotals    `json:"totals"`
	UsersByRole  map[string]int64   `json:"usersByRole"`
	RecentTeams  []TeamListItem     `json:"recentTeams"`
	TopCountries []CountryTeamCount `json:"topCountries"`
	TopLeagues   []LeagueTeamCount  `json:"topLeagues"`
}
