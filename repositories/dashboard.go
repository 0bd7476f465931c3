package repositories

import (
	"footyref/database"
	"footyref/dto"
	"footyref/models"
)

// DashboardRepository produces the grouped aggregates behind the admin
// dashboard. Every method hits the database directly so the numbers
// always reflect current data.
type DashboardRepository struct{}

// NewDashboardRepository creates a new dashboard repository instance
func NewDashboardRepository() *DashboardRepository {
	return &DashboardRepository{}
}

// Count returns the total number of rows for the given model
func (r *DashboardRepository) Count(model interface{}) (int64, error) {
	var count int64
	err := database.DB.Model(model).Count(&count).Error
	return count, err
}

// UsersByRole returns user counts grouped by role. Roles with no users
// are absent from the map.
func (r *DashboardRepository) UsersByRole() (map[string]int64, error) {
	var rows []struct {
		Role  string
		Total int64
	}
	err := database.DB.Model(&models.User{}).
		Select("role, COUNT(*) AS total").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Total
	}
	return counts, nil
}

// RecentTeams returns the most recently created teams with their
// league, the league's country, and stadium resolved
func (r *DashboardRepository) RecentTeams(limit int) ([]models.Team, error) {
	var teams []models.Team
	err := database.DB.Preload("League.Country").Preload("Stadium").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&teams).Error
	return teams, err
}

// TopCountriesByTeamCount ranks countries by how many teams play in
// their leagues (Team -> League -> Country join). Countries with no
// teams are excluded, not reported as zero. Ties break by country id,
// which keeps the ordering stable across calls.
func (r *DashboardRepository) TopCountriesByTeamCount(limit int) ([]dto.CountryTeamCount, error) {
	var rows []dto.CountryTeamCount
	err := database.DB.Model(&models.Team{}).
		Select("countries.id AS country_id, countries.name AS name, countries.flag AS flag, COUNT(teams.id) AS team_count").
		Joins("JOIN leagues ON leagues.id = teams.league_id").
		Joins("JOIN countries ON countries.id = leagues.country_id").
		Group("countries.id, countries.name, countries.flag").
		Order("team_count DESC, countries.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// TopLeaguesByTeamCount ranks leagues by team count. Leagues with no
// teams are excluded.
func (r *DashboardRepository) TopLeaguesByTeamCount(limit int) ([]dto.LeagueTeamCount, error) {
	var rows []dto.LeagueTeamCount
	err := database.DB.Model(&models.Team{}).
		Select("leagues.id AS league_id, leagues.name AS name, COUNT(teams.id) AS team_count").
		Joins("JOIN leagues ON leagues.id = teams.league_id").
		Group("leagues.id, leagues.name").
		Order("team_count DESC, leagues.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
