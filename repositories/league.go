package repositories

import (
	"strings"

	"footyref/database"
	"footyref/models"
)

// LeagueRepository handles database operations for leagues
type LeagueRepository struct{}

// NewLeagueRepository creates a new league repository instance
func NewLeagueRepository() *LeagueRepository {
	return &LeagueRepository{}
}

// FindFiltered retrieves leagues matching the public listing filters.
// Search is a case-insensitive substring match on the name; countryID
// filters on the exact owning country. The public league listing is
// unpaginated: all matches are returned, newest first.
func (r *LeagueRepository) FindFiltered(search string, countryID uint) ([]models.League, error) {
	db := database.DB.Preload("Country")

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(name) LIKE ?", pattern)
	}
	if countryID != 0 {
		db = db.Where("country_id = ?", countryID)
	}

	var leagues []models.League
	result := db.Order("created_at DESC, id DESC").Find(&leagues)
	return leagues, result.Error
}

// TeamCounts returns a league-id -> team-count map for the given leagues.
// Leagues with zero teams are absent from the map.
func (r *LeagueRepository) TeamCounts(leagueIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(leagueIDs))
	if len(leagueIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		LeagueID  uint
		TeamCount int64
	}
	err := database.DB.Model(&models.Team{}).
		Select("league_id, COUNT(*) AS team_count").
		Where("league_id IN ?", leagueIDs).
		Group("league_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.LeagueID] = row.TeamCount
	}
	return counts, nil
}

// FindPaginated retrieves leagues for the admin listing, newest first.
// Admin listings never filter server-side.
func (r *LeagueRepository) FindPaginated(page, pageSize int) ([]models.League, int64, error) {
	var totalCount int64
	if err := database.DB.Model(&models.League{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var leagues []models.League
	offset := (page - 1) * pageSize
	err := database.DB.Preload("Country").
		Order("created_at DESC, id DESC").
		Limit(pageSize).Offset(offset).
		Find(&leagues).Error
	return leagues, totalCount, err
}

// FindByID retrieves a league with its country and teams
func (r *LeagueRepository) FindByID(id uint) (models.League, error) {
	var league models.League
	result := database.DB.Preload("Country").Preload("Teams").First(&league, "id = ?", id)
	return league, result.Error
}

// Exists checks whether a league row exists
func (r *LeagueRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.League{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts a new league into the database
func (r *LeagueRepository) Create(league models.League) (models.League, error) {
	result := database.DB.Create(&league)
	return league, result.Error
}

// Update modifies an existing league
func (r *LeagueRepository) Update(league models.League) error {
	result := database.DB.Save(&league)
	return result.Error
}

// Delete removes a league. Member teams go with it through the
// foreign-key cascade.
func (r *LeagueRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.League{}, "id = ?", id)
	return result.Error
}
