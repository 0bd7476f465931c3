package repositories

import (
	"strings"

	"footyref/database"
	"footyref/models"
)

// TeamRepository handles database operations for teams
type TeamRepository struct{}

// NewTeamRepository creates a new team repository instance
func NewTeamRepository() *TeamRepository {
	return &TeamRepository{}
}

// FindFiltered retrieves teams matching the public listing filters,
// paginated, with the league, the league's country (two-hop) and the
// stadium resolved.
func (r *TeamRepository) FindFiltered(search string, leagueID uint, page, pageSize int) ([]models.Team, int64, error) {
	db := database.DB.Model(&models.Team{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(name) LIKE ?", pattern)
	}
	if leagueID != 0 {
		db = db.Where("league_id = ?", leagueID)
	}

	var totalCount int64
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var teams []models.Team
	offset := (page - 1) * pageSize
	err := db.Preload("League.Country").Preload("Stadium").
		Order("created_at DESC, id DESC").
		Limit(pageSize).Offset(offset).
		Find(&teams).Error
	return teams, totalCount, err
}

// FindPaginated retrieves teams for the admin listing, newest first
func (r *TeamRepository) FindPaginated(page, pageSize int) ([]models.Team, int64, error) {
	var totalCount int64
	if err := database.DB.Model(&models.Team{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var teams []models.Team
	offset := (page - 1) * pageSize
	err := database.DB.Preload("League").Preload("Stadium").
		Order("created_at DESC, id DESC").
		Limit(pageSize).Offset(offset).
		Find(&teams).Error
	return teams, totalCount, err
}

// FindByID retrieves a team with its league, the league's country and
// its stadium
func (r *TeamRepository) FindByID(id uint) (models.Team, error) {
	var team models.Team
	result := database.DB.Preload("League.Country").Preload("Stadium").First(&team, "id = ?", id)
	return team, result.Error
}

// FindByLeagueID retrieves all teams belonging to a league
func (r *TeamRepository) FindByLeagueID(leagueID uint) ([]models.Team, error) {
	var teams []models.Team
	result := database.DB.Where("league_id = ?", leagueID).Find(&teams)
	return teams, result.Error
}

// Exists checks whether a team row exists
func (r *TeamRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Team{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts a new team into the database
func (r *TeamRepository) Create(team models.Team) (models.Team, error) {
	result := database.DB.Create(&team)
	return team, result.Error
}

// Update modifies an existing team
func (r *TeamRepository) Update(team models.Team) error {
	result := database.DB.Save(&team)
	return result.Error
}

// Delete removes a team from the database
func (r *TeamRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.Team{}, "id = ?", id)
	return result.Error
}
