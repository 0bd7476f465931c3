package repositories

import (
	"strings"

	"footyref/database"
	"footyref/models"
)

// StadiumRepository handles database operations for stadiums
type StadiumRepository struct{}

// NewStadiumRepository creates a new stadium repository instance
func NewStadiumRepository() *StadiumRepository {
	return &StadiumRepository{}
}

// FindFiltered retrieves stadiums matching the public listing filters,
// paginated. Search matches name OR city, case-insensitive. A filter
// referencing a nonexistent country simply yields an empty page.
func (r *StadiumRepository) FindFiltered(search string, countryID uint, page, pageSize int) ([]models.Stadium, int64, error) {
	db := database.DB.Model(&models.Stadium{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(name) LIKE ? OR LOWER(city) LIKE ?)", pattern, pattern)
	}
	if countryID != 0 {
		db = db.Where("country_id = ?", countryID)
	}

	var totalCount int64
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var stadiums []models.Stadium
	offset := (page - 1) * pageSize
	err := db.Preload("Country").Preload("Teams").
		Order("created_at DESC, id DESC").
		Limit(pageSize).Offset(offset).
		Find(&stadiums).Error
	return stadiums, totalCount, err
}

// FindPaginated retrieves stadiums for the admin listing, newest first
func (r *StadiumRepository) FindPaginated(page, pageSize int) ([]models.Stadium, int64, error) {
	var totalCount int64
	if err := database.DB.Model(&models.Stadium{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var stadiums []models.Stadium
	offset := (page - 1) * pageSize
	err := database.DB.Preload("Country").
		Order("created_at DESC, id DESC").
		Limit(pageSize).Offset(offset).
		Find(&stadiums).Error
	return stadiums, totalCount, err
}

// FindByID retrieves a stadium with its country and teams
func (r *StadiumRepository) FindByID(id uint) (models.Stadium, error) {
	var stadium models.Stadium
	result := database.DB.Preload("Country").Preload("Teams").First(&stadium, "id = ?", id)
	return stadium, result.Error
}

// Exists checks whether a stadium row exists
func (r *StadiumRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Stadium{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts a new stadium into the database
func (r *StadiumRepository) Create(stadium models.Stadium) (models.Stadium, error) {
	result := database.DB.Create(&stadium)
	return stadium, result.Error
}

// Update modifies an existing stadium
func (r *StadiumRepository) Update(stadium models.Stadium) error {
	result := database.DB.Save(&stadium)
	return result.Error
}

// Delete removes a stadium from the database
func (r *StadiumRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.Stadium{}, "id = ?", id)
	return result.Error
}
