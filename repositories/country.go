package repositories

import (
	"footyref/database"
	"footyref/models"
)

// CountryRepository handles database operations for countries
type CountryRepository struct{}

// NewCountryRepository creates a new country repository instance
func NewCountryRepository() *CountryRepository {
	return &CountryRepository{}
}

// FindAll retrieves all countries ordered by name
func (r *CountryRepository) FindAll() ([]models.Country, error) {
	var countries []models.Country
	result := database.DB.Order("name ASC").Find(&countries)
	return countries, result.Error
}

// FindWithLeagues retrieves only countries that own at least one league,
// which is what the public league filter dropdown shows
func (r *CountryRepository) FindWithLeagues() ([]models.Country, error) {
	var countries []models.Country
	subQuery := database.DB.Model(&models.League{}).Select("country_id")
	result := database.DB.Where("id IN (?)", subQuery).Order("name ASC").Find(&countries)
	return countries, result.Error
}

// FindByID retrieves a country by its ID
func (r *CountryRepository) FindByID(id uint) (models.Country, error) {
	var country models.Country
	result := database.DB.First(&country, "id = ?", id)
	return country, result.Error
}

// Exists checks whether a country row exists
func (r *CountryRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Country{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
