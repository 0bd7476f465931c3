package services

import (
	"footyref/dto"
	"footyref/repositories"
)

// CountryService serves country data for filter dropdowns
type CountryService struct {
	countryRepo *repositories.CountryRepository
}

// NewCountryService creates a new country service instance
func NewCountryService() *CountryService {
	return &CountryService{
		countryRepo: repositories.NewCountryRepository(),
	}
}

// Options returns countries shaped for dropdowns. With hasLeagues set,
// only countries owning at least one league are included.
func (s *CountryService) Options(hasLeagues bool) ([]dto.CountryOption, error) {
	if hasLeagues {
		countries, err := s.countryRepo.FindWithLeagues()
		if err != nil {
			return nil, err
		}
		return dto.NewCountryOptions(countries), nil
	}

	countries, err := s.countryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return dto.NewCountryOptions(countries), nil
}
