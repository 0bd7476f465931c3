package dto

import (
	"footyref/models"
)

// CountryOption is the shape filter dropdowns consume
type CountryOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// NewCountryOption maps a country row to its dropdown shape
func NewCountryOption(c models.Country) CountryOption {
	return CountryOption{ID: c.ID, Name: c.Name, Flag: c.Flag}
}

// NewCountryOptions maps a slice of country rows
func NewCountryOptions(countries []models.Country) []CountryOption {
	options := make([]CountryOption, 0, len(countries))
	for _, c := range countries {
		options = append(options, NewCountryOption(c))
	}
	return options
}
