package services

import (
	"footyref/dto"
	"footyref/models"
	"footyref/repositories"
)

// TopListSize is how many entries the dashboard "top N" aggregates show
const TopListSize = 5

// DashboardService assembles the admin dashboard aggregates
type DashboardService struct {
	dashboardRepo *repositories.DashboardRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService() *DashboardService {
	return &DashboardService{
		dashboardRepo: repositories.NewDashboardRepository(),
	}
}

// Stats computes the full dashboard payload. Everything is read fresh
// from the store on every call.
func (s *DashboardService) Stats() (dto.DashboardResponse, error) {
	var response dto.DashboardResponse
	var err error

	if response.Totals.Teams, err = s.dashboardRepo.Count(&models.Team{}); err != nil {
		return response, err
	}
	if response.Totals.Stadiums, err = s.dashboardRepo.Count(&models.Stadium{}); err != nil {
		return response, err
	}
	if response.Totals.Leagues, err = s.dashboardRepo.Count(&models.League{}); err != nil {
		return response, err
	}
	if response.Totals.Countries, err = s.dashboardRepo.Count(&models.Country{}); err != nil {
		return response, err
	}
	if response.Totals.Users, err = s.dashboardRepo.Count(&models.User{}); err != nil {
		return response, err
	}

	if response.UsersByRole, err = s.dashboardRepo.UsersByRole(); err != nil {
		return response, err
	}

	recent, err := s.dashboardRepo.RecentTeams(TopListSize)
	if err != nil {
		return response, err
	}
	response.RecentTeams = dto.NewTeamListItems(recent)

	if response.TopCountries, err = s.dashboardRepo.TopCountriesByTeamCount(TopListSize); err != nil {
		return response, err
	}
	if response.TopLeagues, err = s.dashboardRepo.TopLeaguesByTeamCount(TopListSize); err != nil {
		return response, err
	}

	return response, nil
}
