package services

import (
	"footyref/dto"
	"footyref/models"
	"footyref/repositories"
)

// AdminPageSize is how many rows admin listings show per page
const AdminPageSize = 10

// PublicPageSize is how many rows public paginated listings show per page
const PublicPageSize = 15

// LeagueService handles business logic for leagues
type LeagueService struct {
	leagueRepo  *repositories.LeagueRepository
	countryRepo *repositories.CountryRepository
	teamRepo    *repositories.TeamRepository
}

// NewLeagueService creates a new league service instance
func NewLeagueService() *LeagueService {
	return &LeagueService{
		leagueRepo:  repositories.NewLeagueRepository(),
		countryRepo: repositories.NewCountryRepository(),
		teamRepo:    repositories.NewTeamRepository(),
	}
}

// ListPublic returns every league matching the filter with resolved
// country and computed team count. The public league listing is
// deliberately unpaginated.
func (s *LeagueService) ListPublic(filter dto.LeagueFilter) ([]dto.LeagueListItem, error) {
	leagues, err := s.leagueRepo.FindFiltered(filter.Search, filter.CountryID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(leagues))
	for _, l := range leagues {
		ids = append(ids, l.ID)
	}
	counts, err := s.leagueRepo.TeamCounts(ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LeagueListItem, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, dto.NewLeagueListItem(l, counts[l.ID]))
	}
	return items, nil
}

// GetDetail returns the public detail view of a league with its teams
func (s *LeagueService) GetDetail(id uint) (dto.LeagueDetail, error) {
	league, err := s.leagueRepo.FindByID(id)
	if err != nil {
		return dto.LeagueDetail{}, err
	}
	return dto.NewLeagueDetail(league), nil
}

// ListAdmin returns the paginated admin league listing, newest first
func (s *LeagueService) ListAdmin(page int) (dto.AdminLeagueListResponse, error) {
	if page < 1 {
		page = 1
	}
	leagues, totalCount, err := s.leagueRepo.FindPaginated(page, AdminPageSize)
	if err != nil {
		return dto.AdminLeagueListResponse{}, err
	}

	items := make([]dto.AdminLeagueItem, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, dto.NewAdminLeagueItem(l))
	}
	return dto.AdminLeagueListResponse{
		Leagues:    items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   AdminPageSize,
		TotalPages: dto.TotalPages(totalCount, AdminPageSize),
	}, nil
}

// validate applies the league field rules shared by create and update
func (s *LeagueService) validate(req dto.LeagueRequest, image dto.ImageInput) (FieldErrors, *models.League) {
	errs := FieldErrors{}

	exists, err := s.countryRepo.Exists(req.CountryID)
	if err == nil && !exists {
		errs["country_id"] = "country does not exist"
	}

	validateImage(image, "logo", errs)

	league := models.League{
		Name:        req.Name,
		CountryID:   req.CountryID,
		Description: optional(req.Description),
		ResourceURL: optional(req.ResourceURL),
	}
	if req.FoundedYear != "" {
		league.Founded = parseFoundedYear(req.FoundedYear, "founded_year", errs)
	}

	return errs, &league
}

// Create validates and persists a new league. Validation precedes any
// write: on failure nothing is stored, on disk or in the database.
func (s *LeagueService) Create(req dto.LeagueRequest, image dto.ImageInput) (models.League, error) {
	if image.Kind == dto.ImageNone && req.LogoURL != "" {
		image = dto.NewImageInput(nil, req.LogoURL)
	}

	errs, league := s.validate(req, image)
	if len(errs) > 0 {
		return models.League{}, &ValidationError{Fields: errs}
	}

	logo, err := storeImage(image, "leagues")
	if err != nil {
		return models.League{}, err
	}
	league.Logo = logo

	return s.leagueRepo.Create(*league)
}

// Update validates and applies changes to an existing league. When the
// logo is replaced the previously stored file is deleted afterwards;
// a failed deletion is reported through the warning return.
func (s *LeagueService) Update(id uint, req dto.LeagueRequest, image dto.ImageInput) (models.League, string, error) {
	league, err := s.leagueRepo.FindByID(id)
	if err != nil {
		return models.League{}, "", err
	}

	if image.Kind == dto.ImageNone && req.LogoURL != "" {
		image = dto.NewImageInput(nil, req.LogoURL)
	}

	errs, changes := s.validate(req, image)
	if len(errs) > 0 {
		return models.League{}, "", &ValidationError{Fields: errs}
	}

	previousLogo := league.Logo
	league.Name = changes.Name
	league.CountryID = changes.CountryID
	league.Founded = changes.Founded
	league.Description = changes.Description
	league.ResourceURL = changes.ResourceURL

	if image.Kind != dto.ImageNone {
		logo, err := storeImage(image, "leagues")
		if err != nil {
			return models.League{}, "", err
		}
		league.Logo = logo
	}

	// Clear the preloaded relations so stale associations are not saved
	league.Country = models.Country{}
	league.Teams = nil

	if err := s.leagueRepo.Update(league); err != nil {
		return models.League{}, "", err
	}

	warning := ""
	if image.Kind != dto.ImageNone && previousLogo != nil {
		warning = cleanupImage(previousLogo)
	}
	return league, warning, nil
}

// Delete removes a league. Member teams go with it through the
// storage-layer cascade, so their stored logos are collected and
// deleted here first to keep the file store consistent.
func (s *LeagueService) Delete(id uint) (string, error) {
	league, err := s.leagueRepo.FindByID(id)
	if err != nil {
		return "", err
	}

	teams, err := s.teamRepo.FindByLeagueID(id)
	if err != nil {
		return "", err
	}

	var warnings []string
	for _, t := range teams {
		warnings = append(warnings, cleanupImage(t.Logo))
	}
	warnings = append(warnings, cleanupImage(league.Logo))

	if err := s.leagueRepo.Delete(id); err != nil {
		return "", err
	}
	return joinWarnings(warnings), nil
}
