package services

import (
	"footyref/dto"
	"footyref/models"
	"footyref/repositories"
)

// TeamService handles business logic for teams
type TeamService struct {
	teamRepo    *repositories.TeamRepository
	leagueRepo  *repositories.LeagueRepository
	stadiumRepo *repositories.StadiumRepository
}

// NewTeamService creates a new team service instance
func NewTeamService() *TeamService {
	return &TeamService{
		teamRepo:    repositories.NewTeamRepository(),
		leagueRepo:  repositories.NewLeagueRepository(),
		stadiumRepo: repositories.NewStadiumRepository(),
	}
}

// ListPublic returns the paginated public team listing with league,
// derived country, and stadium resolved
func (s *TeamService) ListPublic(filter dto.TeamFilter) (dto.TeamListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}

	teams, totalCount, err := s.teamRepo.FindFiltered(filter.Search, filter.LeagueID, page, PublicPageSize)
	if err != nil {
		return dto.TeamListResponse{}, err
	}

	return dto.TeamListResponse{
		Teams:      dto.NewTeamListItems(teams),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   PublicPageSize,
		TotalPages: dto.TotalPages(totalCount, PublicPageSize),
	}, nil
}

// GetDetail returns the public detail view of a team. The country is
// resolved two-hop through the league at read time; nothing is stored
// that could go stale.
func (s *TeamService) GetDetail(id uint) (dto.TeamListItem, error) {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		return dto.TeamListItem{}, err
	}
	return dto.NewTeamListItem(team), nil
}

// ListAdmin returns the paginated admin team listing, newest first
func (s *TeamService) ListAdmin(page int) (dto.AdminTeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	teams, totalCount, err := s.teamRepo.FindPaginated(page, AdminPageSize)
	if err != nil {
		return dto.AdminTeamListResponse{}, err
	}

	items := make([]dto.AdminTeamItem, 0, len(teams))
	for _, t := range teams {
		items = append(items, dto.NewAdminTeamItem(t))
	}
	return dto.AdminTeamListResponse{
		Teams:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   AdminPageSize,
		TotalPages: dto.TotalPages(totalCount, AdminPageSize),
	}, nil
}

// validate applies the team field rules shared by create and update
func (s *TeamService) validate(req dto.TeamRequest, image dto.ImageInput) (FieldErrors, *models.Team) {
	errs := FieldErrors{}

	if exists, err := s.leagueRepo.Exists(req.LeagueID); err == nil && !exists {
		errs["league_id"] = "league does not exist"
	}
	if exists, err := s.stadiumRepo.Exists(req.StadiumID); err == nil && !exists {
		errs["stadium_id"] = "stadium does not exist"
	}

	validateImage(image, "logo", errs)

	team := models.Team{
		Name:      req.Name,
		LeagueID:  req.LeagueID,
		StadiumID: req.StadiumID,
		Website:   optional(req.Website),
	}
	if founded := parseFoundedYear(req.FoundedYear, "founded_year", errs); founded != nil {
		team.Founded = *founded
	}

	return errs, &team
}

// Create validates and persists a new team. A foreign-key violation is
// caught before any write: no row is created.
func (s *TeamService) Create(req dto.TeamRequest, image dto.ImageInput) (models.Team, error) {
	if image.Kind == dto.ImageNone && req.LogoURL != "" {
		image = dto.NewImageInput(nil, req.LogoURL)
	}

	errs, team := s.validate(req, image)
	if len(errs) > 0 {
		return models.Team{}, &ValidationError{Fields: errs}
	}

	logo, err := storeImage(image, "teams")
	if err != nil {
		return models.Team{}, err
	}
	team.Logo = logo

	return s.teamRepo.Create(*team)
}

// Update validates and applies changes to an existing team, deleting
// the previously stored logo when it is replaced
func (s *TeamService) Update(id uint, req dto.TeamRequest, image dto.ImageInput) (models.Team, string, error) {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		return models.Team{}, "", err
	}

	if image.Kind == dto.ImageNone && req.LogoURL != "" {
		image = dto.NewImageInput(nil, req.LogoURL)
	}

	errs, changes := s.validate(req, image)
	if len(errs) > 0 {
		return models.Team{}, "", &ValidationError{Fields: errs}
	}

	previousLogo := team.Logo
	team.Name = changes.Name
	team.LeagueID = changes.LeagueID
	team.StadiumID = changes.StadiumID
	team.Founded = changes.Founded
	team.Website = changes.Website

	if image.Kind != dto.ImageNone {
		logo, err := storeImage(image, "teams")
		if err != nil {
			return models.Team{}, "", err
		}
		team.Logo = logo
	}

	// Clear the preloaded relations so stale associations are not saved
	team.League = models.League{}
	team.Stadium = models.Stadium{}

	if err := s.teamRepo.Update(team); err != nil {
		return models.Team{}, "", err
	}

	warning := ""
	if image.Kind != dto.ImageNone && previousLogo != nil {
		warning = cleanupImage(previousLogo)
	}
	return team, warning, nil
}

// Delete removes a team, deleting its locally stored logo first
func (s *TeamService) Delete(id uint) (string, error) {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		return "", err
	}

	warning := cleanupImage(team.Logo)
	if err := s.teamRepo.Delete(id); err != nil {
		return "", err
	}
	return warning, nil
}
