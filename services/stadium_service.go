package services

import (
	"footyref/dto"
	"footyref/models"
	"footyref/repositories"
)

// StadiumService handles business logic for stadiums
type StadiumService struct {
	stadiumRepo *repositories.StadiumRepository
	countryRepo *repositories.CountryRepository
}

// NewStadiumService creates a new stadium service instance
func NewStadiumService() *StadiumService {
	return &StadiumService{
		stadiumRepo: repositories.NewStadiumRepository(),
		countryRepo: repositories.NewCountryRepository(),
	}
}

// ListPublic returns the paginated public stadium listing
func (s *StadiumService) ListPublic(filter dto.StadiumFilter) (dto.StadiumListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}

	stadiums, totalCount, err := s.stadiumRepo.FindFiltered(filter.Search, filter.CountryID, page, PublicPageSize)
	if err != nil {
		return dto.StadiumListResponse{}, err
	}

	items := make([]dto.StadiumListItem, 0, len(stadiums))
	for _, st := range stadiums {
		items = append(items, dto.NewStadiumListItem(st))
	}
	return dto.StadiumListResponse{
		Stadiums:   items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   PublicPageSize,
		TotalPages: dto.TotalPages(totalCount, PublicPageSize),
	}, nil
}

// GetDetail returns the public detail view of a stadium
func (s *StadiumService) GetDetail(id uint) (dto.StadiumListItem, error) {
	stadium, err := s.stadiumRepo.FindByID(id)
	if err != nil {
		return dto.StadiumListItem{}, err
	}
	return dto.NewStadiumListItem(stadium), nil
}

// ListAdmin returns the paginated admin stadium listing, newest first
func (s *StadiumService) ListAdmin(page int) (dto.AdminStadiumListResponse, error) {
	if page < 1 {
		page = 1
	}
	stadiums, totalCount, err := s.stadiumRepo.FindPaginated(page, AdminPageSize)
	if err != nil {
		return dto.AdminStadiumListResponse{}, err
	}

	items := make([]dto.AdminStadiumItem, 0, len(stadiums))
	for _, st := range stadiums {
		items = append(items, dto.NewAdminStadiumItem(st))
	}
	return dto.AdminStadiumListResponse{
		Stadiums:   items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   AdminPageSize,
		TotalPages: dto.TotalPages(totalCount, AdminPageSize),
	}, nil
}

// validate applies the stadium field rules shared by create and update.
// Latitude 90.0 and -90.0 are valid; anything outside is not. Same for
// longitude at 180.
func (s *StadiumService) validate(req dto.StadiumRequest, image dto.ImageInput) (FieldErrors, *models.Stadium) {
	errs := FieldErrors{}

	exists, err := s.countryRepo.Exists(req.CountryID)
	if err == nil && !exists {
		errs["country_id"] = "country does not exist"
	}

	if req.Latitude != nil && (*req.Latitude < -90 || *req.Latitude > 90) {
		errs["latitude"] = "must be between -90 and 90"
	}
	if req.Longitude != nil && (*req.Longitude < -180 || *req.Longitude > 180) {
		errs["longitude"] = "must be between -180 and 180"
	}
	if req.Capacity != nil && *req.Capacity < 0 {
		errs["capacity"] = "must be zero or a positive integer"
	}

	validateImage(image, "image", errs)

	stadium := models.Stadium{
		Name:      req.Name,
		City:      req.City,
		CountryID: req.CountryID,
		Capacity:  req.Capacity,
	}
	if req.Latitude != nil {
		stadium.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		stadium.Longitude = *req.Longitude
	}

	return errs, &stadium
}

// Create validates and persists a new stadium
func (s *StadiumService) Create(req dto.StadiumRequest, image dto.ImageInput) (models.Stadium, error) {
	if image.Kind == dto.ImageNone && req.ImageURL != "" {
		image = dto.NewImageInput(nil, req.ImageURL)
	}

	errs, stadium := s.validate(req, image)
	if len(errs) > 0 {
		return models.Stadium{}, &ValidationError{Fields: errs}
	}

	stored, err := storeImage(image, "stadiums")
	if err != nil {
		return models.Stadium{}, err
	}
	stadium.Image = stored

	return s.stadiumRepo.Create(*stadium)
}

// Update validates and applies changes to an existing stadium,
// deleting the previously stored image when it is replaced
func (s *StadiumService) Update(id uint, req dto.StadiumRequest, image dto.ImageInput) (models.Stadium, string, error) {
	stadium, err := s.stadiumRepo.FindByID(id)
	if err != nil {
		return models.Stadium{}, "", err
	}

	if image.Kind == dto.ImageNone && req.ImageURL != "" {
		image = dto.NewImageInput(nil, req.ImageURL)
	}

	errs, changes := s.validate(req, image)
	if len(errs) > 0 {
		return models.Stadium{}, "", &ValidationError{Fields: errs}
	}

	previousImage := stadium.Image
	stadium.Name = changes.Name
	stadium.City = changes.City
	stadium.CountryID = changes.CountryID
	stadium.Latitude = changes.Latitude
	stadium.Longitude = changes.Longitude
	stadium.Capacity = changes.Capacity

	if image.Kind != dto.ImageNone {
		stored, err := storeImage(image, "stadiums")
		if err != nil {
			return models.Stadium{}, "", err
		}
		stadium.Image = stored
	}

	// Clear the preloaded relations so stale associations are not saved
	stadium.Country = models.Country{}
	stadium.Teams = nil

	if err := s.stadiumRepo.Update(stadium); err != nil {
		return models.Stadium{}, "", err
	}

	warning := ""
	if image.Kind != dto.ImageNone && previousImage != nil {
		warning = cleanupImage(previousImage)
	}
	return stadium, warning, nil
}

// Delete removes a stadium, deleting its locally stored image first.
// External image URLs never touch the filesystem.
func (s *StadiumService) Delete(id uint) (string, error) {
	stadium, err := s.stadiumRepo.FindByID(id)
	if err != nil {
		return "", err
	}

	warning := cleanupImage(stadium.Image)
	if err := s.stadiumRepo.Delete(id); err != nil {
		return "", err
	}
	return warning, nil
}
