package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"footyref/dto"
	"footyref/lib/filestore"
	"footyref/models"
	"footyref/utils"
)

func leagueRequest(countryID uint) dto.LeagueRequest {
	return dto.LeagueRequest{
		Name:      "Test League",
		CountryID: countryID,
	}
}

func TestLeagueCreateParsesFoundedForms(t *testing.T) {
	setupTest(t)
	country := createCountry(t, "England")
	svc := NewLeagueService()

	// Full date collapses to its year
	req := leagueRequest(country.ID)
	req.FoundedYear = "1888-09-08"
	league, err := svc.Create(req, dto.ImageInput{})
	require.NoError(t, err)
	require.NotNil(t, league.Founded)
	assert.Equal(t, 1888, league.Founded.Year())
	assert.Equal(t, 1, league.Founded.Day())

	// Bare year works too
	req = leagueRequest(country.ID)
	req.Name = "Another League"
	req.FoundedYear = "1992"
	league, err = svc.Create(req, dto.ImageInput{})
	require.NoError(t, err)
	require.NotNil(t, league.Founded)
	assert.Equal(t, 1992, league.Founded.Year())
}

func TestLeagueCreateRejectsBadFoundedValue(t *testing.T) {
	setupTest(t)
	country := createCountry(t, "England")
	svc := NewLeagueService()

	req := leagueRequest(country.ID)
	req.FoundedYear = "the nineties"
	_, err := svc.Create(req, dto.ImageInput{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "founded_year")
	assert.Zero(t, countRows(t, &models.League{}))
}

func TestLeagueCreateFoundedIsOptional(t *testing.T) {
	setupTest(t)
	country := createCountry(t, "England")
	svc := NewLeagueService()

	league, err := svc.Create(leagueRequest(country.ID), dto.ImageInput{})
	require.NoError(t, err)
	assert.Nil(t, league.Founded)
}

func TestLeagueCreateRejectsUnknownCountry(t *testing.T) {
	setupTest(t)
	svc := NewLeagueService()

	_, err := svc.Create(leagueRequest(9999), dto.ImageInput{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "country_id")
	assert.Zero(t, countRows(t, &models.League{}))
}

func TestLeagueCreateWithExternalLogoURL(t *testing.T) {
	setupTest(t)
	country := createCountry(t, "England")
	svc := NewLeagueService()

	req := leagueRequest(country.ID)
	req.LogoURL = "https://cdn.example.com/crest.png"
	league, err := svc.Create(req, dto.ImageInput{})
	require.NoError(t, err)

	require.NotNil(t, league.Logo)
	assert.Equal(t, "https://cdn.example.com/crest.png", *league.Logo, "external URLs are stored verbatim")
}

func TestLeagueListPublicComputesTeamCounts(t *testing.T) {
	setupTest(t)
	country := createCountry(t, "England")
	league := createLeague(t, "Premier League", country.ID)
	empty := createLeague(t, "Hollow League", country.ID)
	stadium := createStadium(t, "Arena", country.ID)
	createTeam(t, "First FC", league.ID, stadium.ID, nil)
	createTeam(t, "Second FC", league.ID, stadium.ID, nil)

	items, err := NewLeagueService().ListPublic(dto.LeagueFilter{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	counts := map[uint]int64{}
	for _, item := range items {
		counts[item.ID] = item.TeamCount
	}
	assert.Equal(t, int64(2), counts[league.ID])
	assert.Equal(t, int64(0), counts[empty.ID], "zero-team league shows zero, not a gap")
}

func TestLeagueDeleteCleansMemberTeamLogos(t *testing.T) {
	setupTest(t)
	country := createCountry(t, "England")
	svc := NewLeagueService()

	logoImage := dto.NewImageInput(uploadHeader(t, "crest.png", "crest"), "")
	req := leagueRequest(country.ID)
	league, err := svc.Create(req, logoImage)
	require.NoError(t, err)
	leagueLogoPath := filepath.Join(filestore.BaseDir(), *league.Logo)

	stadium := createStadium(t, "Arena", country.ID)
	teamLogo, err := filestore.Save(uploadHeader(t, "team.png", "team"), "teams")
	require.NoError(t, err)
	createTeam(t, "Member FC", league.ID, stadium.ID, utils.Ptr(teamLogo))
	createTeam(t, "External FC", league.ID, stadium.ID, utils.Ptr("https://cdn.example.com/x.png"))
	teamLogoPath := filepath.Join(filestore.BaseDir(), teamLogo)

	warning, err := svc.Delete(league.ID)
	require.NoError(t, err)
	assert.Empty(t, warning)

	// League logo, member team logos, and the team rows are all gone
	_, err = os.Stat(leagueLogoPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(teamLogoPath)
	assert.True(t, os.IsNotExist(err), "cascade-deleted teams must not orphan stored logos")
	assert.Zero(t, countRows(t, &models.Team{}))
	assert.Zero(t, countRows(t, &models.League{}))
}

func TestLeagueGetDetailIncludesTeams(t *testing.T) {
	setupTest(t)
	country := createCountry(t, "Spain")
	league := createLeague(t, "La Liga", country.ID)
	stadium := createStadium(t, "Camp Nou", country.ID)
	createTeam(t, "Barcelona", league.ID, stadium.ID, nil)

	detail, err := NewLeagueService().GetDetail(league.ID)
	require.NoError(t, err)
	assert.Equal(t, "La Liga", detail.Name)
	assert.Equal(t, "Spain", detail.CountryName)
	require.Len(t, detail.Teams, 1)
	assert.Equal(t, "Barcelona", detail.Teams[0].Name)
}
