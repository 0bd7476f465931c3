package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"footyref/database"
	"footyref/lib/filestore"
	"footyref/models"
)

// setupTest points the shared database handle at a fresh in-memory
// SQLite instance and the file store at a throwaway directory
func setupTest(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.Models...))
	database.DB = db

	require.NoError(t, filestore.Init(t.TempDir()))
}

func createCountry(t *testing.T, name string) models.Country {
	t.Helper()
	continent := models.Continent{Name: "Europe"}
	require.NoError(t, database.DB.FirstOrCreate(&continent, models.Continent{Name: "Europe"}).Error)
	country := models.Country{Name: name, Flag: "🏳️", ContinentID: continent.ID}
	require.NoError(t, database.DB.Create(&country).Error)
	return country
}

func createLeague(t *testing.T, name string, countryID uint) models.League {
	t.Helper()
	league := models.League{Name: name, CountryID: countryID}
	require.NoError(t, database.DB.Create(&league).Error)
	return league
}

func createStadium(t *testing.T, name string, countryID uint) models.Stadium {
	t.Helper()
	stadium := models.Stadium{Name: name, City: "Testville", CountryID: countryID, Latitude: 50, Longitude: 5}
	require.NoError(t, database.DB.Create(&stadium).Error)
	return stadium
}

func createTeam(t *testing.T, name string, leagueID, stadiumID uint, logo *string) models.Team {
	t.Helper()
	team := models.Team{
		Name:      name,
		LeagueID:  leagueID,
		StadiumID: stadiumID,
		Founded:   time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
		Logo:      logo,
	}
	require.NoError(t, database.DB.Create(&team).Error)
	return team
}

// uploadHeader fabricates a multipart file header the way gin would
// hand one to a handler
func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.DB.Model(model).Count(&count).Error)
	return count
}
