package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"footyref/database"
	"footyref/lib/filestore"
	"footyref/models"
	"footyref/services"
)

// setupAPI wires a full router against a fresh in-memory database
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(database.Models...))
	database.DB = db

	require.NoError(t, filestore.Init(t.TempDir()))

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))
	return router
}

type apiFixture struct {
	Country models.Country
	League  models.League
	Stadium models.Stadium
}

func seedAPI(t *testing.T) apiFixture {
	t.Helper()

	continent := models.Continent{Name: "Europe"}
	require.NoError(t, database.DB.Create(&continent).Error)
	country := models.Country{Name: "Spain", Flag: "🇪🇸", ContinentID: continent.ID}
	require.NoError(t, database.DB.Create(&country).Error)
	league := models.League{Name: "La Liga", CountryID: country.ID}
	require.NoError(t, database.DB.Create(&league).Error)
	stadium := models.Stadium{Name: "Camp Nou", City: "Barcelona", CountryID: country.ID, Latitude: 41.38, Longitude: 2.12}
	require.NoError(t, database.DB.Create(&stadium).Error)

	return apiFixture{Country: country, League: league, Stadium: stadium}
}

func bearerToken(t *testing.T, role models.Role) string {
	t.Helper()
	token, _, err := services.GenerateToken(1, "someone@example.com", string(role))
	require.NoError(t, err)
	return "Bearer " + token
}

func postForm(router *gin.Engine, path, auth string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router *gin.Engine, path, auth string) (int, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealthEndpoint(t *testing.T) {
	router := setupAPI(t)

	code, _ := getJSON(t, router, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestCreateTeamAndFetchPublicDetail(t *testing.T) {
	router := setupAPI(t)
	f := seedAPI(t)
	admin := bearerToken(t, models.RoleAdmin)

	form := url.Values{
		"name":         {"Barcelona"},
		"league_id":    {strconv.Itoa(int(f.League.ID))},
		"stadium_id":   {strconv.Itoa(int(f.Stadium.ID))},
		"founded_year": {"1899-11-29"},
		"website":      {"https://www.fcbarcelona.com"},
		"logo_url":     {"https://cdn.example.com/barca.png"},
	}
	w := postForm(router, "/api/v1/admin/teams", admin, form)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Team `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Data.ID)

	code, body := getJSON(t, router, "/api/v1/teams/"+strconv.Itoa(int(created.Data.ID)), "")
	require.Equal(t, http.StatusOK, code)

	var detail struct {
		Name        string  `json:"name"`
		FoundedYear string  `json:"foundedYear"`
		LeagueName  string  `json:"leagueName"`
		CountryName string  `json:"countryName"`
		StadiumName string  `json:"stadiumName"`
		Logo        *string `json:"logo"`
	}
	require.NoError(t, json.Unmarshal(body["data"], &detail))
	assert.Equal(t, "Barcelona", detail.Name)
	assert.Equal(t, "1899", detail.FoundedYear)
	assert.Equal(t, "La Liga", detail.LeagueName)
	assert.Equal(t, "Spain", detail.CountryName)
	assert.Equal(t, "Camp Nou", detail.StadiumName)
	require.NotNil(t, detail.Logo)
	assert.Equal(t, "https://cdn.example.com/barca.png", *detail.Logo)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	router := setupAPI(t)
	seedAPI(t)

	// No token at all
	code, _ := getJSON(t, router, "/api/v1/admin/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	// Authenticated but not an admin
	code, _ = getJSON(t, router, "/api/v1/admin/dashboard", bearerToken(t, models.RoleUser))
	assert.Equal(t, http.StatusForbidden, code)

	// Admin passes
	code, _ = getJSON(t, router, "/api/v1/admin/dashboard", bearerToken(t, models.RoleAdmin))
	assert.Equal(t, http.StatusOK, code)
}

func TestCreateLeagueValidationErrorShape(t *testing.T) {
	router := setupAPI(t)
	seedAPI(t)
	admin := bearerToken(t, models.RoleAdmin)

	w := postForm(router, "/api/v1/admin/leagues", admin, url.Values{
		"country_id": {"1"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Status string            `json:"status"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "is required", body.Errors["name"])
}

func TestCreateLeagueRejectsUnknownCountryWithoutWriting(t *testing.T) {
	router := setupAPI(t)
	seedAPI(t)
	admin := bearerToken(t, models.RoleAdmin)

	w := postForm(router, "/api/v1/admin/leagues", admin, url.Values{
		"name":       {"Ghost League"},
		"country_id": {"9999"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var count int64
	require.NoError(t, database.DB.Model(&models.League{}).Where("name = ?", "Ghost League").Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetTeamNotFound(t *testing.T) {
	router := setupAPI(t)

	code, _ := getJSON(t, router, "/api/v1/teams/424242", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = getJSON(t, router, "/api/v1/teams/not-a-number", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestPublicListingsAreOpen(t *testing.T) {
	router := setupAPI(t)
	f := seedAPI(t)

	team := models.Team{
		Name: "Barcelona", LeagueID: f.League.ID, StadiumID: f.Stadium.ID,
		Founded: time.Date(1899, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, database.DB.Create(&team).Error)

	code, body := getJSON(t, router, "/api/v1/teams", "")
	require.Equal(t, http.StatusOK, code)

	var listing struct {
		Teams      []json.RawMessage `json:"teams"`
		TotalCount int64             `json:"totalCount"`
		PageSize   int               `json:"pageSize"`
	}
	require.NoError(t, json.Unmarshal(body["data"], &listing))
	assert.Equal(t, int64(1), listing.TotalCount)
	assert.Equal(t, 15, listing.PageSize)
	assert.Len(t, listing.Teams, 1)

	code, _ = getJSON(t, router, "/api/v1/leagues", "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = getJSON(t, router, "/api/v1/stadiums", "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = getJSON(t, router, "/api/v1/countries", "")
	assert.Equal(t, http.StatusOK, code)
}

func postJSON(router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router := setupAPI(t)

	w := postJSON(router, "/api/v1/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = postJSON(router, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)

	code, _ := getJSON(t, router, "/api/v1/auth/me", "Bearer "+body.Data.Token)
	assert.Equal(t, http.StatusOK, code)
}
