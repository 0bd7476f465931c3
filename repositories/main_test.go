package repositories

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"footyref/database"
	"footyref/models"
	"footyref/utils"
)

// setupTestDB points the shared database handle at a fresh in-memory
// SQLite instance for the duration of one test
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled second connection would see a different empty :memory: DB
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.Models...))
	database.DB = db
}

// fixture is the deterministic data graph the repository tests share:
// England has 3 teams across its leagues, Spain 5, Germany 1.
type fixture struct {
	England, Spain, Germany models.Country
	PremierLeague, LaLiga, SegundaDivision, Bundesliga models.League
	Stadiums []models.Stadium
	Teams    []models.Team
}

func seedGraph(t *testing.T) fixture {
	t.Helper()

	var f fixture
	continent := models.Continent{Name: "Europe"}
	require.NoError(t, database.DB.Create(&continent).Error)

	f.England = models.Country{Name: "England", Flag: "🏴", ContinentID: continent.ID}
	f.Spain = models.Country{Name: "Spain", Flag: "🇪🇸", ContinentID: continent.ID}
	f.Germany = models.Country{Name: "Germany", Flag: "🇩🇪", ContinentID: continent.ID}
	require.NoError(t, database.DB.Create(&f.England).Error)
	require.NoError(t, database.DB.Create(&f.Spain).Error)
	require.NoError(t, database.DB.Create(&f.Germany).Error)

	f.PremierLeague = models.League{Name: "Premier League", CountryID: f.England.ID}
	f.LaLiga = models.League{Name: "La Liga", CountryID: f.Spain.ID}
	f.SegundaDivision = models.League{Name: "Segunda Division", CountryID: f.Spain.ID}
	f.Bundesliga = models.League{Name: "Bundesliga", CountryID: f.Germany.ID}
	for _, l := range []*models.League{&f.PremierLeague, &f.LaLiga, &f.SegundaDivision, &f.Bundesliga} {
		require.NoError(t, database.DB.Create(l).Error)
	}

	stadiums := []models.Stadium{
		{Name: "Old Trafford", City: "Manchester", CountryID: f.England.ID, Latitude: 53.46, Longitude: -2.29, Capacity: utils.Ptr(74310)},
		{Name: "Anfield", City: "Liverpool", CountryID: f.England.ID, Latitude: 53.43, Longitude: -2.96},
		{Name: "Camp Nou", City: "Barcelona", CountryID: f.Spain.ID, Latitude: 41.38, Longitude: 2.12, Capacity: utils.Ptr(99354)},
		{Name: "Allianz Arena", City: "Munich", CountryID: f.Germany.ID, Latitude: 48.21, Longitude: 11.62, Capacity: utils.Ptr(75024)},
	}
	require.NoError(t, database.DB.Create(&stadiums).Error)
	f.Stadiums = stadiums

	founded := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	teams := []models.Team{
		{Name: "Manchester United", LeagueID: f.PremierLeague.ID, StadiumID: stadiums[0].ID, Founded: founded},
		{Name: "Liverpool", LeagueID: f.PremierLeague.ID, StadiumID: stadiums[1].ID, Founded: founded},
		{Name: "Everton", LeagueID: f.PremierLeague.ID, StadiumID: stadiums[1].ID, Founded: founded},
		{Name: "Barcelona", LeagueID: f.LaLiga.ID, StadiumID: stadiums[2].ID, Founded: founded},
		{Name: "Real Madrid", LeagueID: f.LaLiga.ID, StadiumID: stadiums[2].ID, Founded: founded},
		{Name: "Sevilla", LeagueID: f.LaLiga.ID, StadiumID: stadiums[2].ID, Founded: founded},
		{Name: "Racing Santander", LeagueID: f.SegundaDivision.ID, StadiumID: stadiums[2].ID, Founded: founded},
		{Name: "Sporting Gijon", LeagueID: f.SegundaDivision.ID, StadiumID: stadiums[2].ID, Founded: founded},
		{Name: "Bayern Munich", LeagueID: f.Bundesliga.ID, StadiumID: stadiums[3].ID, Founded: founded},
	}
	require.NoError(t, database.DB.Create(&teams).Error)
	f.Teams = teams

	return f
}
