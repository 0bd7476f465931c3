package database

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"footyref/logger"
	"footyref/models"
	"footyref/utils"
)

// Seed populates demonstration data. It is idempotent: if countries
// already exist the seed run is skipped entirely.
func Seed() error {
	var count int64
	if err := DB.Model(&models.Country{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Log.Debug("Seed skipped, database already populated")
		return nil
	}

	continents := []models.Continent{
		{Name: "Europe"},
		{Name: "South America"},
		{Name: "North America"},
		{Name: "Africa"},
		{Name: "Asia"},
		{Name: "Oceania"},
	}
	if err := DB.Create(&continents).Error; err != nil {
		return err
	}

	europe := continents[0].ID
	southAmerica := continents[1].ID

	countries := []models.Country{
		{Name: "England", Flag: "🏴", ContinentID: europe},
		{Name: "Spain", Flag: "🇪🇸", ContinentID: europe},
		{Name: "Germany", Flag: "🇩🇪", ContinentID: europe},
		{Name: "Italy", Flag: "🇮🇹", ContinentID: europe},
		{Name: "France", Flag: "🇫🇷", ContinentID: europe},
		{Name: "Brazil", Flag: "🇧🇷", ContinentID: southAmerica},
		{Name: "Argentina", Flag: "🇦🇷", ContinentID: southAmerica},
	}
	if err := DB.Create(&countries).Error; err != nil {
		return err
	}

	england, spain, germany := countries[0].ID, countries[1].ID, countries[2].ID

	cities := []models.City{
		{Name: "London", CountryID: england},
		{Name: "Manchester", CountryID: england},
		{Name: "Liverpool", CountryID: england},
		{Name: "Madrid", CountryID: spain},
		{Name: "Barcelona", CountryID: spain},
		{Name: "Munich", CountryID: germany},
		{Name: "Dortmund", CountryID: germany},
	}
	if err := DB.Create(&cities).Error; err != nil {
		return err
	}

	leagues := []models.League{
		{Name: "Premier League", CountryID: england, Founded: utils.Ptr(yearDate(1992)),
			Description: utils.Ptr("The top tier of English football.")},
		{Name: "La Liga", CountryID: spain, Founded: utils.Ptr(yearDate(1929)),
			Description: utils.Ptr("Spain's premier professional football division.")},
		{Name: "Bundesliga", CountryID: germany, Founded: utils.Ptr(yearDate(1963)),
			Description: utils.Ptr("Germany's primary football competition.")},
	}
	if err := DB.Create(&leagues).Error; err != nil {
		return err
	}

	stadiums := []models.Stadium{
		{Name: "Old Trafford", City: "Manchester", CountryID: england,
			Latitude: 53.4631, Longitude: -2.2913, Capacity: utils.Ptr(74310)},
		{Name: "Anfield", City: "Liverpool", CountryID: england,
			Latitude: 53.4308, Longitude: -2.9608, Capacity: utils.Ptr(61276)},
		{Name: "Emirates Stadium", City: "London", CountryID: england,
			Latitude: 51.5549, Longitude: -0.1084, Capacity: utils.Ptr(60704)},
		{Name: "Santiago Bernabeu", City: "Madrid", CountryID: spain,
			Latitude: 40.4531, Longitude: -3.6883, Capacity: utils.Ptr(81044)},
		{Name: "Camp Nou", City: "Barcelona", CountryID: spain,
			Latitude: 41.3809, Longitude: 2.1228, Capacity: utils.Ptr(99354)},
		{Name: "Allianz Arena", City: "Munich", CountryID: germany,
			Latitude: 48.2188, Longitude: 11.6247, Capacity: utils.Ptr(75024)},
	}
	if err := DB.Create(&stadiums).Error; err != nil {
		return err
	}

	premierLeague, laLiga, bundesliga := leagues[0].ID, leagues[1].ID, leagues[2].ID

	teams := []models.Team{
		{Name: "Manchester United", LeagueID: premierLeague, StadiumID: stadiums[0].ID,
			Founded: yearDate(1878), Website: utils.Ptr("https://www.manutd.com")},
		{Name: "Liverpool", LeagueID: premierLeague, StadiumID: stadiums[1].ID,
			Founded: yearDate(1892), Website: utils.Ptr("https://www.liverpoolfc.com")},
		{Name: "Arsenal", LeagueID: premierLeague, StadiumID: stadiums[2].ID,
			Founded: yearDate(1886), Website: utils.Ptr("https://www.arsenal.com")},
		{Name: "Real Madrid", LeagueID: laLiga, StadiumID: stadiums[3].ID,
			Founded: yearDate(1902), Website: utils.Ptr("https://www.realmadrid.com")},
		{Name: "Barcelona", LeagueID: laLiga, StadiumID: stadiums[4].ID,
			Founded: yearDate(1899), Website: utils.Ptr("https://www.fcbarcelona.com")},
		{Name: "Bayern Munich", LeagueID: bundesliga, StadiumID: stadiums[5].ID,
			Founded: yearDate(1900), Website: utils.Ptr("https://fcbayern.com")},
	}
	if err := DB.Create(&teams).Error; err != nil {
		return err
	}

	adminPassword, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	users := []models.User{
		{Name: "Admin", Email: "admin@footyref.local", Password: string(adminPassword),
			Role: models.RoleAdmin, EmailVerifiedAt: &now},
		{Name: "Demo User", Email: "user@footyref.local", Password: string(adminPassword),
			Role: models.RoleUser, EmailVerifiedAt: &now},
	}
	if err := DB.Create(&users).Error; err != nil {
		return err
	}

	logger.Log.Infow("Seed data created",
		"countries", len(countries), "leagues", len(leagues),
		"stadiums", len(stadiums), "teams", len(teams))
	return nil
}

// yearDate builds the canonical year-granular date: January 1 of the year
func yearDate(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}
