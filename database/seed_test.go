package database_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/catalog"
	"github.com/hawkerhub/hawker-app/database"
	"github.com/hawkerhub/hawker-app/models"
)

func setupDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.HawkerCentre{},
		&models.Stall{},
		&models.MenuItem{},
		&models.Location{},
	))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupDB(t, "seed_idempotent")

	require.NoError(t, database.Seed(db))
	var first int64
	require.NoError(t, db.Model(&models.HawkerCentre{}).Count(&first).Error)
	require.Greater(t, first, int64(0))

	// a second run must not duplicate anything
	require.NoError(t, database.Seed(db))
	var second int64
	require.NoError(t, db.Model(&models.HawkerCentre{}).Count(&second).Error)
	assert.Equal(t, first, second)
}

func TestSeedLinksStallsToCentres(t *testing.T) {
	db := setupDB(t, "seed_links")
	require.NoError(t, database.Seed(db))

	var stalls []models.Stall
	require.NoError(t, db.Find(&stalls).Error)
	require.NotEmpty(t, stalls)
	for _, s := range stalls {
		assert.NotZero(t, s.HawkerCentreID)
		assert.NotEmpty(t, s.HawkerCentreName)
	}

	var locations []models.Location
	require.NoError(t, db.Find(&locations).Error)
	assert.NotEmpty(t, locations)
}

func TestSeedFromCatalog(t *testing.T) {
	db := setupDB(t, "seed_from_catalog")

	static, err := catalog.Load(strings.NewReader(`[
	  {"hawker": "Maxwell Food Centre", "stalls": [
	    {"name": "Tian Tian Chicken Rice", "cuisine": "Chinese", "queueLength": 25, "rating": 4.5,
	     "menu": [{"item": "Chicken Rice", "price": 5.0}]}
	  ]},
	  {"hawker": "Lau Pa Sat", "stalls": []}
	]`))
	require.NoError(t, err)

	require.NoError(t, database.SeedFromCatalog(db, static))

	var centres []models.HawkerCentre
	require.NoError(t, db.Preload("Stalls.MenuItems").Order("name asc").Find(&centres).Error)
	require.Len(t, centres, 2)
	assert.Equal(t, "Lau Pa Sat", centres[0].Name)
	require.Len(t, centres[1].Stalls, 1)
	assert.Equal(t, "Chicken Rice", centres[1].Stalls[0].MenuItems[0].Name)
}
