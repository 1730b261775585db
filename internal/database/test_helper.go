package database

import (
	"fmt"
	"testing"

	"menumatch/internal/config"
	"menumatch/internal/models"
	"menumatch/internal/nlp"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestRestaurant(t *testing.T, db *DB, name string) *models.Restaurant {
	t.Helper()

	restaurant := &models.Restaurant{
		Name:     name,
		Address:  gofakeit.Address().Address,
		Phone:    gofakeit.Phone(),
		Category: "한식",
		IsActive: true,
	}

	if err := db.Create(restaurant).Error; err != nil {
		t.Fatalf("failed to create test restaurant: %v", err)
	}

	return restaurant
}

func CreateTestStandardMenu(t *testing.T, db *DB, name, category string) *models.StandardMenu {
	t.Helper()

	menu := &models.StandardMenu{
		Name:           name,
		NormalizedName: nlp.Normalize(name),
		Category:       category,
		IsActive:       true,
	}

	if err := db.Create(menu).Error; err != nil {
		t.Fatalf("failed to create test standard menu: %v", err)
	}

	return menu
}

type TestDB struct {
	*DB
	t *testing.T
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	return &TestDB{
		DB: SetupTestDB(t),
		t:  t,
	}
}

func (tdb *TestDB) Cleanup() {
	tdb.t.Helper()

	CleanupTestDB(tdb.t, tdb.DB)
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"menu_matching_histories",
		"menus",
		"standard_menus",
		"restaurants",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
