package database

import (
	"fmt"
	"log"
	"time"

	"menumatch/internal/config"
	"menumatch/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Restaurant{},
		&models.StandardMenu{},
		&models.Menu{},
		&models.MenuMatchingHistory{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		// Standard menu indexes
		"CREATE INDEX IF NOT EXISTS idx_standard_menus_normalized_name ON standard_menus(normalized_name)",
		"CREATE INDEX IF NOT EXISTS idx_standard_menus_category ON standard_menus(category)",
		"CREATE INDEX IF NOT EXISTS idx_standard_menus_is_active ON standard_menus(is_active)",
		"CREATE INDEX IF NOT EXISTS idx_standard_menus_match_count ON standard_menus(match_count DESC)",
		// Menu indexes
		"CREATE INDEX IF NOT EXISTS idx_menus_normalized_name ON menus(normalized_name)",
		"CREATE INDEX IF NOT EXISTS idx_menus_standard_menu_id ON menus(standard_menu_id) WHERE standard_menu_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_menus_restaurant_id ON menus(restaurant_id)",
		"CREATE INDEX IF NOT EXISTS idx_menus_unmatched ON menus(created_at) WHERE standard_menu_id IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_menus_match_method ON menus(match_method)",
		// History indexes
		"CREATE INDEX IF NOT EXISTS idx_histories_menu_id ON menu_matching_histories(menu_id)",
		"CREATE INDEX IF NOT EXISTS idx_histories_standard_menu_id ON menu_matching_histories(standard_menu_id)",
		"CREATE INDEX IF NOT EXISTS idx_histories_created_at ON menu_matching_histories(created_at)",
		// Restaurant indexes
		"CREATE INDEX IF NOT EXISTS idx_restaurants_name ON restaurants(name)",
		"CREATE INDEX IF NOT EXISTS idx_restaurants_category ON restaurants(category)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
