package db

import (
	"github.com/teklifhq/offerd/internal/models"
	"fmt"
	"os"
	"strings"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectAndMigrate opens the database with a short retry loop and brings the
// schema up to date. With MIGRATIONS=1 the SQL files in ./migrations run via
// golang-migrate; otherwise AutoMigrate keeps dev setups working.
func ConnectAndMigrate() (*gorm.DB, error) {
	dsn := GetNormalizedDSN()
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN is empty, check the environment configuration")
	}
	var db *gorm.DB
	var err error
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err == nil {
			break
		}
		fmt.Println("Retrying DB connection...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}

	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if v := strings.ToLower(os.Getenv("MIGRATIONS")); v == "1" || v == "true" || v == "yes" {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range Models() {
			if migErr := db.AutoMigrate(m); migErr != nil {
				return nil, fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
	}

	for _, table := range []string{"companies", "users", "offers", "offer_items"} {
		if !db.Migrator().HasTable(table) {
			return nil, fmt.Errorf("missing table after migration: %s", table)
		}
	}
	return db, nil
}

// Models lists every persisted entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Company{}, &models.User{}, &models.Customer{}, &models.Product{},
		&models.Offer{}, &models.OfferItem{}, &models.Payment{},
	}
}

// runSQLMigrations executes migrations in ./migrations using the golang-migrate file source.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
