// picks the GORM driver by DBDriver. No repository/service code changes needed when you change DB.

package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// GORM drivers (we open one depending on cfg.DBDriver).
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"

	"github.com/JabirC/Closet/models"
)

// InitDB opens the configured database, then migrates the wardrobe schema.
func InitDB(cfg *Config) *gorm.DB {
	db, err := OpenDB(cfg)
	if err != nil {
		logrus.Fatalf("[db] %v", err)
	}
	if err := Migrate(db); err != nil {
		logrus.Fatalf("[db] automigrate error: %v", err)
	}
	logrus.WithField("driver", cfg.DBDriver).Info("[db] connected")
	return db
}

// OpenDB returns a GORM handle for cfg.DBDriver.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	// Warn keeps output readable (Info logs every statement).
	// TranslateError maps driver unique violations to gorm.ErrDuplicatedKey.
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn), TranslateError: true}

	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("mysql selected but mysql_dsn empty")
		}
		dial = mysql.Open(cfg.MySQLDSN)
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres selected but postgres_dsn empty")
		}
		dial = postgres.Open(cfg.PostgresDSN)
	case "sqlite":
		// SQLite only needs a file path; the driver creates the file if missing.
		// Foreign keys are off by default in SQLite.
		dial = sqlite.Open(cfg.SQLitePath + "?_foreign_keys=on")
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			return nil, fmt.Errorf("sqlserver selected but sqlserver_dsn empty")
		}
		dial = sqlserver.Open(cfg.SQLServerDSN)
	default:
		return nil, fmt.Errorf("unknown db_driver: %s", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}
	return db, nil
}

// Migrate creates or updates tables. Parents come before the tables referencing them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ClothingItem{},
		&models.Outfit{},
		&models.OutfitItem{},
		&models.CalendarEntry{},
	)
}
