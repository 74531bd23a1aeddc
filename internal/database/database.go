package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookshelf/internal/entities"
)

// defaultGenres is the stock taxonomy created on first run. Seeding is
// create-if-missing: renamed or deleted entries are never resurrected
// under a fresh id unless the exact name went missing.
var defaultGenres = []string{
	"Literatura Brasileira",
	"Ficção Científica",
	"Realismo Mágico",
	"Ficção",
	"Fantasia",
	"Romance",
	"Biografia",
	"História",
	"Autoajuda",
	"Tecnologia",
	"Programação",
	"Negócios",
	"Psicologia",
	"Filosofia",
	"Poesia",
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the sqlite database at dbPath, runs migrations and
// optionally seeds the stock genre taxonomy.
//
// Foreign keys are switched on so the store itself rejects deleting a
// genre that books still reference; the repositories pre-check the same
// condition and map the constraint error if a concurrent writer slips
// through anyway.
func NewDatabase(dbPath string, seedGenres bool) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Genre{},
		&entities.Book{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if seedGenres {
		if err := database.seedGenres(); err != nil {
			return nil, fmt.Errorf("failed to seed genres: %w", err)
		}
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedGenres() error {
	for _, name := range defaultGenres {
		var existing entities.Genre
		result := d.DB.Where("name = ?", name).First(&existing)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			genre := entities.Genre{Name: name}
			if err := d.DB.Create(&genre).Error; err != nil {
				return fmt.Errorf("failed to create genre %s: %w", name, err)
			}
			log.Printf("Created genre: %s", name)
		} else if result.Error != nil {
			return result.Error
		}
	}
	return nil
}
