// Package genres provides database operations for the genre taxonomy.
//
// This package implements the GenreStore interface defined in
// internal/http/stores.go.
//
// # Usage
//
//	repo := genres.NewRepository(db)
//	genre, err := repo.CreateGenre("Fantasia")
package genres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookshelf/internal/database"
	"bookshelf/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListGenres retrieves every genre ordered by name ascending.
func (r *Repository) ListGenres() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("name ASC").Find(&genres).Error
	return genres, err
}

// GetGenreByID retrieves a genre by id.
func (r *Repository) GetGenreByID(id string) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.First(&genre, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrGenreNotFound
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// CreateGenre creates a new genre. Names are unique with a
// case-sensitive exact match; a collision returns
// database.ErrDuplicateGenreName.
func (r *Repository) CreateGenre(name string) (*entities.Genre, error) {
	var existing entities.Genre
	err := r.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, database.ErrDuplicateGenreName
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	genre := &entities.Genre{Name: name}
	if err := r.db.Create(genre).Error; err != nil {
		if database.IsUniqueConstraint(err) {
			return nil, database.ErrDuplicateGenreName
		}
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return genre, nil
}

// RenameGenre changes a genre's name in place. Renaming to the name of
// a different genre fails with database.ErrDuplicateGenreName; renaming
// a genre to its own current name is a no-op that succeeds.
func (r *Repository) RenameGenre(id, newName string) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.First(&genre, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrGenreNotFound
	}
	if err != nil {
		return nil, err
	}

	var collision entities.Genre
	err = r.db.Where("name = ? AND id <> ?", newName, id).First(&collision).Error
	if err == nil {
		return nil, database.ErrDuplicateGenreName
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	genre.Name = newName
	if err := r.db.Save(&genre).Error; err != nil {
		if database.IsUniqueConstraint(err) {
			return nil, database.ErrDuplicateGenreName
		}
		return nil, fmt.Errorf("failed to rename genre: %w", err)
	}
	return &genre, nil
}

// DeleteGenre permanently removes a genre. Deletion is blocked with
// database.ErrGenreInUse while any book references the genre; the
// referencing books are never touched.
func (r *Repository) DeleteGenre(id string) error {
	var genre entities.Genre
	err := r.db.First(&genre, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.ErrGenreNotFound
	}
	if err != nil {
		return err
	}

	var bookCount int64
	if err := r.db.Model(&entities.Book{}).Where("genre_id = ?", id).Count(&bookCount).Error; err != nil {
		return err
	}
	if bookCount > 0 {
		return database.ErrGenreInUse
	}

	if err := r.db.Delete(&entities.Genre{}, "id = ?", id).Error; err != nil {
		// A book created between the count and the delete trips the
		// foreign-key constraint instead.
		if database.IsForeignKeyConstraint(err) {
			return database.ErrGenreInUse
		}
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	return nil
}
