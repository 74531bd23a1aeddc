// Package books provides database operations for book management.
//
// This package implements the BookStore interface defined in
// internal/http/stores.go.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID("9f5c...")
package books

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"bookshelf/internal/database"
	"bookshelf/internal/entities"
)

// BookFilter selects at most one criterion for FilterBooks. When more
// than one is set, free-text search wins over the genre filter, which
// wins over the status filter, mirroring the books page behavior.
type BookFilter struct {
	Search  string
	GenreID string
	Status  entities.ReadingStatus
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListBooks retrieves every book with its genre resolved, most
// recently added first.
func (r *Repository) ListBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Genre").Order("created_at DESC").Find(&books).Error
	return books, err
}

// GetBookByID retrieves a book by id with its genre resolved.
func (r *Repository) GetBookByID(id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Genre").First(&book, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook persists a new book. A provided genre id must reference an
// existing genre, otherwise database.ErrInvalidGenreReference is
// returned and nothing is written. Status defaults to QUERO_LER.
func (r *Repository) CreateBook(cmd entities.CreateBookCommand) (*entities.Book, error) {
	if cmd.GenreID != nil {
		if err := r.checkGenreExists(*cmd.GenreID); err != nil {
			return nil, err
		}
	}

	status := cmd.Status
	if status == "" {
		status = entities.DefaultReadingStatus
	}

	book := &entities.Book{
		Title:       cmd.Title,
		Author:      cmd.Author,
		GenreID:     cmd.GenreID,
		Year:        cmd.Year,
		Pages:       cmd.Pages,
		Rating:      cmd.Rating,
		Synopsis:    cmd.Synopsis,
		Cover:       cmd.Cover,
		CurrentPage: cmd.CurrentPage,
		Status:      status,
		ISBN:        cmd.ISBN,
		Notes:       cmd.Notes,
	}

	if err := r.db.Omit("Genre").Create(book).Error; err != nil {
		if database.IsForeignKeyConstraint(err) {
			return nil, database.ErrInvalidGenreReference
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return r.GetBookByID(book.ID)
}

// UpdateBook merges the supplied fields over the stored record and
// bumps UpdatedAt. Fields the command leaves nil are untouched; a
// changed genre id is re-validated before the write.
func (r *Repository) UpdateBook(id string, cmd entities.UpdateBookCommand) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		book.Title = *cmd.Title
	}
	if cmd.Author != nil {
		book.Author = *cmd.Author
	}
	if cmd.GenreID != nil {
		if *cmd.GenreID == "" {
			book.GenreID = nil
		} else {
			if err := r.checkGenreExists(*cmd.GenreID); err != nil {
				return nil, err
			}
			genreID := *cmd.GenreID
			book.GenreID = &genreID
		}
	}
	if cmd.Year != nil {
		book.Year = cmd.Year
	}
	if cmd.Pages != nil {
		book.Pages = cmd.Pages
	}
	if cmd.Rating != nil {
		book.Rating = cmd.Rating
	}
	if cmd.Synopsis != nil {
		book.Synopsis = *cmd.Synopsis
	}
	if cmd.Cover != nil {
		book.Cover = *cmd.Cover
	}
	if cmd.CurrentPage != nil {
		book.CurrentPage = cmd.CurrentPage
	}
	if cmd.Status != nil {
		book.Status = *cmd.Status
	}
	if cmd.ISBN != nil {
		book.ISBN = *cmd.ISBN
	}
	if cmd.Notes != nil {
		book.Notes = *cmd.Notes
	}

	// Save writes the whole merged record; concurrent updates to the
	// same book are last-write-wins.
	if err := r.db.Omit("Genre").Save(&book).Error; err != nil {
		if database.IsForeignKeyConstraint(err) {
			return nil, database.ErrInvalidGenreReference
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return r.GetBookByID(book.ID)
}

// DeleteBook permanently removes a book and returns the removed
// snapshot so callers can confirm what was deleted.
func (r *Repository) DeleteBook(id string) (*entities.Book, error) {
	book, err := r.GetBookByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&entities.Book{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}
	return book, nil
}

// likeEscaper neutralizes LIKE metacharacters so the query is matched
// as a literal substring. The queries below declare '\' as the escape
// character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchBooks matches the query as a case-insensitive literal
// substring of title or author. An empty query returns the full
// collection in the same order as ListBooks.
func (r *Repository) SearchBooks(query string) ([]entities.Book, error) {
	if query == "" {
		return r.ListBooks()
	}
	var books []entities.Book
	searchPattern := "%" + likeEscaper.Replace(query) + "%"
	err := r.db.Preload("Genre").
		Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(author) LIKE LOWER(?) ESCAPE '\'`, searchPattern, searchPattern).
		Order("created_at DESC").
		Find(&books).Error
	return books, err
}

// ListBooksByGenre retrieves books assigned to the given genre.
func (r *Repository) ListBooksByGenre(genreID string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Genre").
		Where("genre_id = ?", genreID).
		Order("created_at DESC").
		Find(&books).Error
	return books, err
}

// ListBooksByStatus retrieves books in the given reading status.
func (r *Repository) ListBooksByStatus(status entities.ReadingStatus) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Genre").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&books).Error
	return books, err
}

// FilterBooks applies exactly one of the filter's criteria, or none.
// Criteria are not combined; see BookFilter for the precedence.
func (r *Repository) FilterBooks(filter BookFilter) ([]entities.Book, error) {
	switch {
	case filter.Search != "":
		return r.SearchBooks(filter.Search)
	case filter.GenreID != "":
		return r.ListBooksByGenre(filter.GenreID)
	case filter.Status != "":
		return r.ListBooksByStatus(filter.Status)
	default:
		return r.ListBooks()
	}
}

func (r *Repository) checkGenreExists(genreID string) error {
	var genre entities.Genre
	err := r.db.First(&genre, "id = ?", genreID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.ErrInvalidGenreReference
	}
	return err
}
