package http

import (
	"bookshelf/internal/database/books"
	"bookshelf/internal/entities"
	"bookshelf/internal/stats"
)

// This file consolidates the store interface definitions used by the
// HTTP controllers. Each controller depends only on the operations it
// actually dispatches; the repositories under internal/database are
// the production implementations.

// BookStore defines the catalog operations over books.
type BookStore interface {
	ListBooks() ([]entities.Book, error)
	GetBookByID(id string) (*entities.Book, error)
	CreateBook(cmd entities.CreateBookCommand) (*entities.Book, error)
	UpdateBook(id string, cmd entities.UpdateBookCommand) (*entities.Book, error)
	DeleteBook(id string) (*entities.Book, error)
	FilterBooks(filter books.BookFilter) ([]entities.Book, error)
}

// GenreStore defines the catalog operations over the genre taxonomy.
type GenreStore interface {
	ListGenres() ([]entities.Genre, error)
	GetGenreByID(id string) (*entities.Genre, error)
	CreateGenre(name string) (*entities.Genre, error)
	RenameGenre(id, newName string) (*entities.Genre, error)
	DeleteGenre(id string) error
}

// StatsProvider computes the dashboard aggregate on demand.
type StatsProvider interface {
	ComputeStats() (*stats.Stats, error)
}
