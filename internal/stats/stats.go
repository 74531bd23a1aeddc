// Package stats derives dashboard statistics from the book collection.
//
// The numbers are recomputed from the current collection on every call;
// there is no cache to invalidate, the dataset is small and the
// dashboard must never show stale counts.
package stats

import (
	"bookshelf/internal/entities"
)

// BookLister provides read access to the full book collection.
type BookLister interface {
	ListBooks() ([]entities.Book, error)
}

// Stats is the aggregate the dashboard renders.
type Stats struct {
	TotalBooks     int `json:"total_books"`
	ReadingBooks   int `json:"reading_books"`
	FinishedBooks  int `json:"finished_books"`
	TotalPagesRead int `json:"total_pages_read"`
}

// Aggregator computes Stats from whatever BookLister it is given.
type Aggregator struct {
	books BookLister
}

// NewAggregator creates a new stats aggregator.
func NewAggregator(books BookLister) *Aggregator {
	return &Aggregator{books: books}
}

// ComputeStats reads the full collection and derives the dashboard
// numbers. Finished books contribute their page count, books in
// progress contribute the current page; every other status (and any
// missing page field) contributes zero.
func (a *Aggregator) ComputeStats() (*Stats, error) {
	books, err := a.books.ListBooks()
	if err != nil {
		return nil, err
	}

	s := &Stats{TotalBooks: len(books)}
	for _, book := range books {
		switch book.Status {
		case entities.StatusLendo:
			s.ReadingBooks++
			if book.CurrentPage != nil {
				s.TotalPagesRead += *book.CurrentPage
			}
		case entities.StatusLido:
			s.FinishedBooks++
			if book.Pages != nil {
				s.TotalPagesRead += *book.Pages
			}
		}
	}
	return s, nil
}
