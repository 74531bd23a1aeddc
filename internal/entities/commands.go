package entities

// Commands are the typed, already-validated inputs the repositories
// accept. They are produced exclusively by the forms package, so the
// storage layer never sees raw request shapes.

// CreateBookCommand carries the fields of a new book. Optional fields
// follow the same conventions as Book: nil pointer / empty string
// means "not provided". An empty Status means "use the default".
type CreateBookCommand struct {
	Title       string
	Author      string
	GenreID     *string
	Year        *int
	Pages       *int
	Rating      *int
	Synopsis    string
	Cover       string
	CurrentPage *int
	Status      ReadingStatus
	ISBN        string
	Notes       string
}

// UpdateBookCommand is a partial update: nil fields are left untouched
// on the stored record. GenreID is special-cased so the association can
// be cleared: nil leaves it alone, a pointer to the empty string sets
// it to null, anything else re-points the book at that genre.
type UpdateBookCommand struct {
	Title       *string
	Author      *string
	GenreID     *string
	Year        *int
	Pages       *int
	Rating      *int
	Synopsis    *string
	Cover       *string
	CurrentPage *int
	Status      *ReadingStatus
	ISBN        *string
	Notes       *string
}
