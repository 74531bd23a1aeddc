package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/database/books"
	"bookshelf/internal/entities"
	"bookshelf/internal/forms"
)

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// GetAllBooks returns the collection, optionally filtered by exactly
// one of q (title/author search), genre_id or status.
// GET /api/books
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !entities.ReadingStatus(status).Valid() {
		respondBadRequest(c, "invalid reading status")
		return
	}

	filter := books.BookFilter{
		Search:  c.Query("q"),
		GenreID: c.Query("genre_id"),
		Status:  entities.ReadingStatus(status),
	}

	result, err := bc.store.FilterBooks(filter)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": result, "count": len(result)})
}

// GetBook returns a single book with its genre resolved.
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	book, err := bc.store.GetBookByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook validates the submitted fields and persists a new book.
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	form, ok := bindFieldMap(c)
	if !ok {
		return
	}

	cmd, errs := forms.ParseCreateBook(form)
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	book, err := bc.store.CreateBook(*cmd)
	if err != nil {
		respondStoreError(c, err, "create book")
		return
	}
	respondCreated(c, book)
}

// UpdateBook merges the submitted fields over the stored record.
// PUT /api/books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	form, ok := bindFieldMap(c)
	if !ok {
		return
	}

	cmd, errs := forms.ParseUpdateBook(form)
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	book, err := bc.store.UpdateBook(c.Param("id"), *cmd)
	if err != nil {
		respondStoreError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook removes a book and echoes the removed snapshot.
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	book, err := bc.store.DeleteBook(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "delete book")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "book deleted", Data: book})
}
