package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/forms"
)

type GenresController struct {
	store GenreStore
}

func NewGenresController(store GenreStore) *GenresController {
	return &GenresController{store: store}
}

// GetAllGenres returns the taxonomy ordered by name.
// GET /api/genres
func (gc *GenresController) GetAllGenres(c *gin.Context) {
	genres, err := gc.store.ListGenres()
	if err != nil {
		respondInternalError(c, err, "list genres")
		return
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres, "count": len(genres)})
}

// GetGenre returns a single genre.
// GET /api/genres/:id
func (gc *GenresController) GetGenre(c *gin.Context) {
	genre, err := gc.store.GetGenreByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "get genre")
		return
	}
	c.JSON(http.StatusOK, genre)
}

// CreateGenre adds a genre to the taxonomy.
// POST /api/genres
func (gc *GenresController) CreateGenre(c *gin.Context) {
	form, ok := bindFieldMap(c)
	if !ok {
		return
	}

	name, errs := forms.ParseGenreName(form)
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	genre, err := gc.store.CreateGenre(name)
	if err != nil {
		respondStoreError(c, err, "create genre")
		return
	}
	respondCreated(c, genre)
}

// RenameGenre renames a genre in place.
// PUT /api/genres/:id
func (gc *GenresController) RenameGenre(c *gin.Context) {
	form, ok := bindFieldMap(c)
	if !ok {
		return
	}

	name, errs := forms.ParseGenreName(form)
	if errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	genre, err := gc.store.RenameGenre(c.Param("id"), name)
	if err != nil {
		respondStoreError(c, err, "rename genre")
		return
	}
	c.JSON(http.StatusOK, genre)
}

// DeleteGenre removes a genre; it fails with a conflict while books
// still reference it.
// DELETE /api/genres/:id
func (gc *GenresController) DeleteGenre(c *gin.Context) {
	if err := gc.store.DeleteGenre(c.Param("id")); err != nil {
		respondStoreError(c, err, "delete genre")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "genre deleted"})
}
