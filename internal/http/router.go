package http

import (
	"github.com/gin-gonic/gin"

	"bookshelf/internal/database"
)

// RouterConfig carries the router's dependencies so tests can swap any
// store for a double.
type RouterConfig struct {
	Database *database.Database
	Books    BookStore
	Genres   GenreStore
	Stats    StatsProvider
	Version  string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	booksController := NewBooksController(cfg.Books)
	genresController := NewGenresController(cfg.Genres)
	dashboardController := NewDashboardController(cfg.Stats)

	api := router.Group("/api")
	{
		api.GET("/books", booksController.GetAllBooks)
		api.POST("/books", booksController.CreateBook)
		api.GET("/books/:id", booksController.GetBook)
		api.PUT("/books/:id", booksController.UpdateBook)
		api.PATCH("/books/:id", booksController.UpdateBook)
		api.DELETE("/books/:id", booksController.DeleteBook)

		api.GET("/genres", genresController.GetAllGenres)
		api.POST("/genres", genresController.CreateGenre)
		api.GET("/genres/:id", genresController.GetGenre)
		api.PUT("/genres/:id", genresController.RenameGenre)
		api.DELETE("/genres/:id", genresController.DeleteGenre)

		api.GET("/dashboard/stats", dashboardController.GetStats)
	}

	return router
}
