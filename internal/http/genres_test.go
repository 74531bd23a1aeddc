package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/database"
	"bookshelf/internal/entities"
)

type stubGenreStore struct {
	genres    []entities.Genre
	createErr error
	deleteErr error
	created   string
}

func (s *stubGenreStore) ListGenres() ([]entities.Genre, error) {
	return s.genres, nil
}

func (s *stubGenreStore) GetGenreByID(id string) (*entities.Genre, error) {
	for i := range s.genres {
		if s.genres[i].ID == id {
			return &s.genres[i], nil
		}
	}
	return nil, database.ErrGenreNotFound
}

func (s *stubGenreStore) CreateGenre(name string) (*entities.Genre, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = name
	return &entities.Genre{ID: "genre-1", Name: name}, nil
}

func (s *stubGenreStore) RenameGenre(id, newName string) (*entities.Genre, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &entities.Genre{ID: id, Name: newName}, nil
}

func (s *stubGenreStore) DeleteGenre(id string) error {
	return s.deleteErr
}

func setupGenresRouter(store GenreStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := NewGenresController(store)
	router.GET("/api/genres", controller.GetAllGenres)
	router.GET("/api/genres/:id", controller.GetGenre)
	router.POST("/api/genres", controller.CreateGenre)
	router.PUT("/api/genres/:id", controller.RenameGenre)
	router.DELETE("/api/genres/:id", controller.DeleteGenre)

	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGetAllGenres(t *testing.T) {
	store := &stubGenreStore{genres: []entities.Genre{
		{ID: "g-1", Name: "Fantasia"},
		{ID: "g-2", Name: "Romance"},
	}}
	router := setupGenresRouter(store)

	recorder := performJSON(t, router, "GET", "/api/genres", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	var response struct {
		Genres []entities.Genre `json:"genres"`
		Count  int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	assert.Equal(t, "Fantasia", response.Genres[0].Name)
}

func TestGetGenre_NotFound(t *testing.T) {
	router := setupGenresRouter(&stubGenreStore{})

	recorder := performJSON(t, router, "GET", "/api/genres/missing", "")

	require.Equal(t, http.StatusNotFound, recorder.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "genre not found", response.Error)
}

func TestCreateGenre(t *testing.T) {
	store := &stubGenreStore{}
	router := setupGenresRouter(store)

	recorder := performJSON(t, router, "POST", "/api/genres", `{"name": "Cordel"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "Cordel", store.created)

	var genre entities.Genre
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &genre))
	assert.Equal(t, "Cordel", genre.Name)
	assert.NotEmpty(t, genre.ID)
}

func TestCreateGenre_TrimsName(t *testing.T) {
	store := &stubGenreStore{}
	router := setupGenresRouter(store)

	recorder := performJSON(t, router, "POST", "/api/genres", `{"name": "  Crônica "}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "Crônica", store.created)
}

func TestCreateGenre_EmptyName(t *testing.T) {
	router := setupGenresRouter(&stubGenreStore{})

	recorder := performJSON(t, router, "POST", "/api/genres", `{"name": "   "}`)

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	var response struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "validation failed", response.Error)
	assert.Contains(t, response.Details, "name")
}

func TestCreateGenre_DuplicateName(t *testing.T) {
	store := &stubGenreStore{createErr: database.ErrDuplicateGenreName}
	router := setupGenresRouter(store)

	recorder := performJSON(t, router, "POST", "/api/genres", `{"name": "Romance"}`)

	require.Equal(t, http.StatusConflict, recorder.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, database.ErrDuplicateGenreName.Error(), response.Error)
}

func TestCreateGenre_InvalidBody(t *testing.T) {
	router := setupGenresRouter(&stubGenreStore{})

	recorder := performJSON(t, router, "POST", "/api/genres", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRenameGenre(t *testing.T) {
	router := setupGenresRouter(&stubGenreStore{})

	recorder := performJSON(t, router, "PUT", "/api/genres/g-1", `{"name": "Suspense"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	var genre entities.Genre
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &genre))
	assert.Equal(t, "g-1", genre.ID)
	assert.Equal(t, "Suspense", genre.Name)
}

func TestRenameGenre_Collision(t *testing.T) {
	store := &stubGenreStore{createErr: database.ErrDuplicateGenreName}
	router := setupGenresRouter(store)

	recorder := performJSON(t, router, "PUT", "/api/genres/g-1", `{"name": "Romance"}`)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestDeleteGenre(t *testing.T) {
	router := setupGenresRouter(&stubGenreStore{})

	recorder := performJSON(t, router, "DELETE", "/api/genres/g-1", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	var response SuccessResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "genre deleted", response.Message)
}

func TestDeleteGenre_InUse(t *testing.T) {
	store := &stubGenreStore{deleteErr: database.ErrGenreInUse}
	router := setupGenresRouter(store)

	recorder := performJSON(t, router, "DELETE", "/api/genres/g-1", "")

	require.Equal(t, http.StatusConflict, recorder.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, database.ErrGenreInUse.Error(), response.Error)
}

func TestDeleteGenre_NotFound(t *testing.T) {
	store := &stubGenreStore{deleteErr: database.ErrGenreNotFound}
	router := setupGenresRouter(store)

	recorder := performJSON(t, router, "DELETE", "/api/genres/missing", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
