package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sakif/movielist/internal/apperror"
	"github.com/sakif/movielist/internal/auth"
	"github.com/sakif/movielist/internal/service"
)

// MovieHandler manages CRUD operations for movie records.
type MovieHandler struct {
	movies *service.MovieService
	logger *slog.Logger
}

func NewMovieHandler(movies *service.MovieService, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{movies: movies, logger: logger}
}

type movieRequest struct {
	Title       string     `json:"title"        validate:"required,max=200"`
	Description string     `json:"description"`
	ReleaseDate *time.Time `json:"release_date"`
}

type deletedResponse struct {
	Message string `json:"message"`
}

// HandleCreate stores a new movie owned by the authenticated user.
//
// HTTP: POST /movies/
// Body: {"title": ..., "description": ..., "release_date": RFC3339 optional}
func (h *MovieHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("invalid authentication credentials"))
		return
	}

	var req movieRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	movie, err := h.movies.Create(r.Context(), user, req.Title, req.Description, req.ReleaseDate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

// HandleList returns a page of movies.
//
// HTTP: GET /movies/?skip=0&limit=10
func (h *MovieHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	movies, err := h.movies.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, movies)
}

// HandleGetByID returns a single movie.
//
// HTTP: GET /movies/{id}
func (h *MovieHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	movie, err := h.movies.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

// HandleUpdate overwrites the title and description of a movie owned by
// the caller.
//
// HTTP: PUT /movies/{id}
func (h *MovieHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("invalid authentication credentials"))
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req movieRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	movie, err := h.movies.Update(r.Context(), user, id, req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

// HandleDelete removes a movie owned by the caller.
//
// HTTP: DELETE /movies/{id}
func (h *MovieHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("invalid authentication credentials"))
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.movies.Delete(r.Context(), user, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deletedResponse{Message: "Movie deleted successfully"})
}
