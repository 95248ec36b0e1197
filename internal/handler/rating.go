package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/movielist/internal/apperror"
	"github.com/sakif/movielist/internal/auth"
	"github.com/sakif/movielist/internal/service"
)

// RatingHandler manages ratings nested under movies.
type RatingHandler struct {
	ratings *service.RatingService
	logger  *slog.Logger
}

func NewRatingHandler(ratings *service.RatingService, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{ratings: ratings, logger: logger}
}

// ratingRequest uses a pointer so that a present-but-zero rating is
// distinguishable from a missing field; 0 is a legal score.
type ratingRequest struct {
	Rating *float64 `json:"rating" validate:"required"`
}

// HandleCreate stores a rating by the authenticated user.
//
// HTTP: POST /movies/{id}/ratings/
// Body: {"rating": 4.5}
func (h *RatingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("invalid authentication credentials"))
		return
	}

	movieID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req ratingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rating, err := h.ratings.Create(r.Context(), user, movieID, *req.Rating)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rating)
}

// HandleList returns a page of ratings for one movie.
//
// HTTP: GET /movies/{id}/ratings/?skip=0&limit=10
func (h *RatingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	skip, limit := pagination(r)

	ratings, err := h.ratings.ListByMovie(r.Context(), movieID, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ratings)
}
