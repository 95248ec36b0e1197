package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/movielist/internal/apperror"
	"github.com/sakif/movielist/internal/auth"
	"github.com/sakif/movielist/internal/service"
)

// CommentHandler manages comments and their reply chains.
type CommentHandler struct {
	comments *service.CommentService
	logger   *slog.Logger
}

func NewCommentHandler(comments *service.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, logger: logger}
}

type commentRequest struct {
	Content         string `json:"content" validate:"required"`
	ParentCommentID *int64 `json:"parent_comment_id"`
}

// HandleCreate stores a comment by the authenticated user. A reply carries
// parent_comment_id pointing at an existing comment on the same movie.
//
// HTTP: POST /comments/{movie_id}
// Body: {"content": ..., "parent_comment_id": optional}
//
// The route registers the path parameter as {id}; for create and list it
// names the movie, for delete the comment.
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	var req commentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	comment, err := h.comments.Create(r.Context(), user, movieID, req.Content, req.ParentCommentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

// HandleList returns a flat page of comments for one movie; clients
// assemble reply trees from parent_comment_id.
//
// HTTP: GET /comments/{movie_id}?skip=0&limit=10
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	skip, limit := pagination(r)

	comments, err := h.comments.ListByMovie(r.Context(), movieID, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

// HandleDelete removes a comment owned by the caller.
//
// HTTP: DELETE /comments/{id}
func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.comments.Delete(r.Context(), user, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deletedResponse{Message: "Comment deleted successfully"})
}
