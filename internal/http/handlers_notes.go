package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cenentury0941/ready-api/internal/service"
)

// NoteHandlers provides HTTP handlers for inspiration notes on books.
// Notes are addressed by their position in the book's note list.
type NoteHandlers struct {
	Svc *service.NoteService
}

// List handles GET /api/books/{id}/notes.
func (h *NoteHandlers) List(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	if bookID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")})
		return
	}

	notes, err := h.Svc.List(r.Context(), bookID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, notes)
}

type noteRequest struct {
	Text string `json:"text"`
}

// Create handles POST /api/books/{id}/notes. The contributor is the
// session user; one note per contributor per book.
func (h *NoteHandlers) Create(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	session := GetSessionFromContext(r.Context())
	if bookID == "" || session == nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")})
		return
	}

	var req noteRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	note, err := h.Svc.Add(r.Context(), bookID, session.DisplayName, session.UserID, req.Text)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, note)
}

// Update handles PUT /api/books/{id}/notes/{index}. Only the note's own
// contributor may edit it.
func (h *NoteHandlers) Update(w http.ResponseWriter, r *http.Request) {
	bookID, index, ok := notePathParams(w, r)
	if !ok {
		return
	}
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	var req noteRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	note, err := h.Svc.Update(r.Context(), bookID, index, session.DisplayName, req.Text)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, note)
}

// Delete handles DELETE /api/books/{id}/notes/{index}. Only the note's
// own contributor may remove it.
func (h *NoteHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	bookID, index, ok := notePathParams(w, r)
	if !ok {
		return
	}
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	if err := h.Svc.Delete(r.Context(), bookID, index, session.DisplayName); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// notePathParams extracts and validates the {id} and {index} path values.
func notePathParams(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	bookID := r.PathValue("id")
	if bookID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")})
		return "", 0, false
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("note index must be an integer")})
		return "", 0, false
	}

	return bookID, index, true
}
