package httpx

import (
	"errors"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/cenentury0941/ready-api/internal/domain/model"
	"github.com/cenentury0941/ready-api/internal/service"
)

const (
	defaultBookPageSize = 50
	maxBookPageSize     = 200

	// maxAddBookFormSize bounds the multipart submission. Thumbnails are
	// recorded as names only, so the form stays small.
	maxAddBookFormSize = 4 << 20
)

// BookHandlers provides HTTP handlers for catalog, inventory, and approval
// operations.
type BookHandlers struct {
	Svc *service.BookService
}

// List handles GET /api/books: the approved catalog, shopper view.
func (h *BookHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultBookPageSize, maxBookPageSize)

	books, err := h.Svc.Catalog(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, books)
}

// ListAll handles GET /api/books/all: every book including unapproved
// submissions (admin inventory view).
func (h *BookHandlers) ListAll(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultBookPageSize, maxBookPageSize)

	books, err := h.Svc.ListAll(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, books)
}

// ListApprovals handles GET /api/books/approvals: submissions awaiting
// admin review.
func (h *BookHandlers) ListApprovals(w http.ResponseWriter, r *http.Request) {
	books, err := h.Svc.PendingApprovals(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, books)
}

// GetByID handles GET /api/books/{id}.
func (h *BookHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")})
		return
	}

	book, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, book)
}

// Create handles POST /api/books/add-book. The client submits a multipart
// form (title, author, about, qty, thumbnail). Only the thumbnail's file
// name is recorded; the submission enters the approval queue unapproved.
func (h *BookHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	if err := r.ParseMultipartForm(maxAddBookFormSize); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
		return
	}

	qty, err := strconv.Atoi(strings.TrimSpace(r.FormValue("qty")))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: errors.New("qty must be an integer"), Field: "qty"})
		return
	}

	req := &model.CreateBookRequest{
		Title:     r.FormValue("title"),
		Author:    r.FormValue("author"),
		About:     r.FormValue("about"),
		Qty:       qty,
		Thumbnail: thumbnailPath(r),
		AddedBy:   session.DisplayName,
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation", Err: err})
		return
	}

	book, err := h.Svc.Submit(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, book)
}

// Update handles PUT /api/books/{id}: qty and/or approval changes (admin).
func (h *BookHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")})
		return
	}

	var req model.UpdateBookRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation", Err: err})
		return
	}

	book, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, book)
}

// Delete handles DELETE /api/books/{id}: reject a submission (admin).
func (h *BookHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("book id is required")})
		return
	}

	if err := h.Svc.Reject(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// thumbnailPath derives the stored thumbnail reference from the upload.
// The file content itself is discarded; only the sanitized name is kept,
// served later by whatever hosts the image assets.
func thumbnailPath(r *http.Request) string {
	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["thumbnail"]; len(files) > 0 {
			name := path.Base(files[0].Filename)
			if name != "" && name != "." && name != "/" {
				return "/images/" + name
			}
		}
	}
	// Fall back to a plain form value (already a URL or path)
	return strings.TrimSpace(r.FormValue("thumbnail"))
}
