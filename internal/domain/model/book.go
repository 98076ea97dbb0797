//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxBookTitleLen  = 255
	maxBookAuthorLen = 255
	maxBookAboutLen  = 4000
)

// Book is a catalog entry. Notes is the ordered list of inspiration notes
// contributed by readers, stored inline with the book (JSONB column).
type Book struct {
	ID         string    `json:"id"         db:"id"`
	Title      string    `json:"title"      db:"title"`
	Author     string    `json:"author"     db:"author"`
	Thumbnail  string    `json:"thumbnail"  db:"thumbnail"`
	About      string    `json:"about"      db:"about"`
	Qty        int       `json:"qty"        db:"qty"`
	Notes      NoteList  `json:"notes"      db:"notes"`
	AddedBy    string    `json:"addedBy"    db:"added_by"`
	IsApproved bool      `json:"isApproved" db:"is_approved"`
	CreatedAt  time.Time `json:"createdAt"  db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt"  db:"updated_at"`
}

// Note is a reader's inspiration note on a book. Contributor is the display
// name of the identity that submitted it; ImageURL is their profile photo
// URL, possibly empty.
type Note struct {
	Text        string `json:"text"`
	Contributor string `json:"contributor"`
	ImageURL    string `json:"imageUrl"`
}

// NoteList is the JSONB representation of a book's notes.
type NoteList []Note

// HasContributor reports whether a note by the given display name exists.
// Ownership and uniqueness are keyed on display name, matching the API
// contract exposed to clients.
func (n NoteList) HasContributor(displayName string) bool {
	for _, note := range n {
		if note.Contributor == displayName {
			return true
		}
	}
	return false
}

// MarshalForDB renders the list as JSON for storage, with nil treated as empty.
func (n NoteList) MarshalForDB() ([]byte, error) {
	if n == nil {
		n = NoteList{}
	}
	return json.Marshal(n)
}

// CreateBookRequest contains fields to submit a new book. Submitted books
// start unapproved and only become visible in the catalog once an
// administrator approves them.
type CreateBookRequest struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	About     string `json:"about"`
	Qty       int    `json:"qty"`
	Thumbnail string `json:"thumbnail"`
	AddedBy   string `json:"addedBy"`
}

func (r *CreateBookRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxBookTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	author := strings.TrimSpace(r.Author)
	if author == "" {
		return errors.New("author is required and cannot be empty")
	}
	if utf8.RuneCountInString(author) > maxBookAuthorLen {
		return errors.New("author cannot exceed 255 characters")
	}
	if utf8.RuneCountInString(r.About) > maxBookAboutLen {
		return errors.New("about cannot exceed 4000 characters")
	}
	if r.Qty < 0 {
		return errors.New("qty cannot be negative")
	}
	return nil
}

// UpdateBookRequest supports admin updates: inventory count and approval.
type UpdateBookRequest struct {
	Qty        *int  `json:"qty,omitempty"`
	IsApproved *bool `json:"isApproved,omitempty"`
}

func (r *UpdateBookRequest) HasUpdates() bool {
	return r.Qty != nil || r.IsApproved != nil
}

func (r *UpdateBookRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Qty != nil && *r.Qty < 0 {
		return errors.New("qty cannot be negative")
	}
	return nil
}
