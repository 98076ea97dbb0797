package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/cenentury0941/ready-api/internal/core"
	"github.com/cenentury0941/ready-api/internal/domain/model"
	apperrors "github.com/cenentury0941/ready-api/internal/errors"
	"github.com/cenentury0941/ready-api/internal/ports"
)

const maxNoteTextLen = 1000

// NoteServiceOptions groups dependencies for NoteService.
type NoteServiceOptions struct {
	Repo    core.BookRepository    // Required: notes live on the book row
	Profile ports.ProfileDirectory // Optional: contributor photo lookup
	Logger  *slog.Logger           // Optional: structured logger
}

// NoteService manages inspiration notes on books. Each contributor, keyed
// by display name, holds at most one note per book; notes are addressed by
// their position in the book's note list.
type NoteService struct {
	repo    core.BookRepository
	profile ports.ProfileDirectory
	logger  *slog.Logger
}

// NewNoteService constructs a new NoteService.
func NewNoteService(opts NoteServiceOptions) *NoteService {
	if opts.Repo == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("BookRepository is required")
	}

	return &NoteService{
		repo:    opts.Repo,
		profile: opts.Profile,
		logger:  opts.Logger,
	}
}

// List returns the notes on a book, in contribution order.
func (s *NoteService) List(ctx context.Context, bookID string) (model.NoteList, error) {
	book, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if book.Notes == nil {
		return model.NoteList{}, nil
	}
	return book.Notes, nil
}

// Add appends a note by the named contributor. A contributor who already
// has a note on the book gets a conflict; they edit or delete instead. The
// duplicate check runs inside the repository's row lock so two in-flight
// adds cannot both pass it.
func (s *NoteService) Add(ctx context.Context, bookID, displayName, userID, text string) (*model.Note, error) {
	text, err := validateNoteText(text)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(displayName) == "" {
		return nil, errors.New("contributor display name is required")
	}

	// Photo lookup is best-effort and stays outside the row lock; a note
	// without a photo is fine.
	photoURL := ""
	if s.profile != nil && userID != "" {
		if photo, photoErr := s.profile.PhotoURL(ctx, userID); photoErr == nil {
			photoURL = photo
		}
	}

	note := model.Note{Text: text, Contributor: displayName, ImageURL: photoURL}
	if _, err := s.repo.MutateNotes(ctx, bookID, func(notes model.NoteList) (model.NoteList, error) {
		if notes.HasContributor(displayName) {
			return nil, apperrors.Conflict("You have already added a note to this book.")
		}
		return append(notes, note), nil
	}); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "note added", "book_id", bookID, "contributor", displayName)
	}
	return &note, nil
}

// Update rewrites the text of the note at the given index. Only the note's
// own contributor may edit it; photo and contributor are untouched.
func (s *NoteService) Update(ctx context.Context, bookID string, index int, displayName, text string) (*model.Note, error) {
	text, err := validateNoteText(text)
	if err != nil {
		return nil, err
	}

	var updated model.Note
	if _, err := s.repo.MutateNotes(ctx, bookID, func(notes model.NoteList) (model.NoteList, error) {
		if err := checkNoteAt(notes, index, displayName, "edit"); err != nil {
			return nil, err
		}
		notes[index].Text = text
		updated = notes[index]
		return notes, nil
	}); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the note at the given index. Only the note's own
// contributor may remove it.
func (s *NoteService) Delete(ctx context.Context, bookID string, index int, displayName string) error {
	if _, err := s.repo.MutateNotes(ctx, bookID, func(notes model.NoteList) (model.NoteList, error) {
		if err := checkNoteAt(notes, index, displayName, "delete"); err != nil {
			return nil, err
		}
		return append(notes[:index], notes[index+1:]...), nil
	}); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "note deleted", "book_id", bookID, "contributor", displayName, "index", index)
	}
	return nil
}

// checkNoteAt validates that index addresses an existing note owned by the
// named contributor. It runs against the list read under the row lock.
func checkNoteAt(notes model.NoteList, index int, displayName, verb string) error {
	if index < 0 || index >= len(notes) {
		return apperrors.NotFoundf("No note at position %d", index)
	}
	if notes[index].Contributor != displayName {
		return apperrors.Forbiddenf("You can only %s your own note.", verb)
	}
	return nil
}

func validateNoteText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.ValidationField("text", "Note text cannot be empty.")
	}
	if utf8.RuneCountInString(text) > maxNoteTextLen {
		return "", apperrors.ValidationField("text", "Note text cannot exceed 1000 characters.")
	}
	return text, nil
}
