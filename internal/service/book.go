package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cenentury0941/ready-api/internal/core"
	"github.com/cenentury0941/ready-api/internal/domain/model"
	apperrors "github.com/cenentury0941/ready-api/internal/errors"
)

// BookServiceOptions groups dependencies for BookService.
type BookServiceOptions struct {
	Repo   core.BookRepository // Required: catalog repository
	Logger *slog.Logger        // Optional: structured logger
}

// BookService provides business logic for catalog, inventory, and approval
// operations.
type BookService struct {
	repo   core.BookRepository
	logger *slog.Logger
}

// NewBookService constructs a new BookService.
func NewBookService(opts BookServiceOptions) *BookService {
	if opts.Repo == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("BookRepository is required")
	}

	return &BookService{
		repo:   opts.Repo,
		logger: opts.Logger,
	}
}

// Submit adds a new book to the catalog. Submissions always enter
// unapproved and stay invisible to shoppers until approved.
func (s *BookService) Submit(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	if req == nil {
		return nil, errors.New("create book request is required")
	}

	book, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "book submitted", "id", book.ID, "title", book.Title, "added_by", book.AddedBy)
	}

	return book, nil
}

// Catalog lists approved books for shoppers.
func (s *BookService) Catalog(ctx context.Context, limit, offset int) ([]*model.Book, error) {
	books, err := s.repo.List(ctx, true, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return books, nil
}

// ListAll lists every book regardless of approval (admin inventory view).
func (s *BookService) ListAll(ctx context.Context, limit, offset int) ([]*model.Book, error) {
	books, err := s.repo.List(ctx, false, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// PendingApprovals lists unapproved submissions awaiting admin review.
func (s *BookService) PendingApprovals(ctx context.Context) ([]*model.Book, error) {
	books, err := s.repo.ListPendingApprovals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending approvals: %w", err)
	}
	return books, nil
}

// GetByID retrieves a single book by ID.
func (s *BookService) GetByID(ctx context.Context, id string) (*model.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book by id: %w", err)
	}
	return book, nil
}

// Update applies inventory or approval changes to a book (admin only).
func (s *BookService) Update(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error) {
	book, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "book updated",
			"id", book.ID, "qty", book.Qty, "is_approved", book.IsApproved)
	}

	return book, nil
}

// Reject removes an unapproved submission from the queue.
func (s *BookService) Reject(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if !deleted {
		return apperrors.NotFoundf("Book %s not found", id)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "book rejected", "id", id)
	}
	return nil
}
