package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cenentury0941/ready-api/internal/core"
	"github.com/cenentury0941/ready-api/internal/domain/model"
)

// CartServiceOptions groups dependencies for CartService.
type CartServiceOptions struct {
	Store  core.CartStore      // Required: cart persistence
	Books  core.BookRepository // Required: catalog lookups for cart rendering
	Logger *slog.Logger        // Optional: structured logger
}

// CartService holds at most one book per user. Adding a second book
// silently replaces the first; the newest intent wins without ceremony.
type CartService struct {
	store  core.CartStore
	books  core.BookRepository
	logger *slog.Logger
}

// NewCartService constructs a new CartService.
func NewCartService(opts CartServiceOptions) *CartService {
	if opts.Store == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("CartStore is required")
	}
	if opts.Books == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("BookRepository is required")
	}

	return &CartService{
		store:  opts.Store,
		books:  opts.Books,
		logger: opts.Logger,
	}
}

// Add puts a book in the user's cart, replacing whatever was there.
func (s *CartService) Add(ctx context.Context, userID, productID string) error {
	if userID == "" {
		return errors.New("user ID is required")
	}
	if productID == "" {
		return errors.New("product ID is required")
	}

	// The book must exist; shoppers only reach entries through the catalog.
	if _, err := s.books.GetByID(ctx, productID); err != nil {
		return fmt.Errorf("look up book: %w", err)
	}

	if err := s.store.Save(ctx, userID, []string{productID}); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "cart updated", "user_id", userID, "product_id", productID)
	}
	return nil
}

// Remove takes a specific book out of the user's cart. Removing a book
// that is not present is a no-op.
func (s *CartService) Remove(ctx context.Context, userID, productID string) error {
	if userID == "" {
		return errors.New("user ID is required")
	}

	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}

	kept := items[:0]
	for _, id := range items {
		if id != productID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	if err := s.store.Save(ctx, userID, kept); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Clear empties the user's cart.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.New("user ID is required")
	}
	if err := s.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// ItemIDs returns the raw product IDs in the user's cart.
func (s *CartService) ItemIDs(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return items, nil
}

// Items resolves the cart against the catalog. IDs whose book has since
// disappeared are dropped from the result rather than failing the view.
func (s *CartService) Items(ctx context.Context, userID string) ([]*model.Book, error) {
	ids, err := s.ItemIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	books := make([]*model.Book, 0, len(ids))
	for _, id := range ids {
		book, lookupErr := s.books.GetByID(ctx, id)
		if lookupErr != nil {
			if s.logger != nil {
				s.logger.WarnContext(ctx, "cart references missing book", "user_id", userID, "product_id", id)
			}
			continue
		}
		books = append(books, book)
	}
	return books, nil
}
