// Package devseed populates a development database with sample catalog
// rows so the storefront has something to show on first boot.
package devseed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cenentury0941/ready-api/internal/core"
	"github.com/cenentury0941/ready-api/internal/domain/model"
)

type seedBook struct {
	Title     string
	Author    string
	About     string
	Qty       int
	Thumbnail string
}

var sampleCatalog = []seedBook{
	{
		Title:     "The Pragmatic Programmer",
		Author:    "David Thomas, Andrew Hunt",
		About:     "Your journey to mastery. Practical advice on writing better software, from personal responsibility to career development.",
		Qty:       12,
		Thumbnail: "/images/pragmatic-programmer.jpg",
	},
	{
		Title:     "Designing Data-Intensive Applications",
		Author:    "Martin Kleppmann",
		About:     "The big ideas behind reliable, scalable, and maintainable systems.",
		Qty:       8,
		Thumbnail: "/images/ddia.jpg",
	},
	{
		Title:     "A Philosophy of Software Design",
		Author:    "John Ousterhout",
		About:     "How to decompose complex software systems into modules that can be implemented relatively independently.",
		Qty:       10,
		Thumbnail: "/images/philosophy-software-design.jpg",
	},
	{
		Title:     "The Goal",
		Author:    "Eliyahu M. Goldratt",
		About:     "A process of ongoing improvement, told as a novel about a plant manager racing to save his factory.",
		Qty:       5,
		Thumbnail: "/images/the-goal.jpg",
	},
	{
		Title:     "Thinking, Fast and Slow",
		Author:    "Daniel Kahneman",
		About:     "The two systems that drive the way we think, and how they shape our judgments and decisions.",
		Qty:       7,
		Thumbnail: "/images/thinking-fast-slow.jpg",
	},
}

// Run inserts the sample catalog, pre-approved, when the catalog is empty.
// A non-empty catalog means a previous run (or real data) is present and
// seeding is skipped entirely.
func Run(ctx context.Context, repo core.BookRepository, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	existing, err := repo.List(ctx, false, 1, 0)
	if err != nil {
		return fmt.Errorf("check existing catalog: %w", err)
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "catalog already populated, skipping seed")
		return nil
	}

	approved := true
	for _, s := range sampleCatalog {
		book, createErr := repo.Create(ctx, &model.CreateBookRequest{
			Title:     s.Title,
			Author:    s.Author,
			About:     s.About,
			Qty:       s.Qty,
			Thumbnail: s.Thumbnail,
			AddedBy:   "Seed",
		})
		if createErr != nil {
			return fmt.Errorf("seed book %q: %w", s.Title, createErr)
		}
		// Submissions start unapproved; seeded books go straight to the shelf.
		if _, updateErr := repo.Update(ctx, book.ID, model.UpdateBookRequest{IsApproved: &approved}); updateErr != nil {
			return fmt.Errorf("approve seeded book %q: %w", s.Title, updateErr)
		}
	}

	logger.InfoContext(ctx, "seeded sample catalog", "books", len(sampleCatalog))
	return nil
}
