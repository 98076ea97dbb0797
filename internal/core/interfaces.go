package core

import (
	"context"

	"github.com/cenentury0941/ready-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// BookRepository defines the interface for catalog data operations.
type BookRepository interface {
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	GetByID(ctx context.Context, id string) (*model.Book, error)
	// List returns approved books only when approvedOnly is true.
	List(ctx context.Context, approvedOnly bool, limit, offset int) ([]*model.Book, error)
	ListPendingApprovals(ctx context.Context) ([]*model.Book, error)
	Update(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error)
	Delete(ctx context.Context, id string) (bool, error)
	// MutateNotes applies fn to the book's current note list and persists
	// the result, holding the row lock across the read and the write so
	// concurrent mutations serialize against the same list. An error from
	// fn aborts the write and is returned unchanged.
	MutateNotes(ctx context.Context, id string, fn func(model.NoteList) (model.NoteList, error)) (*model.Book, error)
}

// OrderRepository defines the interface for order data operations.
type OrderRepository interface {
	Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, limit, offset int) ([]*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// CartStore persists per-user cart contents across sessions. Get on a
// missing cart returns an empty slice, not an error.
type CartStore interface {
	Get(ctx context.Context, userID string) ([]string, error)
	Save(ctx context.Context, userID string, items []string) error
	Delete(ctx context.Context, userID string) error
}
