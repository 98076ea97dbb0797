// Package mocks provides mock implementations for testing the storefront service.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockBookRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(book, nil)
package mocks

// Generate mock for BookRepository interface from internal/core package.
// This creates MockBookRepository with methods for all BookRepository interface methods:
// Create, GetByID, List, ListPendingApprovals, Update, Delete, MutateNotes
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=book_repository_mock.go github.com/cenentury0941/ready-api/internal/core BookRepository

// Generate mock for OrderRepository interface from internal/core package.
// This creates MockOrderRepository with methods for all OrderRepository interface methods:
// Create, GetByID, List, ListByUser, UpdateStatus
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=order_repository_mock.go github.com/cenentury0941/ready-api/internal/core OrderRepository

// Generate mock for CartStore interface from internal/core package.
// This creates MockCartStore with methods for all CartStore interface methods:
// Get, Save, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cart_store_mock.go github.com/cenentury0941/ready-api/internal/core CartStore

// Generate mock for ProfileDirectory interface from internal/ports package.
// This creates MockProfileDirectory with methods for all ProfileDirectory interface methods:
// Location, PhotoURL
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=profile_directory_mock.go github.com/cenentury0941/ready-api/internal/ports ProfileDirectory
