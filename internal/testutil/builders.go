package testutil

import (
	"github.com/cenentury0941/ready-api/internal/domain/auth"
	"github.com/cenentury0941/ready-api/internal/domain/model"
)

// BookRequestBuilder provides a fluent interface for building CreateBookRequest objects for testing.
type BookRequestBuilder struct {
	req *model.CreateBookRequest
}

// NewBookRequest creates a new BookRequestBuilder with sensible defaults.
func NewBookRequest() *BookRequestBuilder {
	return &BookRequestBuilder{
		req: &model.CreateBookRequest{
			Title:     "The Pragmatic Programmer",
			Author:    "Andrew Hunt",
			About:     "A guide to pragmatic software craftsmanship.",
			Qty:       5,
			Thumbnail: "https://images.example.com/pragprog.jpg",
			AddedBy:   "Test Admin",
		},
	}
}

// WithTitle sets the book title.
func (b *BookRequestBuilder) WithTitle(title string) *BookRequestBuilder {
	b.req.Title = title
	return b
}

// WithAuthor sets the book author.
func (b *BookRequestBuilder) WithAuthor(author string) *BookRequestBuilder {
	b.req.Author = author
	return b
}

// WithAbout sets the book description.
func (b *BookRequestBuilder) WithAbout(about string) *BookRequestBuilder {
	b.req.About = about
	return b
}

// WithQty sets the inventory count.
func (b *BookRequestBuilder) WithQty(qty int) *BookRequestBuilder {
	b.req.Qty = qty
	return b
}

// WithAddedBy sets the submitter display name.
func (b *BookRequestBuilder) WithAddedBy(name string) *BookRequestBuilder {
	b.req.AddedBy = name
	return b
}

// Build returns the constructed CreateBookRequest.
func (b *BookRequestBuilder) Build() *model.CreateBookRequest {
	return b.req
}

// OrderRequestBuilder provides a fluent interface for building CreateOrderRequest objects for testing.
type OrderRequestBuilder struct {
	req *model.CreateOrderRequest
}

// NewOrderRequest creates a new OrderRequestBuilder with sensible defaults.
func NewOrderRequest() *OrderRequestBuilder {
	return &OrderRequestBuilder{
		req: &model.CreateOrderRequest{
			UserID:             "user-1",
			FullName:           "Test Reader",
			Location:           "Chennai",
			ConfirmationNumber: "ORD-TEST0001",
			Items: model.OrderItemList{
				{ProductID: "book-1", Title: "The Pragmatic Programmer", Author: "Andrew Hunt"},
			},
		},
	}
}

// WithUserID sets the ordering user.
func (b *OrderRequestBuilder) WithUserID(userID string) *OrderRequestBuilder {
	b.req.UserID = userID
	return b
}

// WithConfirmationNumber sets the confirmation number.
func (b *OrderRequestBuilder) WithConfirmationNumber(n string) *OrderRequestBuilder {
	b.req.ConfirmationNumber = n
	return b
}

// WithItems replaces the item list.
func (b *OrderRequestBuilder) WithItems(items ...model.OrderItem) *OrderRequestBuilder {
	b.req.Items = items
	return b
}

// WithLocation sets the delivery location.
func (b *OrderRequestBuilder) WithLocation(location string) *OrderRequestBuilder {
	b.req.Location = location
	return b
}

// Build returns the constructed CreateOrderRequest.
func (b *OrderRequestBuilder) Build() *model.CreateOrderRequest {
	return b.req
}

// StringPtr returns a pointer to the given string (test convenience).
func StringPtr(s string) *string { return &s }

// BoolPtr returns a pointer to the given bool (test convenience).
func BoolPtr(b bool) *bool { return &b }

// IntPtr returns a pointer to the given int (test convenience).
func IntPtr(i int) *int { return &i }

// NewUserSession returns a non-admin session for handler and service tests.
func NewUserSession() *auth.Session {
	return &auth.Session{
		ID:          "sess-user",
		UserID:      "user-1",
		DisplayName: "Test Reader",
		Email:       "reader@example.com",
		Role:        auth.RoleUser,
	}
}

// NewAdminSession returns an admin session for handler and service tests.
func NewAdminSession() *auth.Session {
	return &auth.Session{
		ID:          "sess-admin",
		UserID:      "admin-1",
		DisplayName: "Test Admin",
		Email:       "admin@example.com",
		Role:        auth.RoleAdmin,
	}
}
