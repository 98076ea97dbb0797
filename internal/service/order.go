package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cenentury0941/ready-api/internal/core"
	domainauth "github.com/cenentury0941/ready-api/internal/domain/auth"
	"github.com/cenentury0941/ready-api/internal/domain/model"
	apperrors "github.com/cenentury0941/ready-api/internal/errors"
	"github.com/cenentury0941/ready-api/internal/ports"
)

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Orders  core.OrderRepository   // Required: order persistence
	Books   core.BookRepository    // Required: catalog snapshots for order items
	Cart    core.CartStore         // Required: cart source and post-order clearing
	Profile ports.ProfileDirectory // Required: delivery location lookup
	Logger  *slog.Logger           // Optional: structured logger
}

// OrderService orchestrates order placement and admin status management.
type OrderService struct {
	orders  core.OrderRepository
	books   core.BookRepository
	cart    core.CartStore
	profile ports.ProfileDirectory
	logger  *slog.Logger
}

// NewOrderService constructs a new OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	if opts.Orders == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("OrderRepository is required")
	}
	if opts.Books == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("BookRepository is required")
	}
	if opts.Cart == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("CartStore is required")
	}
	if opts.Profile == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("ProfileDirectory is required")
	}

	return &OrderService{
		orders:  opts.Orders,
		books:   opts.Books,
		cart:    opts.Cart,
		profile: opts.Profile,
		logger:  opts.Logger,
	}
}

// Place creates an order from the session user's cart.
//
// The delivery location is resolved first: when the profile directory is
// unconfigured the caller gets a configuration error before the cart or
// the order store is touched, so nothing is consumed by a doomed attempt.
// Cart entries whose book has disappeared from the catalog are skipped.
// The cart is cleared only after the order is committed; a failed
// placement leaves the cart intact for retry.
func (s *OrderService) Place(ctx context.Context, sess *domainauth.Session) (*model.Order, error) {
	if sess == nil || sess.UserID == "" {
		return nil, errors.New("session is required")
	}

	location, err := s.profile.Location(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve delivery location: %w", err)
	}

	ids, err := s.cart.Get(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if len(ids) == 0 {
		return nil, apperrors.Validation("Your cart is empty.")
	}

	items := make(model.OrderItemList, 0, len(ids))
	for _, id := range ids {
		book, lookupErr := s.books.GetByID(ctx, id)
		if lookupErr != nil {
			if !apperrors.IsNotFound(lookupErr) {
				return nil, fmt.Errorf("look up book %s: %w", id, lookupErr)
			}
			if s.logger != nil {
				s.logger.WarnContext(ctx, "skipping vanished cart item", "user_id", sess.UserID, "product_id", id)
			}
			continue
		}
		items = append(items, model.OrderItem{
			ProductID: book.ID,
			Title:     book.Title,
			Author:    book.Author,
			Thumbnail: book.Thumbnail,
		})
	}
	if len(items) == 0 {
		return nil, apperrors.Validation("None of the items in your cart are available anymore.")
	}

	order, err := s.orders.Create(ctx, &model.CreateOrderRequest{
		UserID:             sess.UserID,
		FullName:           sess.DisplayName,
		Location:           location,
		Items:              items,
		ConfirmationNumber: generateConfirmationNumber(),
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// Clearing is best-effort; the order stands either way.
	if clearErr := s.cart.Delete(ctx, sess.UserID); clearErr != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to clear cart after order",
			"user_id", sess.UserID, "order_id", order.ID, "err", clearErr)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "order placed",
			"order_id", order.ID, "confirmation", order.ConfirmationNumber,
			"user_id", sess.UserID, "items", len(order.Items))
	}
	return order, nil
}

// GetForUser retrieves an order, restricted to its owner unless the
// session is an administrator.
func (s *OrderService) GetForUser(ctx context.Context, sess *domainauth.Session, orderID string) (*model.Order, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.UserID != sess.UserID && !sess.IsAdmin() {
		// Hide the order's existence from other users.
		return nil, apperrors.NotFound("Order not found")
	}
	return order, nil
}

// ListForUser retrieves the session user's own orders, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]*model.Order, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ListAll retrieves all orders with pagination (admin view).
func (s *OrderService) ListAll(ctx context.Context, limit, offset int) ([]*model.Order, error) {
	orders, err := s.orders.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order to a new state (admin only). The status
// string is validated against the closed enum before any write.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	parsed, err := model.ParseOrderStatus(status)
	if err != nil {
		return nil, apperrors.ValidationField("status", err.Error())
	}

	order, err := s.orders.UpdateStatus(ctx, orderID, parsed)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "order status updated", "order_id", order.ID, "status", order.Status)
	}
	return order, nil
}

// generateConfirmationNumber creates a short, human-readable confirmation
// number. Uniqueness is enforced by the orders table.
func generateConfirmationNumber() string {
	id := uuid.New().String()
	return "ORD-" + strings.ToUpper(id[:8])
}
