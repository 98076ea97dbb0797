//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// OrderStatus is the closed set of order states. Status transitions are
// driven by admin action only; orders are never deleted.
type OrderStatus string

const (
	OrderStatusReceived   OrderStatus = "Received"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus validates a status string against the closed enum.
// Matching is case-insensitive; the canonical casing is returned.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "received":
		return OrderStatusReceived, nil
	case "processing":
		return OrderStatusProcessing, nil
	case "shipped":
		return OrderStatusShipped, nil
	case "delivered":
		return OrderStatusDelivered, nil
	case "cancelled":
		return OrderStatusCancelled, nil
	default:
		return "", fmt.Errorf(
			"invalid order status %q (valid: Received, Processing, Shipped, Delivered, Cancelled)", s)
	}
}

// OrderItem is a snapshot of a catalog entry at order time, so the order
// remains renderable even if the book later changes or disappears.
type OrderItem struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Thumbnail string `json:"thumbnail"`
}

// OrderItemList is the JSONB representation of an order's items.
type OrderItemList []OrderItem

// MarshalForDB renders the list as JSON for storage, with nil treated as empty.
func (l OrderItemList) MarshalForDB() ([]byte, error) {
	if l == nil {
		l = OrderItemList{}
	}
	return json.Marshal(l)
}

// Order is created server-side on placement and only referenced (read,
// status-updated) thereafter.
type Order struct {
	ID                 string        `json:"id"                 db:"id"`
	ConfirmationNumber string        `json:"confirmationNumber" db:"confirmation_number"`
	Items              OrderItemList `json:"items"              db:"items"`
	Status             OrderStatus   `json:"status"             db:"status"`
	UserID             string        `json:"userId"             db:"user_id"`
	FullName           string        `json:"fullName"           db:"full_name"`
	Location           string        `json:"location"           db:"location"`
	CreatedAt          time.Time     `json:"createdAt"          db:"created_at"`
	UpdatedAt          time.Time     `json:"updatedAt"          db:"updated_at"`
}

// CreateOrderRequest carries the order-placement payload:
// {userId, fullName, location, items}.
type CreateOrderRequest struct {
	UserID             string
	FullName           string
	Location           string
	Items              OrderItemList
	ConfirmationNumber string
}

func (r *CreateOrderRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("userId is required")
	}
	if strings.TrimSpace(r.FullName) == "" {
		return errors.New("fullName is required")
	}
	if strings.TrimSpace(r.Location) == "" {
		return errors.New("location is required")
	}
	if len(r.Items) == 0 {
		return errors.New("order must contain at least one item")
	}
	if strings.TrimSpace(r.ConfirmationNumber) == "" {
		return errors.New("confirmation number is required")
	}
	return nil
}
