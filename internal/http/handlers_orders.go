package httpx

import (
	"errors"
	"net/http"

	"github.com/cenentury0941/ready-api/internal/service"
)

const (
	defaultOrderPageSize = 50
	maxOrderPageSize     = 200
)

// OrderHandlers provides HTTP handlers for order placement and admin
// order management.
type OrderHandlers struct {
	Svc *service.OrderService
}

// Place handles POST /api/orders: create an order from the session
// user's cart. The response carries the confirmation number.
func (h *OrderHandlers) Place(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	order, err := h.Svc.Place(r.Context(), session)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, order)
}

// ListAll handles GET /api/orders: every order, newest first (admin).
func (h *OrderHandlers) ListAll(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultOrderPageSize, maxOrderPageSize)

	orders, err := h.Svc.ListAll(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, orders)
}

// ListByUser handles GET /api/orders/user/{userId}: the caller's own
// orders. Non-admin callers may only read their own history.
func (h *OrderHandlers) ListByUser(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("user id is required")})
		return
	}
	if userID != session.UserID && !session.IsAdmin() {
		WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "insufficient_permissions", Err: errors.New("you can only view your own orders")})
		return
	}

	orders, err := h.Svc.ListForUser(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id}: a single order, restricted to its
// owner unless the session is an administrator.
func (h *OrderHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")})
		return
	}

	order, err := h.Svc.GetForUser(r.Context(), session, id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/orders/{id}/status (admin). The status is
// validated against the closed enum before any write.
func (h *OrderHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")})
		return
	}

	var req updateStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	order, err := h.Svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, order)
}
