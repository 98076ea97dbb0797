package httpx

import (
	"errors"
	"net/http"

	"github.com/cenentury0941/ready-api/internal/service"
)

// CartHandlers provides HTTP handlers for the session user's cart.
// The cart holds at most one book; adding replaces the current contents.
type CartHandlers struct {
	Svc *service.CartService
}

// Get handles GET /api/cart: cart contents resolved against the catalog.
func (h *CartHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	items, err := h.Svc.Items(r.Context(), session.UserID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
}

// Add handles POST /api/cart: put a book in the cart, replacing whatever
// was there.
func (h *CartHandlers) Add(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	var req addToCartRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation", Err: errors.New("productId is required"), Field: "productId"})
		return
	}

	if err := h.Svc.Add(r.Context(), session.UserID, req.ProductID); err != nil {
		WriteAppError(w, err)
		return
	}

	items, err := h.Svc.Items(r.Context(), session.UserID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Remove handles DELETE /api/cart/{productId}. Removing an absent book is
// a no-op, not an error.
func (h *CartHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	productID := r.PathValue("productId")
	if productID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("product id is required")})
		return
	}

	if err := h.Svc.Remove(r.Context(), session.UserID, productID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// Clear handles DELETE /api/cart.
func (h *CartHandlers) Clear(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	if err := h.Svc.Clear(r.Context(), session.UserID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
