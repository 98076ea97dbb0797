// Package httpx provides HTTP handlers and utilities for the ready-api
// storefront service.
package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/cenentury0941/ready-api/internal/domain/auth"
	"github.com/cenentury0941/ready-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Books  *service.BookService
	Notes  *service.NoteService
	Cart   *service.CartService
	Orders *service.OrderService
	Auth   *service.AuthService

	CookieDomain string
	Logger       *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	bookHandlers := &BookHandlers{Svc: services.Books}
	noteHandlers := &NoteHandlers{Svc: services.Notes}
	cartHandlers := &CartHandlers{Svc: services.Cart}
	orderHandlers := &OrderHandlers{Svc: services.Orders}

	var auth AuthServiceInterface
	if services.Auth != nil {
		auth = services.Auth
		authHandlers := &AuthHandlers{Svc: auth, CookieDomain: services.CookieDomain, Logger: services.Logger}
		registerAuthRoutes(mux, authHandlers)
	}

	registerBookRoutes(mux, bookHandlers, auth)
	registerNoteRoutes(mux, noteHandlers, auth)
	registerCartRoutes(mux, cartHandlers, auth)
	registerOrderRoutes(mux, orderHandlers, auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

// requireUser wraps a handler with authentication when auth is configured.
func requireUser(auth AuthServiceInterface, h http.HandlerFunc) http.Handler {
	if auth == nil {
		return h
	}
	return RequireAuth(auth)(h)
}

// requireAdmin wraps a handler with the admin role gate when auth is configured.
func requireAdmin(auth AuthServiceInterface, h http.HandlerFunc) http.Handler {
	if auth == nil {
		return h
	}
	return RequireRole(auth, domainauth.RoleAdmin)(h)
}

func registerBookRoutes(mux *http.ServeMux, h *BookHandlers, auth AuthServiceInterface) {
	// Shopper catalog
	mux.Handle("GET /api/books", requireUser(auth, h.List))
	mux.Handle("GET /api/books/{id}", requireUser(auth, h.GetByID))
	mux.Handle("POST /api/books/add-book", requireUser(auth, h.Create))

	// Admin inventory and approvals
	mux.Handle("GET /api/books/all", requireAdmin(auth, h.ListAll))
	mux.Handle("GET /api/books/approvals", requireAdmin(auth, h.ListApprovals))
	mux.Handle("PUT /api/books/{id}", requireAdmin(auth, h.Update))
	mux.Handle("DELETE /api/books/{id}", requireAdmin(auth, h.Delete))
}

func registerNoteRoutes(mux *http.ServeMux, h *NoteHandlers, auth AuthServiceInterface) {
	mux.Handle("GET /api/books/{id}/notes", requireUser(auth, h.List))
	mux.Handle("POST /api/books/{id}/notes", requireUser(auth, h.Create))
	mux.Handle("PUT /api/books/{id}/notes/{index}", requireUser(auth, h.Update))
	mux.Handle("DELETE /api/books/{id}/notes/{index}", requireUser(auth, h.Delete))
}

func registerCartRoutes(mux *http.ServeMux, h *CartHandlers, auth AuthServiceInterface) {
	mux.Handle("GET /api/cart", requireUser(auth, h.Get))
	mux.Handle("POST /api/cart", requireUser(auth, h.Add))
	mux.Handle("DELETE /api/cart", requireUser(auth, h.Clear))
	mux.Handle("DELETE /api/cart/{productId}", requireUser(auth, h.Remove))
}

func registerOrderRoutes(mux *http.ServeMux, h *OrderHandlers, auth AuthServiceInterface) {
	mux.Handle("POST /api/orders", requireUser(auth, h.Place))
	mux.Handle("GET /api/orders/user/{userId}", requireUser(auth, h.ListByUser))
	mux.Handle("GET /api/orders/{id}", requireUser(auth, h.GetByID))

	mux.Handle("GET /api/orders", requireAdmin(auth, h.ListAll))
	mux.Handle("PUT /api/orders/{id}/status", requireAdmin(auth, h.UpdateStatus))
}
