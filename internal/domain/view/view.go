// Package view decides which top-level views are reachable for a given
// authentication state and role. It is a pure function of
// (authenticated, admin, requested path); HTTP middleware enforces its
// decisions, it performs no I/O itself.
package view

import "strings"

// Well-known view paths.
const (
	PathLogin             = "/login"
	PathDashboard         = "/dashboard"
	PathCart              = "/cart"
	PathOrders            = "/orders"
	PathOrderConfirmation = "/order-confirmation"
	PathBooks             = "/books"
	PathAdminOrders       = "/admin/orders"
	PathAdminInventory    = "/admin/inventory"
	PathAdminApprovals    = "/admin/approvals"
)

// Decision is the outcome of resolving a requested path.
type Decision struct {
	// Allowed reports whether the requested path may be served as-is.
	Allowed bool
	// RedirectTo is the destination to send the client to when not allowed.
	RedirectTo string
}

// userPaths are reachable only by authenticated non-admin identities.
var userPaths = map[string]struct{}{
	PathDashboard:         {},
	PathCart:              {},
	PathOrders:            {},
	PathOrderConfirmation: {},
}

// adminPaths are reachable only by authenticated admin identities.
// The dashboard is shared between both route sets.
var adminPaths = map[string]struct{}{
	PathAdminOrders:    {},
	PathAdminInventory: {},
	PathAdminApprovals: {},
	PathDashboard:      {},
}

// Landing returns the identity's default landing view.
func Landing(authenticated, admin bool) string {
	switch {
	case !authenticated:
		return PathLogin
	case admin:
		return PathAdminOrders
	default:
		return PathDashboard
	}
}

// Resolve maps (authenticated, admin, path) to an allowed destination.
// Unauthenticated identities may only reach the login view; authenticated
// identities are confined to their role's route set, and unknown paths
// redirect to the role's landing view.
func Resolve(authenticated, admin bool, path string) Decision {
	path = normalize(path)

	if !authenticated {
		if path == PathLogin {
			return Decision{Allowed: true}
		}
		return Decision{RedirectTo: PathLogin}
	}

	// Signed-in users have no business on the login view.
	if path == PathLogin || path == "/" {
		return Decision{RedirectTo: Landing(true, admin)}
	}

	if admin {
		if _, ok := adminPaths[path]; ok {
			return Decision{Allowed: true}
		}
		return Decision{RedirectTo: Landing(true, true)}
	}

	if _, ok := userPaths[path]; ok {
		return Decision{Allowed: true}
	}
	// Book detail views are user-only: /books and /books/{id}.
	if path == PathBooks || strings.HasPrefix(path, PathBooks+"/") {
		return Decision{Allowed: true}
	}
	return Decision{RedirectTo: Landing(true, false)}
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
