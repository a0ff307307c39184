// Package gate provides role-based authorization for HTTP handlers.
// The Gate resolves the caller's role from the request and enforces a
// minimum role per route, so role checks live in one place instead of
// being scattered through handlers. This package has no dependencies on
// domain models and can be reused across different web applications.
package gate

import (
	"errors"
	"net/http"
)

// Role is an access-level tag ordered from least to most privileged.
type Role string

const (
	RoleEmployee  Role = "employee"
	RoleHRManager Role = "hr_manager"
	RoleAdmin     Role = "admin"
)

var rank = map[Role]int{
	RoleEmployee:  0,
	RoleHRManager: 1,
	RoleAdmin:     2,
}

// Sentinel errors returned by Gate.Check.
var (
	ErrForbidden   = errors.New("forbidden")
	ErrUnknownRole = errors.New("unknown role")
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

// AtLeast reports whether r grants at least the privileges of min.
// Unknown roles never satisfy any requirement.
func (r Role) AtLeast(min Role) bool {
	rr, ok := rank[r]
	if !ok {
		return false
	}
	mr, ok := rank[min]
	if !ok {
		return false
	}
	return rr >= mr
}

// Resolver extracts the caller's role from a request.
// The second return value is false for anonymous requests.
type Resolver func(r *http.Request) (Role, bool)

// Gate is the central authorization checkpoint.
type Gate struct {
	resolve Resolver
}

// New creates a Gate with the given role resolver.
func New(resolve Resolver) *Gate {
	return &Gate{resolve: resolve}
}

// Check returns nil when the request's role satisfies min,
// ErrForbidden when it does not, and ErrUnknownRole when the
// resolved role is not a defined role.
func (g *Gate) Check(r *http.Request, min Role) error {
	role, ok := g.resolve(r)
	if !ok {
		return ErrForbidden
	}
	if !role.Valid() {
		return ErrUnknownRole
	}
	if !role.AtLeast(min) {
		return ErrForbidden
	}
	return nil
}

// Require wraps a handler, rejecting requests below min with 403 JSON.
// Authentication (401) is expected to be enforced upstream.
func (g *Gate) Require(min Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := g.Check(r, min); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			if _, werr := w.Write([]byte(`{"error":"forbidden"}`)); werr != nil {
				_ = werr
			}
			return
		}
		next.ServeHTTP(w, r)
	})
}
