package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Session handling for the HR analytics app. A session is a signed cookie
// carrying the principal (username + role); nothing is persisted server-side,
// so a session lives until logout or until the cookie expires.

type ctxKey string

const (
	sessionCookieName = "session"
	principalCtxKey   = ctxKey("principal")
)

// Principal is the authenticated identity bound to a request.
type Principal struct {
	Username string
	Role     string
}

// UserVerifier is an optional callback to validate that a session's user still exists.
// Set it during app bootstrap via SetUserVerifier. If nil, no extra verification is performed.
type UserVerifier func(ctx context.Context, username string) bool

var verifier UserVerifier

// SetUserVerifier configures the global verifier used by RequireAuth.
func SetUserVerifier(v UserVerifier) { verifier = v }

// Secret returns SESSION_SECRET or default dev value.
func Secret() string {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return s
	}
	return "devsessionsecret"
}

func sign(username, role string) string {
	mac := hmac.New(sha256.New, []byte(Secret()))
	mac.Write([]byte(username + "\n" + role))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CreateSession sets a signed cookie with the principal.
func CreateSession(w http.ResponseWriter, p Principal) {
	value := base64.RawURLEncoding.EncodeToString([]byte(p.Username)) + "." + p.Role + "." + sign(p.Username, p.Role)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(14 * 24 * time.Hour),
	})
}

// ClearSession deletes the session cookie.
func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// ParseSession validates the cookie signature and returns the principal.
func ParseSession(r *http.Request) (Principal, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return Principal{}, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 3 {
		return Principal{}, false
	}
	rawUser, role, sig := parts[0], parts[1], parts[2]
	userBytes, err := base64.RawURLEncoding.DecodeString(rawUser)
	if err != nil {
		return Principal{}, false
	}
	username := string(userBytes)
	if !hmac.Equal([]byte(sig), []byte(sign(username, role))) {
		return Principal{}, false
	}
	if username == "" || role == "" {
		return Principal{}, false
	}
	return Principal{Username: username, Role: role}, true
}

// WithPrincipal stores the principal in context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// PrincipalFromContext extracts the principal.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	v := ctx.Value(principalCtxKey)
	if v == nil {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// Middleware attaches the principal to the request context if a valid session is present.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := ParseSession(r); ok {
			r = r.WithContext(WithPrincipal(r.Context(), p))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth returns 401 JSON when no authenticated principal is bound to the request.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"unauthorized"}`)
			return
		}
		if verifier != nil && !verifier(r.Context(), p.Username) {
			// Session refers to a non-existing user: clear and treat as unauthorized.
			ClearSession(w)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"unauthorized"}`)
			return
		}
		next.ServeHTTP(w, r)
	})
}
