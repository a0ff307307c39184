package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func sessionCookie(t *testing.T, p Principal) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	CreateSession(w, p)
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie got %d", len(cookies))
	}
	return cookies[0]
}

func TestSessionRoundTrip(t *testing.T) {
	c := sessionCookie(t, Principal{Username: "alice", Role: "hr_manager"})
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	p, ok := ParseSession(r)
	if !ok {
		t.Fatalf("expected valid session")
	}
	if p.Username != "alice" || p.Role != "hr_manager" {
		t.Fatalf("unexpected principal %+v", p)
	}
}

func TestParseSessionRejectsTamperedRole(t *testing.T) {
	c := sessionCookie(t, Principal{Username: "bob", Role: "employee"})
	// swap the role segment without re-signing; value layout is b64(user).role.sig
	segs := strings.Split(c.Value, ".")
	if len(segs) != 3 {
		t.Fatalf("unexpected cookie layout %q", c.Value)
	}
	tampered := *c
	tampered.Value = segs[0] + ".admin." + segs[2]
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&tampered)
	if _, ok := ParseSession(r); ok {
		t.Fatalf("expected tampered session to be rejected")
	}
}

func TestRequireAuthWithoutSession(t *testing.T) {
	h := Middleware(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run")
	})))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}

func TestRequireAuthVerifierClearsStaleSession(t *testing.T) {
	SetUserVerifier(func(_ context.Context, _ string) bool { return false })
	t.Cleanup(func() { SetUserVerifier(nil) })
	c := sessionCookie(t, Principal{Username: "ghost", Role: "employee"})
	h := Middleware(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run")
	})))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}
