package gate

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func staticResolver(role Role, ok bool) Resolver {
	return func(_ *http.Request) (Role, bool) { return role, ok }
}

func TestRoleOrdering(t *testing.T) {
	if !RoleAdmin.AtLeast(RoleHRManager) {
		t.Fatalf("admin should satisfy hr_manager")
	}
	if !RoleAdmin.AtLeast(RoleAdmin) {
		t.Fatalf("admin should satisfy admin")
	}
	if RoleEmployee.AtLeast(RoleAdmin) {
		t.Fatalf("employee must not satisfy admin")
	}
	if Role("superuser").AtLeast(RoleEmployee) {
		t.Fatalf("unknown role must not satisfy anything")
	}
}

func TestCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if err := New(staticResolver(RoleAdmin, true)).Check(req, RoleAdmin); err != nil {
		t.Fatalf("admin check failed: %v", err)
	}
	if err := New(staticResolver(RoleEmployee, true)).Check(req, RoleAdmin); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden got %v", err)
	}
	if err := New(staticResolver("", false)).Check(req, RoleEmployee); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden for anonymous got %v", err)
	}
	if err := New(staticResolver("root", true)).Check(req, RoleEmployee); err != ErrUnknownRole {
		t.Fatalf("expected ErrUnknownRole got %v", err)
	}
}

func TestRequireMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	New(staticResolver(RoleAdmin, true)).Require(RoleAdmin, okHandler).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through got %d", w.Code)
	}

	w = httptest.NewRecorder()
	New(staticResolver(RoleHRManager, true)).Require(RoleAdmin, okHandler).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", w.Code)
	}
}
