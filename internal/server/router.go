package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/peopleops/attrition/auth"
	"github.com/peopleops/attrition/gate"
	"github.com/peopleops/attrition/httpx"
	"github.com/peopleops/attrition/internal/config"
	"github.com/peopleops/attrition/internal/handlers"
	"github.com/peopleops/attrition/internal/services"
	"gorm.io/gorm"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(conn *gorm.DB, scorer handlers.Scorer, cfg config.Config) http.Handler {
	creds := services.NewCredentialService(conn)
	resets := services.NewResetService(conn)
	ledger := services.NewLedgerService(conn, cfg.HighRiskThreshold)

	// Configure a user verifier so RequireAuth can ensure the user still exists.
	auth.SetUserVerifier(func(_ context.Context, username string) bool {
		exists, err := creds.Exists(username)
		return err == nil && exists
	})

	roleGate := gate.New(func(r *http.Request) (gate.Role, bool) {
		p, ok := auth.PrincipalFromContext(r.Context())
		return gate.Role(p.Role), ok
	})

	mux := http.NewServeMux()

	// --- Health endpoints ---
	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := conn.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public auth endpoints (signup, login, logout, reset request)
	authHandler := handlers.NewAuthHandler(creds, resets)
	authHandler.Register(mux)

	// Prediction + reporting, any authenticated role
	ph := handlers.NewPredictHandler(ledger, scorer)
	rh := handlers.NewReportsHandler(ledger)
	mux.Handle("POST /predict", auth.RequireAuth(http.HandlerFunc(ph.Predict)))
	mux.Handle("GET /predictions", auth.RequireAuth(http.HandlerFunc(rh.Predictions)))
	mux.Handle("GET /dashboard", auth.RequireAuth(http.HandlerFunc(rh.Dashboard)))
	mux.Handle("GET /insights", auth.RequireAuth(http.HandlerFunc(rh.Insights)))
	mux.Handle("GET /alerts", auth.RequireAuth(http.HandlerFunc(rh.Alerts)))

	// Admin surface: user management and reset resolution
	ah := handlers.NewAdminHandler(creds, resets)
	admin := func(h http.HandlerFunc) http.Handler {
		return auth.RequireAuth(roleGate.Require(gate.RoleAdmin, h))
	}
	mux.Handle("GET /admin/users", admin(ah.ListUsers))
	mux.Handle("POST /admin/users", admin(ah.CreateUser))
	mux.Handle("GET /admin/reset-requests", admin(ah.ListResetRequests))
	mux.Handle("POST /admin/reset-requests/resolve", admin(ah.ResolveReset))

	// Root placeholder
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, werr := w.Write([]byte("HR Attrition Analytics API")); werr != nil {
			_ = werr
		}
	})
	//revive:enable:unused-parameter

	return auth.Middleware(withRecover(withLogging(mux)))
}

// Simple middleware logging & recovery kept private to this package to avoid duplication.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
