package api

import (
	"database/sql"
	"io/fs"
	"net/http"
	"time"

	"github.com/quest-campus/lostfound/internal/auth"
	"github.com/quest-campus/lostfound/internal/sqlguard"
)

// NewRouter creates the full HTTP surface: the JSON API, the health probe,
// and the embedded static UI for everything else.
func NewRouter(db *sql.DB, jwtSecret string, admin *auth.Admin, staticFS fs.FS) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Admin: admin, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret)

	// Public: browsing and submissions (student side).
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}/photo", itemsHandler.GetPhoto)

	// Auth.
	mux.HandleFunc("POST /api/items/auth/login", authHandler.Login)
	mux.Handle("GET /api/items/auth/verify", authMW(http.HandlerFunc(authHandler.Verify)))

	// Admin triage.
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Replace)))
	mux.Handle("PATCH /api/items/{id}/status", authMW(http.HandlerFunc(itemsHandler.UpdateStatus)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("PUT /api/items/{id}/photo", authMW(http.HandlerFunc(itemsHandler.UploadPhoto)))

	// The injection-pattern list the browser mirrors for its advisory
	// pre-submit check. Same embedded file the server validates with.
	mux.HandleFunc("GET /api/validation/patterns", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(sqlguard.PatternsJSON())
	})

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Unknown API paths get a JSON 404; everything else is the static UI.
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusNotFound, "Route not found.")
	})
	mux.Handle("/", StaticHandler(staticFS))

	return mux
}
