package handler

import (
	"io/fs"
	"net/http"

	"github.com/arvindnr/geetika/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, content *service.ContentService, limiter *service.TokenBucket) {
	authHandler := NewAuthHandler(auth)
	generateHandler := NewGenerateHandler(content, limiter)
	userHandler := NewUserHandler(content)

	mux.HandleFunc("GET /healthz", handleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)

	mux.HandleFunc("POST /api/generate", generateHandler.HandleGenerate)

	mux.HandleFunc("GET /api/user/credits/{userId}", userHandler.HandleCredits)
	mux.HandleFunc("GET /api/user/history/{userId}", userHandler.HandleHistory)
}

// handleHealthz is the liveness probe for load balancers and smoke checks.
func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterStatic serves the embedded browser client at the root. Used in
// production mode; in development the client runs on its own dev server.
func RegisterStatic(mux *http.ServeMux, assets fs.FS) {
	mux.Handle("GET /", http.FileServerFS(assets))
}
