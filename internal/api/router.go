package api

import (
	"net/http"

	_ "github.com/rohits-web03/resumehub/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohits-web03/resumehub/internal/api/handlers"
	"github.com/rohits-web03/resumehub/internal/api/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// SetupRouter wires every route of the service onto a single mux.
func SetupRouter(h *handlers.Handler, corsOptions cors.Options, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(corsOptions)
	protect := middleware.RequireSession(h.Auth, log)

	// ---------- PUBLIC ROUTES ----------
	mux.HandleFunc("GET /{$}", h.Health)
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /docs/", httpSwagger.WrapHandler)

	mux.HandleFunc("POST /signup", h.SignUp)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("GET /auth/google/login", h.GoogleLogin)
	mux.HandleFunc("GET /auth/google/callback", h.GoogleCallback)
	mux.HandleFunc("POST /upload-resume", h.UploadResume)

	// ---------- PROTECTED ROUTES ----------
	mux.Handle("POST /logout", protect(http.HandlerFunc(h.Logout)))
	mux.Handle("GET /user/view", protect(http.HandlerFunc(h.ViewUser)))
	mux.Handle("GET /profiles", protect(http.HandlerFunc(h.ListProfiles)))
	mux.Handle("POST /addProfile", protect(http.HandlerFunc(h.AddProfile)))

	log.Info("Router initialized")
	handler := c.Handler(mux)
	handler = middleware.Logger(log)(handler)
	return handler
}
