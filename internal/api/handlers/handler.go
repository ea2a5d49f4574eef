package handlers

import (
	"net/http"
	"time"

	"github.com/rohits-web03/resumehub/internal/api/middleware"
	"github.com/rohits-web03/resumehub/internal/api/services"
	"github.com/rohits-web03/resumehub/internal/repositories"
	"github.com/rohits-web03/resumehub/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Deps are the collaborators a Handler needs.
type Deps struct {
	Auth     *services.AuthService
	Profiles *services.ProfileService
	Files    repositories.FileStore
	// Google is nil when Google sign-in is disabled.
	Google         *oauth2.Config
	FrontendURL    string
	Production     bool
	UploadMaxBytes int64
	Log            *zap.Logger
}

type Handler struct {
	Deps
}

func New(deps Deps) *Handler {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.UploadMaxBytes <= 0 {
		deps.UploadMaxBytes = 5 << 20
	}
	return &Handler{Deps: deps}
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session services.Session) {
	sameSite := http.SameSiteLaxMode
	if h.Production {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		Secure:   h.Production,
		HttpOnly: true,
		SameSite: sameSite,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   h.Production,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// GET /
// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Server is working"
// @Router / [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.Log.Info("health check", zap.String("remote", r.RemoteAddr))
	utils.TextResponse(w, http.StatusOK, "Server is working")
}
