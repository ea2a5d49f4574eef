package middleware

import (
	"context"
	"net/http"

	"github.com/rohits-web03/resumehub/internal/apperr"
	"github.com/rohits-web03/resumehub/internal/models"
	"github.com/rohits-web03/resumehub/internal/utils"
	"go.uber.org/zap"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "token"

type contextKey string

const userKey contextKey = "user"

// SessionResolver turns a session token into the user it belongs to.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (models.User, error)
}

// RequireSession rejects requests without a valid session cookie and puts
// the resolved user into the request context.
func RequireSession(resolver SessionResolver, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				utils.TextResponse(w, http.StatusUnauthorized, apperr.ErrUnauthenticated.Message)
				return
			}

			user, err := resolver.Resolve(r.Context(), cookie.Value)
			if err != nil {
				switch apperr.CodeOf(err) {
				case apperr.CodeInvalidSession, apperr.CodeUserNotFound:
					utils.TextResponse(w, http.StatusBadRequest, "ERR: "+err.Error())
				default:
					log.Error("session lookup failed", zap.Error(err))
					utils.TextResponse(w, http.StatusInternalServerError, "ERR: "+err.Error())
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the user stored by RequireSession.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}
