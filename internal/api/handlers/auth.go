package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rohits-web03/resumehub/internal/api/middleware"
	"github.com/rohits-web03/resumehub/internal/api/services"
	"github.com/rohits-web03/resumehub/internal/apperr"
	"github.com/rohits-web03/resumehub/internal/utils"
	"github.com/rohits-web03/resumehub/internal/validation"
	"go.uber.org/zap"
)

// POST /signup
// SignUp godoc
// @Summary Register a new user
// @Description Creates the user, sets the session cookie and returns the stored record.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body validation.SignUpInput true "New user"
// @Success 200 {object} utils.Payload{data=models.User}
// @Failure 400 {string} string "Signup failed: <reason>"
// @Router /signup [post]
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var input validation.SignUpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.TextResponse(w, http.StatusBadRequest, "Signup failed: Invalid input")
		return
	}

	user, session, err := h.Auth.SignUp(r.Context(), input)
	if err != nil {
		h.logInternal("signup failed", err)
		utils.TextResponse(w, http.StatusBadRequest, "Signup failed: "+err.Error())
		return
	}

	h.setSessionCookie(w, session)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{Success: true, Data: user})
}

// POST /login
// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body validation.LoginInput true "Credentials"
// @Success 200 {object} utils.Payload{data=models.User}
// @Failure 400 {string} string "Login failed: <reason>"
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input validation.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.TextResponse(w, http.StatusBadRequest, "Login failed: Invalid input")
		return
	}

	user, session, err := h.Auth.Login(r.Context(), input)
	if err != nil {
		h.logInternal("login failed", err)
		utils.TextResponse(w, http.StatusBadRequest, "Login failed: "+err.Error())
		return
	}

	h.setSessionCookie(w, session)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{Success: true, Data: user})
}

// POST /logout
// Logout godoc
// @Summary Clear the session cookie
// @Tags Auth
// @Produce plain
// @Success 200 {string} string "Logged out successfully : <email>"
// @Failure 400 {string} string "Logout failed: <reason>"
// @Failure 401 {string} string "Please login"
// @Router /logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.TextResponse(w, http.StatusBadRequest, "Logout failed: no session user")
		return
	}

	h.clearSessionCookie(w)
	utils.TextResponse(w, http.StatusOK, "Logged out successfully : "+user.Email)
}

// GET /user/view
// ViewUser godoc
// @Summary Return the logged-in user
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload{data=models.User}
// @Failure 400 {string} string "ERR: <reason>"
// @Failure 401 {string} string "Please login"
// @Router /user/view [get]
func (h *Handler) ViewUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.TextResponse(w, http.StatusBadRequest, "Failed to fetch user: no session user")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{Success: true, Data: user})
}

// GET /auth/google/login
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.Google == nil {
		http.NotFound(w, r)
		return
	}

	state, err := GenerateState(map[string]string{"flow": "login"})
	if err != nil {
		http.Error(w, "Failed to generate OAuth state", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   600,
		Secure:   h.Production,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.Google.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GET /auth/google/callback
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.Google == nil {
		http.NotFound(w, r)
		return
	}

	state := r.FormValue("state")
	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value != state {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}
	if _, err := DecodeState(state); err != nil {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}

	acct, err := services.FetchGoogleAccount(r.Context(), h.Google, r.FormValue("code"))
	if err != nil {
		h.Log.Error("google sign-in failed", zap.Error(err))
		http.Redirect(w, r, h.FrontendURL+"/login?error=google_failed", http.StatusTemporaryRedirect)
		return
	}

	_, session, err := h.Auth.GoogleSignIn(r.Context(), acct)
	if err != nil {
		h.logInternal("google sign-in failed", err)
		http.Redirect(w, r, h.FrontendURL+"/login?error=google_failed", http.StatusTemporaryRedirect)
		return
	}

	h.setSessionCookie(w, session)
	http.Redirect(w, r, h.FrontendURL+"/?status=success_login", http.StatusTemporaryRedirect)
}

func (h *Handler) logInternal(msg string, err error) {
	if apperr.CodeOf(err) == apperr.CodeInternal {
		h.Log.Error(msg, zap.Error(err))
	}
}
