package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rohits-web03/resumehub/internal/apperr"
	"github.com/rohits-web03/resumehub/internal/utils"
	"github.com/rohits-web03/resumehub/internal/validation"
	"go.uber.org/zap"
)

// GET /profiles
// ListProfiles godoc
// @Summary List every stored profile
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.Payload{data=[]models.Profile}
// @Failure 401 {string} string "Please login"
// @Failure 500 {object} utils.Payload
// @Router /profiles [get]
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Profiles.List(r.Context())
	if err != nil {
		h.Log.Error("Error fetching profiles", zap.Error(err))
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Error:   "Failed to fetch profiles",
		})
		return
	}

	count := len(profiles)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Count:   &count,
		Data:    profiles,
	})
}

type profileResult struct {
	ProfileID string `json:"profileId"`
}

// POST /addProfile
// AddProfile godoc
// @Summary Store a resume as a profile
// @Description Extracts name and email from fileContent and upserts the profile keyed by their hash.
// @Tags Profiles
// @Accept json
// @Produce json
// @Param body body validation.ProfileInput true "Resume text"
// @Success 200 {object} utils.Payload{data=profileResult}
// @Failure 400 {object} utils.Payload
// @Failure 409 {object} utils.Payload "Email already stored under a different profile"
// @Failure 500 {object} utils.Payload
// @Router /addProfile [post]
func (h *Handler) AddProfile(w http.ResponseWriter, r *http.Request) {
	var input validation.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Error:   "Invalid input",
		})
		return
	}

	if err := h.Profiles.EnsureIndexes(r.Context()); err != nil {
		h.Log.Error("failed to ensure profile indexes", zap.Error(err))
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	profileID, err := h.Profiles.StoreProfile(r.Context(), input.FileName, input.FileContent)
	switch {
	case err == nil:
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Data:    profileResult{ProfileID: profileID},
		})
	case errors.Is(err, apperr.ErrDuplicateEmail):
		utils.JSONResponse(w, http.StatusConflict, utils.Payload{
			Success: false,
			Error:   err.Error(),
		})
	default:
		h.logInternal("failed to store profile", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Error:   err.Error(),
		})
	}
}
