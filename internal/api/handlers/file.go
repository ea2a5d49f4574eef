package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rohits-web03/resumehub/internal/utils"
	"go.uber.org/zap"
)

const resumeField = "resume"

var allowedResumeExt = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

type uploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath"`
	FileName string `json:"fileName"`
}

type uploadError struct {
	Error string `json:"error"`
}

// POST /upload-resume
// UploadResume godoc
// @Summary Upload a resume file
// @Description Stores a single .pdf, .doc, .docx or .txt file sent in the "resume" form field.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file"
// @Success 200 {object} uploadResponse
// @Failure 400 {object} uploadError
// @Router /upload-resume [post]
func (h *Handler) UploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.UploadMaxBytes+(1<<20))
	if err := r.ParseMultipartForm(h.UploadMaxBytes); err != nil {
		h.rejectUpload(w)
		return
	}

	file, header, err := r.FormFile(resumeField)
	if err != nil {
		h.rejectUpload(w)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedResumeExt[ext] || header.Size > h.UploadMaxBytes {
		h.rejectUpload(w)
		return
	}

	path, err := h.Files.Save(r.Context(), utils.StoredFileName(header.Filename), file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		h.Log.Error("failed to store upload", zap.String("file", header.Filename), zap.Error(err))
		utils.JSONResponse(w, http.StatusInternalServerError, uploadError{Error: "Failed to store file"})
		return
	}

	utils.JSONResponse(w, http.StatusOK, uploadResponse{
		Message:  "Resume uploaded successfully",
		FilePath: path,
		FileName: header.Filename,
	})
}

func (h *Handler) rejectUpload(w http.ResponseWriter) {
	utils.JSONResponse(w, http.StatusBadRequest, uploadError{Error: "No file uploaded or invalid file type"})
}
