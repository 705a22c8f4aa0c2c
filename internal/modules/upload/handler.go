package upload

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
)

const maxImageSize = 10 << 20 // 10 MB

// Result is the body returned for a stored image.
type Result struct {
	URL string `json:"url"`
}

// Handler accepts multipart image uploads.
type Handler struct{ uploader Uploader }

func NewHandler(u Uploader) *Handler { return &Handler{uploader: u} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/uploads", h.upload) // POST /api/uploads
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_FORM", "failed to parse form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "FILE_REQUIRED", "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_FORM", "failed to read file")
		return
	}
	if _, err := DetectImage(data); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "UNSUPPORTED_TYPE", err.Error())
		return
	}

	url, err := h.uploader.Upload(r.Context(), data)
	switch {
	case errors.Is(err, ErrNotConfigured):
		httpapi.WriteError(w, http.StatusServiceUnavailable, "UPLOADS_DISABLED", err.Error())
		return
	case err != nil:
		httpapi.Logger(r.Context()).Error("image upload failed", zap.Error(err), zap.Int("bytes", len(data)))
		httpapi.WriteError(w, http.StatusBadGateway, "UPLOAD_FAILED", "upload failed")
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, Result{URL: url})
}
