package handlers

import (
	"errors"
	"net/http"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase"
)

const uploadField = "file"

type UploadHandler struct {
	uploads  usecase.UploadUsecase
	maxBytes int64
}

func NewUploadHandler(uploads usecase.UploadUsecase, maxUploadMB int64) *UploadHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 20
	}
	return &UploadHandler{uploads: uploads, maxBytes: maxUploadMB << 20}
}

func (h *UploadHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, "file is too large")
			return
		}
		respondWithError(w, http.StatusBadRequest, "expected a multipart form with a file field")
		return
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	result, err := h.uploads.Upload(r.Context(), header.Filename, file)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
