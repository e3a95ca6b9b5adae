package rest

import (
	"bytes"
	"net/http"

	"shavtzak-service/internal/domain/repository"
	"shavtzak-service/pkg/logger"

	"github.com/go-chi/render"
)

// FrequencyTableImage is the fixed object name of the uploaded
// frequency-table picture.
const FrequencyTableImage = "table.jpg"

const maxImageSize = 10 << 20 // 10 MiB

// UploadFrequencyTable replaces the stored frequency-table image with
// the uploaded multipart "image" file.
func UploadFrequencyTable(log logger.Logger, blobs repository.BlobRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxImageSize); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "malformed multipart body"})
			return
		}
		file, _, err := r.FormFile("image")
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "missing image file"})
			return
		}
		defer file.Close()

		if err := blobs.Upload(r.Context(), FrequencyTableImage, file); err != nil {
			writeError(w, r, log, err)
			return
		}
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, map[string]string{"name": FrequencyTableImage})
	}
}

// GetFrequencyTable returns the stored image. The download is buffered
// so a store failure can still answer with a clean error status
// instead of truncating a committed 200.
func GetFrequencyTable(log logger.Logger, blobs repository.BlobRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := blobs.Download(r.Context(), FrequencyTableImage, &buf); err != nil {
			writeError(w, r, log, err)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(buf.Bytes())
	}
}

// DeleteFrequencyTable removes the stored image.
func DeleteFrequencyTable(log logger.Logger, blobs repository.BlobRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := blobs.Delete(r.Context(), FrequencyTableImage); err != nil {
			writeError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
