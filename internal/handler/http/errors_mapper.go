package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/internal/service"
	"github.com/MKhiriev/go-product-catalog/internal/store"
	"github.com/MKhiriev/go-product-catalog/internal/utils"
	"github.com/MKhiriev/go-product-catalog/internal/validators"
	"github.com/MKhiriev/go-product-catalog/models"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{validators.ErrValidation, http.StatusBadRequest},
	{ErrRequestBodyTooLarge, http.StatusRequestEntityTooLarge},
	{ErrStorageUnavailable, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{service.ErrNilRepository, http.StatusInternalServerError},
	{store.ErrStorage, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// statusMessage is the lower-cased status text, e.g. "internal server error".
func statusMessage(status int) string {
	return strings.ToLower(http.StatusText(status))
}

// writeError renders err as a models.ErrorResponse. Validation failures
// carry their field errors; everything else only the status message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	response := models.ErrorResponse{Message: statusMessage(status)}
	if vErr, ok := validators.AsValidationError(err); ok {
		response.Message = validators.ErrValidation.Error()
		response.Errors = vErr.Fields
	}

	if status >= http.StatusInternalServerError {
		var storageErr *store.StorageError
		if errors.As(err, &storageErr) {
			h.metrics.RecordStorageError(storageErr.Retryable)
		}
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, response, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}
