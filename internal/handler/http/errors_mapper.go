package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
)

const internalErrorMessage = "internal server error"

// errorMapping binds a sentinel error to a status code. An empty message
// exposes err.Error() to the client.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{target: service.ErrUnauthorized, status: http.StatusUnauthorized},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized},
	{target: service.ErrNotRecipeOwner, status: http.StatusUnauthorized},
	{target: ErrNoUserInContext, status: http.StatusUnauthorized, message: service.ErrUnauthorized.Error()},

	{target: store.ErrRecipeNotFound, status: http.StatusNotFound},
	{target: store.ErrEmailAlreadyExists, status: http.StatusConflict},

	{target: service.ErrNoFileUploaded, status: http.StatusBadRequest},
	{target: service.ErrNotAnImage, status: http.StatusBadRequest},
	{target: service.ErrFileTooLarge, status: http.StatusBadRequest},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{target: ErrInvalidJSON, status: http.StatusBadRequest},
	{target: ErrInvalidGzipBody, status: http.StatusBadRequest},
	{target: validators.ErrInvalidRecipe, status: http.StatusBadRequest},
	{target: validators.ErrInvalidUser, status: http.StatusBadRequest},
	{target: validators.ErrMissingCredentials, status: http.StatusBadRequest},

	{target: service.ErrPhotoUploadFailed, status: http.StatusInternalServerError, message: service.ErrPhotoUploadFailed.Error()},
	{target: service.ErrDatabaseUnavailable, status: http.StatusServiceUnavailable, message: service.ErrDatabaseUnavailable.Error()},
}

// errorResponse returns the status code and client message for err.
// Unmapped errors become a 500 with a generic message.
func errorResponse(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.message == "" {
				return m.status, err.Error()
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}

// writeError logs err and answers with the error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := errorResponse(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
