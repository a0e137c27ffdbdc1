// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/go-chi/chi/v5"
)

const (
	photoFormField = "file"

	// multipartMemory is how much of a multipart body is kept in memory;
	// the rest spills to temporary files.
	multipartMemory = 8 << 20

	// multipartOverhead is the room left for part headers and boundaries on
	// top of the largest accepted file.
	multipartOverhead = 64 << 10
)

// uploadRecipePhoto reads the "file" part of a multipart body and hands it
// to the recipe service. Missing or unreadable uploads still reach the
// service so that not-found and ownership errors win over upload errors.
func (h *Handler) uploadRecipePhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	upload, cleanup := h.readPhotoUpload(w, r)
	defer cleanup()

	name, err := h.services.RecipeService.UploadPhoto(r.Context(), caller, chi.URLParam(r, recipeIDParam), upload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("photo", name).Msg("photo upload handled")
	utils.WriteData(w, name, http.StatusOK)
}

// readPhotoUpload returns the uploaded file, or nil when the request carries
// none. A body that cannot be read as an upload yields a PhotoUpload with
// only Err set. cleanup releases the parsed form and is always safe to call.
func (h *Handler) readPhotoUpload(w http.ResponseWriter, r *http.Request) (*models.PhotoUpload, func()) {
	log := logger.FromRequest(r)
	cleanup := func() {}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	err := r.ParseMultipartForm(multipartMemory)
	if r.MultipartForm != nil {
		cleanup = func() { _ = r.MultipartForm.RemoveAll() }
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return &models.PhotoUpload{Err: fmt.Errorf("%w %d bytes", service.ErrFileTooLarge, h.maxUploadSize)}, cleanup
	case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
		return nil, cleanup
	case err != nil:
		log.Debug().Err(err).Msg("unreadable multipart body")
		return &models.PhotoUpload{Err: service.ErrInvalidDataProvided}, cleanup
	}

	file, header, err := r.FormFile(photoFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, cleanup
	}
	if err != nil {
		log.Debug().Err(err).Msg("unreadable file part")
		return &models.PhotoUpload{Err: service.ErrInvalidDataProvided}, cleanup
	}

	release := cleanup
	cleanup = func() {
		_ = file.Close()
		release()
	}

	return &models.PhotoUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}, cleanup
}
