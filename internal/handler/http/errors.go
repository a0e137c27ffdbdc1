// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the handlers when reading a request. Callers can
// match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext is returned by protected handlers reached without
	// the auth middleware.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrInvalidJSON is returned when the request body is not a JSON object
	// of the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidGzipBody is returned for a gzip encoded body that cannot be
	// inflated.
	ErrInvalidGzipBody = errors.New("invalid gzip data")
)
