package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthorized is the single error reported for every failed token
	// check. The cause is only logged.
	ErrUnauthorized       = errors.New("not authorized to access this route")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotRecipeOwner     = errors.New("not the recipe owner")

	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrNoFileUploaded    = errors.New("please upload a file")
	ErrNotAnImage        = errors.New("please upload an image file")
	ErrFileTooLarge      = errors.New("please upload an image less than")
	ErrPhotoUploadFailed = errors.New("problem with file upload")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrDatabaseUnavailable   = errors.New("database unavailable")
)
