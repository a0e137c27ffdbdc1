package models

import "io"

// PhotoUpload is a file received for a recipe photo.
//
// A nil *PhotoUpload means the request carried no file at all.
type PhotoUpload struct {
	// Filename is the original client-side file name; only its extension
	// is kept.
	Filename string

	// ContentType is the MIME type declared for the file part.
	ContentType string

	// Size is the file size in bytes.
	Size int64

	// Content is the file body. It is seekable so the MIME type can be
	// sniffed before the body is stored.
	Content io.ReadSeeker

	// Err is set instead of the fields above when the request body could
	// not be read as an upload. It is reported after the recipe lookup and
	// the ownership check.
	Err error
}
