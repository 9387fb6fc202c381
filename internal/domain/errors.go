package domain

import "errors"

// Sentinel errors shared by repositories, services and handlers.
var (
	ErrNotFound        = errors.New("not found")
	ErrUploadFailed    = errors.New("object upload failed")
	ErrStorageDisabled = errors.New("object storage disabled")
)
