package service

import "errors"

var (
	// ErrMissingAsset means an image asset could not be opened or read.
	ErrMissingAsset = errors.New("asset not found")
	// ErrInvalidAsset means the asset bytes are not a supported image.
	ErrInvalidAsset = errors.New("asset is not a supported image")
	// ErrSerialization means the document package could not be written.
	ErrSerialization = errors.New("document serialization failed")
)
