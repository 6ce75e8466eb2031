package products

import "errors"

var (
	// ErrCreationFailed signals that the API answered a create without a
	// usable record in the body.
	ErrCreationFailed = errors.New("product creation failed")
)
