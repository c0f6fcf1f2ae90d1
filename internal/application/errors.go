package application

import "errors"

// Referenced-resource failures. A resource owned by someone else produces
// the same error as one that does not exist.
var (
	ErrClientNotFound = errors.New("client not found")
	ErrBuyerNotFound  = errors.New("buyer not found")
)
