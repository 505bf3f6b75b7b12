package configurator

import "errors"

var (
	// ErrInvalidSelection means a selection broke the department -> category -> product chain.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNoProductSelected means an operation that needs a product ran without one.
	ErrNoProductSelected = errors.New("no product selected")
	// ErrQuantityOutOfRange is only reported by validation; SetQuantity clamps instead.
	ErrQuantityOutOfRange      = errors.New("quantity out of range")
	ErrIncompleteRecipientInfo = errors.New("incomplete recipient info")
)
