package configurator

import (
	"errors"
	"strconv"
	"strings"
)

// Clamp bounds n into [1, inventory]. A product with no inventory still yields 1;
// validation reports it as out of range.
func Clamp(n, inventory int) int {
	if n > inventory {
		n = inventory
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ParseQuantity converts raw form input into a quantity. Non-numeric and
// non-integer input becomes 1; integers too large for int saturate so that
// clamping still applies.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return n
		}
		return 1
	}
	return n
}
