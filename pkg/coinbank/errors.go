package coinbank

import "errors"

// ErrIllegalDenominationName is returned when a request names a coin outside the four the bank holds.
var ErrIllegalDenominationName = errors.New("illegal denomination name")
