package storage

import "errors"

// ErrStateUnavailable is returned when exclusive access to the reserves cannot be obtained,
// e.g. because an earlier mutation panicked and left the collection in an unknown state.
var ErrStateUnavailable = errors.New("reserve state unavailable")

// ErrUnknownDenomination is returned when a store is asked for a reserve it does not hold.
var ErrUnknownDenomination = errors.New("unknown denomination")
