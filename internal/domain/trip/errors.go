package trip

import "errors"

var (
	ErrTripNotFound         = errors.New("trip request not found")
	ErrTripAlreadyProcessed = errors.New("trip request already processed")
	ErrTripEndBeforeStart   = errors.New("trip end must be after trip start")
)
