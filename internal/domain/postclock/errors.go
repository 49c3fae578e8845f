package postclock

import "errors"

var (
	ErrPostClockNotFound         = errors.New("post-clock request not found")
	ErrPostClockAlreadyProcessed = errors.New("post-clock request already processed")
)
