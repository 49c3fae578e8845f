package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrOverlappingLeave      = errors.New("leave interval overlaps an approved leave")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrEndBeforeStart        = errors.New("leave end must be after leave start")
	ErrOutsideWorkday        = errors.New("leave interval outside workday bounds")
	ErrLunchBoundary         = errors.New("leave boundary falls inside the lunch break")
	ErrUnknownLeaveType      = errors.New("unknown leave type")
)
