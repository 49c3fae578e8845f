package request

// Status is the lifecycle shared by leave, post-clock and business-trip
// requests. A request moves created -> approved or rejected; cancel is a
// soft override reachable from any state and never deletes history.
type Status string

const (
	StatusCreated  Status = "created"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusCancel   Status = "cancel"
)

// Processed reports whether the request has left the created state and can
// no longer be approved or rejected.
func (s Status) Processed() bool {
	return s != StatusCreated
}
