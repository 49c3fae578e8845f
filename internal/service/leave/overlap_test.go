package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workclock/attendance-core-go/internal/domain/leave"
	"github.com/workclock/attendance-core-go/internal/domain/request"
)

func approvedLeave(id string, start, end time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         id,
		EmployeeID: "12345678",
		Status:     request.StatusApproved,
		Start:      start,
		End:        end,
	}
}

func TestWouldOverlap(t *testing.T) {
	loc := taipei(t)
	base := time.Date(2025, 10, 1, 0, 0, 0, 0, loc)
	hour := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	existing := approvedLeave("existing", hour(9), hour(13))

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical interval", hour(9), hour(13), true},
		{"fully inside", hour(10), hour(11), true},
		{"fully containing", hour(8), hour(14), true},
		{"overlaps start", hour(8), hour(10), true},
		{"overlaps end", hour(11), hour(15), true},
		{"adjacent before", hour(8), hour(9), false},
		{"adjacent after", hour(13), hour(17), false},
		{"disjoint before", hour(6), hour(8), false},
		{"disjoint after", hour(14), hour(16), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeLeaveRepo()
			repo.requests[existing.ID] = existing
			svc := NewLeaveService(repo, &fakeEmployeeRepo{}, &fakeCounterRepo{}, loc).(*LeaveServiceImpl)

			got, err := svc.WouldOverlap(context.Background(), "12345678", tc.start, tc.end, "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWouldOverlapIgnoresUnapproved(t *testing.T) {
	loc := taipei(t)
	base := time.Date(2025, 10, 1, 9, 0, 0, 0, loc)

	repo := newFakeLeaveRepo()
	pending := approvedLeave("pending", base, base.Add(4*time.Hour))
	pending.Status = request.StatusCreated
	repo.requests[pending.ID] = pending

	svc := NewLeaveService(repo, &fakeEmployeeRepo{}, &fakeCounterRepo{}, loc).(*LeaveServiceImpl)

	got, err := svc.WouldOverlap(context.Background(), "12345678", base, base.Add(time.Hour), "")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestWouldOverlapExcludesOwnID(t *testing.T) {
	loc := taipei(t)
	base := time.Date(2025, 10, 1, 9, 0, 0, 0, loc)

	repo := newFakeLeaveRepo()
	own := approvedLeave("own", base, base.Add(4*time.Hour))
	repo.requests[own.ID] = own

	svc := NewLeaveService(repo, &fakeEmployeeRepo{}, &fakeCounterRepo{}, loc).(*LeaveServiceImpl)

	got, err := svc.WouldOverlap(context.Background(), "12345678", base, base.Add(4*time.Hour), "own")
	require.NoError(t, err)
	assert.False(t, got)

	got, err = svc.WouldOverlap(context.Background(), "12345678", base, base.Add(4*time.Hour), "")
	require.NoError(t, err)
	assert.True(t, got)
}
