package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusProcessed(t *testing.T) {
	assert.False(t, StatusCreated.Processed())
	assert.True(t, StatusApproved.Processed())
	assert.True(t, StatusRejected.Processed())
	assert.True(t, StatusCancel.Processed())
}
