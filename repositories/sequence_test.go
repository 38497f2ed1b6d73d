package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID(0), "empty table starts at 1")
	assert.Equal(t, 2, NextID(1))
	assert.Equal(t, 101, NextID(100))
	assert.Equal(t, 1, NextID(-5), "negative maximum clamps to an empty table")
}
