package backend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	start := time.Now()
	th.wait()
	th.wait()
	th.wait()
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestZeroThrottleDoesNotBlock(t *testing.T) {
	th := newThrottle(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		th.wait()
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}
