package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/vop-sheet/internal/pkg/clock"
)

func TestRealClockAdvances(t *testing.T) {
	c := clock.New()
	before := time.Now()
	assert.False(t, c.Now().Before(before))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := clock.Fixed{At: at}
	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}
