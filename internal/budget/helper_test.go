package budget

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// fakeClock advances one second per call so every expense gets a distinct,
// increasing timestamp.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("exp-%d", n)
	}
}

func newTestState(opts ...Option) State {
	clk := &fakeClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	base := []Option{WithClock(clk.Now), WithIDGenerator(sequentialIDs())}
	return New(append(base, opts...)...)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "got %s, want %s", got, want)
}
