package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerFiresInDueOrder(t *testing.T) {
	m := NewManager()
	var order []string
	var a, b, c Handle
	m.Set(&a, 0.3, func() { order = append(order, "a") })
	m.Set(&b, 0.1, func() { order = append(order, "b") })
	m.Set(&c, 0.2, func() { order = append(order, "c") })

	m.Advance(0.15)
	assert.Equal(t, []string{"b"}, order)
	m.Advance(0.2)
	assert.Equal(t, []string{"b", "c", "a"}, order)
	assert.Equal(t, 0, m.Len())
}

func TestManagerSetSupersedes(t *testing.T) {
	m := NewManager()
	fired := 0
	var h Handle
	m.Set(&h, 0.1, func() { fired += 1 })
	m.Set(&h, 0.5, func() { fired += 10 })

	m.Advance(0.2)
	assert.Equal(t, 0, fired, "the first callback was replaced")
	m.Advance(0.4)
	assert.Equal(t, 10, fired)
}

func TestManagerCancel(t *testing.T) {
	m := NewManager()
	var h Handle
	m.Set(&h, 0.1, func() { t.Fatal("cancelled callback fired") })
	require.True(t, m.Pending(h))
	m.Cancel(&h)
	assert.False(t, m.Pending(h))
	m.Advance(1)
}

func TestManagerElapsed(t *testing.T) {
	cases := []struct {
		name    string
		delay   float64
		advance float64
		elapsed float64
		pending bool
	}{
		{"midway", 0.7, 0.35, 0.35, true},
		{"start", 0.7, 0, 0, true},
		{"fired", 0.7, 0.8, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewManager()
			h := m.After(tc.delay, func() {})
			m.Advance(tc.advance)
			assert.Equal(t, tc.pending, m.Pending(h))
			assert.InDelta(t, tc.elapsed, m.Elapsed(h), 1e-9)
		})
	}
}

func TestManagerAccumulatedFramesReachDue(t *testing.T) {
	m := NewManager()
	fired := false
	m.After(0.7, func() { fired = true })
	for i := 0; i < 7; i++ {
		m.Advance(0.1)
	}
	assert.True(t, fired)
}

func TestManagerCallbackSchedulesForLaterAdvance(t *testing.T) {
	m := NewManager()
	count := 0
	var h Handle
	var loop func()
	loop = func() {
		count++
		m.Set(&h, 0, loop)
	}
	m.Set(&h, 0, loop)
	m.Advance(0)
	assert.Equal(t, 1, count)
	m.Advance(0)
	assert.Equal(t, 2, count)
}

func TestZeroHandleNeverPending(t *testing.T) {
	m := NewManager()
	var h Handle
	assert.False(t, h.Valid())
	assert.False(t, m.Pending(h))
	assert.Equal(t, -1.0, m.Remaining(h))
}
