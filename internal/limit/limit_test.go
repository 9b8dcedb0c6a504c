package limit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 {
	return &v
}

func TestClipNoBounds(t *testing.T) {
	l := New("current", nil, nil, nil, nil)

	require.Nil(t, l.Lower())
	require.Nil(t, l.Upper())

	for _, v := range []float64{-1000.0, -0.5, 0.0, 0.5, 1000.0} {
		assert.Equal(t, v, l.Clip(v))
	}
}

func TestClipFeasibleOnly(t *testing.T) {
	l := New("duty_cycle", f(-1.0), f(1.0), nil, nil)

	assert.Equal(t, 1.0, l.Clip(1.5))
	assert.Equal(t, -1.0, l.Clip(-2.0))
	assert.Equal(t, 0.3, l.Clip(0.3))
}

func TestClipConfiguredOverride(t *testing.T) {
	l := New("servo", f(0.0), f(1.0), f(0.2), nil)

	require.NotNil(t, l.Lower())
	assert.Equal(t, 0.2, *l.Lower())
	assert.Equal(t, 0.2, l.Clip(0.05))
	assert.Equal(t, 0.5, l.Clip(0.5))
	assert.Equal(t, 1.0, l.Clip(1.5))
}

func TestOverrideBelowFeasibleMinSnaps(t *testing.T) {
	l := New("duty_cycle", f(-1.0), f(1.0), f(-5.0), f(5.0))

	require.NotNil(t, l.Lower())
	require.NotNil(t, l.Upper())
	assert.Equal(t, -1.0, *l.Lower())
	assert.Equal(t, 1.0, *l.Upper())
}

// An out-of-range override snaps to the feasible bound it violates, even
// when that bound belongs to the opposite side.
func TestOverrideOppositeSideSnap(t *testing.T) {
	l := New("servo", f(0.0), f(1.0), f(2.0), nil)

	require.NotNil(t, l.Lower())
	assert.Equal(t, 1.0, *l.Lower())

	l = New("servo", f(0.0), f(1.0), nil, f(-2.0))
	require.NotNil(t, l.Upper())
	assert.Equal(t, 0.0, *l.Upper())
}

func TestInvertedPairSwapped(t *testing.T) {
	l := New("speed", nil, nil, f(500.0), f(-500.0))

	require.NotNil(t, l.Lower())
	require.NotNil(t, l.Upper())
	assert.Equal(t, -500.0, *l.Lower())
	assert.Equal(t, 500.0, *l.Upper())
	assert.LessOrEqual(t, *l.Lower(), *l.Upper())
}

func TestClipWithinBounds(t *testing.T) {
	l := New("brake", nil, nil, f(0.0), f(20.0))

	for _, v := range []float64{-5.0, 0.0, 10.0, 20.0, 100.0} {
		clipped := l.Clip(v)
		assert.GreaterOrEqual(t, clipped, 0.0)
		assert.LessOrEqual(t, clipped, 20.0)
	}
}

func TestClipIdempotent(t *testing.T) {
	l := New("duty_cycle", f(-1.0), f(1.0), f(-0.5), f(0.5))

	for _, v := range []float64{-2.0, -0.5, 0.0, 0.3, 0.5, 2.0} {
		once := l.Clip(v)
		assert.Equal(t, once, l.Clip(once))
	}
}

func TestOnlyUpperConfigured(t *testing.T) {
	l := New("current", nil, nil, nil, f(30.0))

	require.Nil(t, l.Lower())
	assert.Equal(t, -1e6, l.Clip(-1e6))
	assert.Equal(t, 30.0, l.Clip(45.0))
}
