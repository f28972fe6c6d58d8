package lnn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsynth/lsynth/revsynth"
)

func toffoli(t *testing.T, control, target int) revsynth.Gate {
	t.Helper()
	g, err := revsynth.NewToffoli([]revsynth.Control{{Line: control, Pol: revsynth.Positive}}, target)
	require.NoError(t, err)
	return g
}

func TestReorderRejectsNilCircuit(t *testing.T) {
	_, _, err := Reorder(nil, ModeNaive)
	assert.ErrorIs(t, err, ErrNilCircuit)
}

func TestReorderRejectsMultiControlGate(t *testing.T) {
	c := &revsynth.Circuit{NumLines: 3}
	g, err := revsynth.NewToffoli(
		[]revsynth.Control{{Line: 0, Pol: revsynth.Positive}, {Line: 1, Pol: revsynth.Positive}}, 2,
	)
	require.NoError(t, err)
	c.AddGate(g)

	for _, mode := range []Mode{ModeNaive, ModeLocal, ModeGlobal} {
		_, _, err := Reorder(c, mode)
		assert.ErrorIs(t, err, ErrMultiControlGate)
	}
}

// everyLineValue runs c and reports, for each logical index i, the
// value found at its mapped physical line.
func everyLineValue(t *testing.T, c *revsynth.Circuit, initial []bool, mapping []int) []bool {
	t.Helper()
	final, err := c.Simulate(initial)
	require.NoError(t, err)
	out := make([]bool, len(mapping))
	for logical, physical := range mapping {
		out[logical] = final[physical]
	}
	return out
}

func TestNaiveReorderMatchesOriginal(t *testing.T) {
	c := &revsynth.Circuit{NumLines: 4}
	c.AddGate(toffoli(t, 0, 3))

	out, mapping, err := Reorder(c, ModeNaive)
	require.NoError(t, err)

	for mask := 0; mask < 16; mask++ {
		initial := make([]bool, 4)
		for i := range initial {
			initial[i] = mask&(1<<uint(i)) != 0
		}
		want, err := c.Simulate(initial)
		require.NoError(t, err)
		got := everyLineValue(t, out, initial, mapping)
		assert.Equal(t, want, got)
	}
}

func TestLocalReorderMatchesOriginal(t *testing.T) {
	c := &revsynth.Circuit{NumLines: 4}
	c.AddGate(toffoli(t, 0, 3))
	c.AddGate(toffoli(t, 3, 0))

	out, mapping, err := Reorder(c, ModeLocal)
	require.NoError(t, err)

	for mask := 0; mask < 16; mask++ {
		initial := make([]bool, 4)
		for i := range initial {
			initial[i] = mask&(1<<uint(i)) != 0
		}
		want, err := c.Simulate(initial)
		require.NoError(t, err)
		got := everyLineValue(t, out, initial, mapping)
		assert.Equal(t, want, got)
	}
}

func TestGlobalReorderMatchesOriginal(t *testing.T) {
	c := &revsynth.Circuit{NumLines: 4}
	c.AddGate(toffoli(t, 0, 3))
	c.AddGate(toffoli(t, 3, 0))
	c.AddGate(toffoli(t, 1, 2))

	out, mapping, err := Reorder(c, ModeGlobal)
	require.NoError(t, err)

	for mask := 0; mask < 16; mask++ {
		initial := make([]bool, 4)
		for i := range initial {
			initial[i] = mask&(1<<uint(i)) != 0
		}
		want, err := c.Simulate(initial)
		require.NoError(t, err)
		got := everyLineValue(t, out, initial, mapping)
		assert.Equal(t, want, got)
	}
}

func TestReorderNoneIsIdentity(t *testing.T) {
	c := &revsynth.Circuit{NumLines: 2}
	c.AddGate(toffoli(t, 0, 1))

	out, mapping, err := Reorder(c, ModeNone)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, mapping)
	assert.Equal(t, c.Gates, out.Gates)
}
