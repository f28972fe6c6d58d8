package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDenseRejectsBadDims(t *testing.T) {
	_, err := NewDense(0, 3)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestDenseSetAtRoundTrip(t *testing.T) {
	m, err := NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 3.5))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestDenseOutOfBounds(t *testing.T) {
	m, _ := NewDense(2, 2)
	_, err := m.At(5, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestDenseAddAccumulates(t *testing.T) {
	m, _ := NewDense(1, 1)
	require.NoError(t, m.Add(0, 0, 2))
	require.NoError(t, m.Add(0, 0, 3))
	v, _ := m.At(0, 0)
	assert.Equal(t, 5.0, v)
}

func TestDenseCloneIsIndependent(t *testing.T) {
	m, _ := NewDense(1, 1)
	m.Set(0, 0, 1)
	clone := m.Clone()
	clone.Set(0, 0, 2)
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestGridSetAtRoundTrip(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.Set(2, 1, 7))
	v, err := g.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestGridRow(t *testing.T) {
	g, _ := NewGrid(2, 3)
	g.Set(1, 0, 1)
	g.Set(1, 1, 2)
	g.Set(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, g.Row(1))
}
