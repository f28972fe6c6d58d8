package unate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsynth/lsynth/bdd"
)

func TestClassifyRejectsNilManager(t *testing.T) {
	_, err := Classify(nil, bdd.One, 1)
	assert.ErrorIs(t, err, ErrNilManager)
}

func TestClassifyANDChainIsPositiveUnateAndIndependentOfUnusedInputs(t *testing.T) {
	m := bdd.NewManager()
	x0 := m.MakeVar(0)
	x1 := m.MakeVar(1)
	x2 := m.MakeVar(2)
	f := m.And(m.And(x0, x1), x2)

	classes, err := Classify(m, f, 4)
	require.NoError(t, err)
	assert.Equal(t, PositiveUnate, classes[0])
	assert.Equal(t, PositiveUnate, classes[1])
	assert.Equal(t, PositiveUnate, classes[2])
	assert.Equal(t, Independent, classes[3])
}

func TestClassifyNotIsNegativeUnate(t *testing.T) {
	m := bdd.NewManager()
	f := m.Not(m.MakeVar(0))

	classes, err := Classify(m, f, 1)
	require.NoError(t, err)
	assert.Equal(t, NegativeUnate, classes[0])
}

func TestClassifyXorIsBinateInBothInputs(t *testing.T) {
	m := bdd.NewManager()
	x0 := m.MakeVar(0)
	x1 := m.MakeVar(1)
	f := m.Xor(x0, x1)

	classes, err := Classify(m, f, 2)
	require.NoError(t, err)
	assert.Equal(t, Binate, classes[0])
	assert.Equal(t, Binate, classes[1])
}

func TestClassifyOutputsParallelMatchesSerial(t *testing.T) {
	m := bdd.NewManager()
	x0 := m.MakeVar(0)
	x1 := m.MakeVar(1)
	x2 := m.MakeVar(2)
	outputs := []bdd.Ref{
		m.And(x0, x1),
		m.Not(x2),
		m.Xor(x0, x2),
	}

	results, support, err := ClassifyOutputsParallel(m, outputs, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, f := range outputs {
		want, err := Classify(m, f, 3)
		require.NoError(t, err)
		assert.Equal(t, want, results[i])
	}

	for v := 0; v < 3; v++ {
		used := false
		for _, classes := range results {
			if classes[v] != Independent {
				used = true
			}
		}
		assert.Equal(t, used, support.Test(uint(v)))
	}
}

func TestClassifyOutputsParallelRejectsNilManager(t *testing.T) {
	_, _, err := ClassifyOutputsParallel(nil, nil, 1)
	assert.ErrorIs(t, err, ErrNilManager)
}

func TestClassifyInputsParallelMatchesOutputsParallel(t *testing.T) {
	m := bdd.NewManager()
	x0 := m.MakeVar(0)
	x1 := m.MakeVar(1)
	x2 := m.MakeVar(2)
	outputs := []bdd.Ref{
		m.And(x0, x1),
		m.Not(x2),
	}

	_, wantSupport, err := ClassifyOutputsParallel(m, outputs, 3)
	require.NoError(t, err)

	gotSupport, err := ClassifyInputsParallel(m, outputs, 3)
	require.NoError(t, err)

	for v := 0; v < 3; v++ {
		assert.Equal(t, wantSupport.Test(uint(v)), gotSupport.Test(uint(v)))
	}
}

func TestClassifyInputsParallelRejectsNilManager(t *testing.T) {
	_, err := ClassifyInputsParallel(nil, nil, 1)
	assert.ErrorIs(t, err, ErrNilManager)
}
