package esop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lsynth/lsynth/ttable"
)

func cubeFromPattern(pattern string) ttable.Cube {
	c := ttable.NewCube()
	for i, ch := range pattern {
		switch ch {
		case '0':
			c = c.With(i, 0)
		case '1':
			c = c.With(i, 1)
		default:
			c = c.With(i, -1)
		}
	}
	return c
}

func TestInsertCancelsAtDistanceZero(t *testing.T) {
	cov := NewCover(3)
	require.NoError(t, cov.Insert(cubeFromPattern("1-1")))
	require.NoError(t, cov.Insert(cubeFromPattern("1-1")))
	require.Empty(t, cov.Cubes())
}

func TestInsertAbsorbsAtDistanceOne(t *testing.T) {
	cov := NewCover(3)
	require.NoError(t, cov.Insert(cubeFromPattern("101")))
	require.NoError(t, cov.Insert(cubeFromPattern("100")))
	cubes := cov.Cubes()
	require.Len(t, cubes, 1)
	require.Equal(t, -1, cubes[0].Lit(2))
	require.Equal(t, 1, cubes[0].Lit(0))
	require.Equal(t, 0, cubes[0].Lit(1))
}

func TestInsertAbsorbsDontCareAgainstLiteralWithOppositePolarity(t *testing.T) {
	// §4.F XOR-absorption: the all-don't-care cube followed by x0 must
	// absorb to ¬x0, not x0 (ttable.Merge, not the generic ttable.Change).
	cov := NewCover(1)
	require.NoError(t, cov.Insert(cubeFromPattern("-")))
	require.NoError(t, cov.Insert(cubeFromPattern("1")))
	cubes := cov.Cubes()
	require.Len(t, cubes, 1)
	require.Equal(t, 0, cubes[0].Lit(0))
}

func TestInsertRejectsOutOfWidthCube(t *testing.T) {
	cov := NewCover(2)
	wide := ttable.NewCube().With(5, 1)
	require.ErrorIs(t, cov.Insert(wide), ErrWidthMismatch)
}

func TestS3ExorlinkCollapsesToSingleCube(t *testing.T) {
	// S3: cover {-11, 11-, 1-1} (three distance-2 pairs) on 3 vars;
	// EXORLINK reshapes to {1--} after one pass, dropping T-cost from
	// 7*3=21 to 0.
	cov := NewCover(3)
	require.NoError(t, cov.InsertAll([]ttable.Cube{
		cubeFromPattern("-11"),
		cubeFromPattern("11-"),
		cubeFromPattern("1-1"),
	}))
	require.Equal(t, 21, cov.TotalTCost())

	cov.Optimize(2, true)

	require.Equal(t, 0, cov.TotalTCost())
	cubes := cov.Cubes()
	require.Len(t, cubes, 1)
	require.Equal(t, 1, cubes[0].LiteralCount())
	require.Equal(t, 1, cubes[0].Lit(0))
}

func TestRunNeverIncreasesCost(t *testing.T) {
	cov := NewCover(3)
	require.NoError(t, cov.InsertAll([]ttable.Cube{
		cubeFromPattern("-11"),
		cubeFromPattern("11-"),
		cubeFromPattern("1-1"),
	}))
	before := cov.TotalTCost()
	cov.Run(3)
	require.LessOrEqual(t, cov.TotalTCost(), before)
}
