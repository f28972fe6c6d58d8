package bdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeVarCanonicity(t *testing.T) {
	m := NewManager()
	a := m.MakeVar(0)
	b := m.MakeVar(0)
	assert.Equal(t, a, b)
}

func TestMakeCubeCanonicity(t *testing.T) {
	m := NewManager()
	c1 := m.MakeCube(0, 1, 2)
	c2 := m.MakeCube(0, 1, 2)
	assert.Equal(t, c1, c2, "invariant: same manager, same vars yields the same handle")
}

func TestIteBasicIdentities(t *testing.T) {
	m := NewManager()
	x := m.MakeVar(0)
	assert.Equal(t, One, m.Or(x, m.Not(x)))
	assert.Equal(t, Zero, m.And(x, m.Not(x)))
	assert.Equal(t, x, m.And(x, One))
	assert.Equal(t, Zero, m.And(x, Zero))
}

func TestXorCommutative(t *testing.T) {
	m := NewManager()
	x, y := m.MakeVar(0), m.MakeVar(1)
	require.Equal(t, m.Xor(x, y), m.Xor(y, x))
}

func TestExistsVarsEliminatesVariable(t *testing.T) {
	m := NewManager()
	x, y := m.MakeVar(0), m.MakeVar(1)
	f := m.And(x, y)
	got := m.ExistsVars(f, 0)
	assert.Equal(t, y, got, "exists x. (x and y) == y")
}

func TestForallVarsIsStricter(t *testing.T) {
	m := NewManager()
	x, y := m.MakeVar(0), m.MakeVar(1)
	f := m.Or(x, y)
	got := m.ForallVars(f, 0)
	assert.Equal(t, y, got, "forall x. (x or y) == y")
}

func TestExistsViaCube(t *testing.T) {
	m := NewManager()
	x, y, z := m.MakeVar(0), m.MakeVar(1), m.MakeVar(2)
	f := m.And(m.And(x, y), z)
	g := m.MakeCube(0, 2)
	got := m.Exists(f, g)
	assert.Equal(t, y, got)
}

func TestRestrictSkipsAbsentVariable(t *testing.T) {
	m := NewManager()
	x, y := m.MakeVar(0), m.MakeVar(1)
	f := m.Or(x, y)
	g := m.MakeVar(1) // names only variable 1; variable 0 is absent from g
	got := m.Restrict(f, g)
	assert.Equal(t, One, got, "restrict(x or y, y) == 1 since g forces y=1")
}

func TestConstrainAgreesWhereGHolds(t *testing.T) {
	m := NewManager()
	x, y := m.MakeVar(0), m.MakeVar(1)
	f := m.Xor(x, y)
	got := m.Constrain(f, y) // g = y, i.e. y fixed to 1
	assert.Equal(t, m.Not(x), got)
}

func TestMakeEqExactCount(t *testing.T) {
	m := NewManager()
	vars := []int{0, 1, 2}
	eq1 := m.MakeEq(vars, 1)

	for assign := 0; assign < 8; assign++ {
		want := Zero
		if popcount3(assign) == 1 {
			want = One
		}
		got := eq1
		for i, v := range vars {
			bit := (assign >> uint(i)) & 1
			got = m.restrictVar(got, v, bit)
		}
		assert.Equal(t, want, got, "assignment %03b", assign)
	}
}

func TestSatCountMatchesBruteForce(t *testing.T) {
	m := NewManager()
	x, y, z := m.MakeVar(0), m.MakeVar(1), m.MakeVar(2)
	f := m.Or(m.And(x, y), z)

	count := 0
	for assign := 0; assign < 8; assign++ {
		xv, yv, zv := assign&1, (assign>>1)&1, (assign>>2)&1
		if (xv&yv)|zv == 1 {
			count++
		}
	}
	assert.Equal(t, float64(count), m.SatCount(f, 3))
}

func TestCharacteristicAgreesWithFunction(t *testing.T) {
	m := NewManager()
	x, y := m.MakeVar(0), m.MakeVar(1)
	f := m.And(x, y)
	chi := m.Characteristic(f, 2, 0, true)

	for assign := 0; assign < 4; assign++ {
		xv, yv := assign&1, (assign>>1)&1
		fv := xv & yv
		for out := 0; out <= 1; out++ {
			r := m.restrictVar(chi, 0, xv)
			r = m.restrictVar(r, 1, yv)
			r = m.restrictVar(r, 2, out)
			want := Zero
			if out == fv {
				want = One
			}
			assert.Equal(t, want, r)
		}
	}
}

func popcount3(v int) int {
	n := 0
	for i := 0; i < 3; i++ {
		n += (v >> uint(i)) & 1
	}
	return n
}
