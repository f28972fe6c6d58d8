package dag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddAndStrashes(t *testing.T) {
	a := NewArena()
	x := a.AddPI("x")
	y := a.AddPI("y")

	r1, err := a.AddAnd(E(x), E(y))
	require.NoError(t, err)
	r2, err := a.AddAnd(E(y), E(x))
	require.NoError(t, err)
	require.Equal(t, r1, r2, "AND(x,y) and AND(y,x) must strash to the same node")

	r3, err := a.AddAnd(E(x), EC(y))
	require.NoError(t, err)
	require.NotEqual(t, r1, r3)
}

func TestMajFaninArity(t *testing.T) {
	a := NewArena()
	x := a.AddPI("x")
	y := a.AddPI("y")
	_, err := a.addStructural(KindMaj, []Edge{E(x), E(y)})
	require.ErrorIs(t, err, ErrFaninCount)
}

func TestTopoRespectsFanins(t *testing.T) {
	a := NewArena()
	x := a.AddPI("x")
	y := a.AddPI("y")
	z := a.AddPI("z")
	and1, err := a.AddAnd(E(x), E(y))
	require.NoError(t, err)
	and2, err := a.AddAnd(E(and1), E(z))
	require.NoError(t, err)

	pos := make(map[Ref]int)
	for i, r := range a.Topo() {
		pos[r] = i
	}
	require.Less(t, pos[x], pos[and1])
	require.Less(t, pos[y], pos[and1])
	require.Less(t, pos[and1], pos[and2])
	require.Less(t, pos[z], pos[and2])
}

func TestFanoutsTracksUsers(t *testing.T) {
	a := NewArena()
	x := a.AddPI("x")
	y := a.AddPI("y")
	and1, err := a.AddAnd(E(x), E(y))
	require.NoError(t, err)

	fo := a.Fanouts()
	require.ElementsMatch(t, []Ref{and1}, fo[x])
	require.ElementsMatch(t, []Ref{and1}, fo[y])
}

func TestInvalidateOnMutation(t *testing.T) {
	a := NewArena()
	x := a.AddPI("x")
	_ = a.Topo()
	y := a.AddPI("y")
	_, err := a.AddAnd(E(x), E(y))
	require.NoError(t, err)
	order := a.Topo()
	require.Len(t, order, 4) // const0, x, y, and
}
