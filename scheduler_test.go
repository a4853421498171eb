package cascade_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/cascade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiamondFiresExactlyOnce(t *testing.T) {
	// "D" must fire once per push, with both paths already fresh.
	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D
	src := cascade.NewSource(1)
	a := cascade.From(src)
	b := cascade.Map(func(v int) int { return v + 1 }, a)
	c := cascade.Map(func(v int) int { return v * 10 }, a)
	d := cascade.Map2(func(x, y int) [2]int { return [2]int{x, y} }, b, c)

	var got [][2]int
	_, err := cascade.Sink(d, func(p [2]int) error {
		got = append(got, p)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, src.Push(2))
	assert.Equal(t, [][2]int{{3, 20}}, got)

	require.NoError(t, src.Push(3))
	assert.Equal(t, [][2]int{{3, 20}, {4, 30}}, got)
}

func TestChainOrderRespectsDependencies(t *testing.T) {
	src := cascade.NewSource(0)

	var order []string
	stage := func(name string) func(int) int {
		return func(v int) int {
			order = append(order, fmt.Sprintf("%s:%d", name, v))
			return v
		}
	}

	a := cascade.Map(stage("A"), cascade.From(src))
	b := cascade.Map(stage("B"), a)
	c := cascade.Map(stage("C"), b)

	_, err := cascade.Sink(c, func(int) error { return nil })
	require.NoError(t, err)

	require.NoError(t, src.Push(5))
	assert.Equal(t, []string{"A:5", "B:5", "C:5"}, order)
}

func TestLongPathWinsOverShortcut(t *testing.T) {
	// "D" reads the source directly and through the X->Y->Z chain. It
	// must wait for the whole chain, not fire as soon as the source
	// does. The source is the shared vertex; a plain description used
	// twice would compile into two independent nodes instead.
	//  src ---------------\
	//   |                  D
	//   X --- Y --- Z ----/
	src := cascade.NewSource(0)

	var order []string
	stage := func(name string) func(int) int {
		return func(v int) int {
			order = append(order, name)
			return v + 1
		}
	}

	x := cascade.Map(stage("x"), cascade.From(src))
	y := cascade.Map(stage("y"), x)
	z := cascade.Map(stage("z"), y)
	d := cascade.Map2(func(a, c int) [2]int {
		order = append(order, "d")
		return [2]int{a, c}
	}, cascade.From(src), z)

	var got [][2]int
	_, err := cascade.Sink(d, func(p [2]int) error {
		got = append(got, p)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, src.Push(10))
	assert.Equal(t, []string{"x", "y", "z", "d"}, order)
	assert.Equal(t, [][2]int{{10, 13}}, got)
}

func TestActivationsAreIndependent(t *testing.T) {
	src := cascade.NewSource(1)
	doubled := cascade.Map(func(v int) int { return v * 2 }, cascade.From(src))

	var g1, g2 []int
	a1, err := cascade.Sink(doubled, func(v int) error {
		g1 = append(g1, v)
		return nil
	})
	require.NoError(t, err)
	_, err = cascade.Sink(doubled, func(v int) error {
		g2 = append(g2, v)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, src.Push(2))
	assert.Equal(t, []int{4}, g1)
	assert.Equal(t, []int{4}, g2)

	a1.Close()
	require.NoError(t, src.Push(3))
	assert.Equal(t, []int{4}, g1)
	assert.Equal(t, []int{4, 6}, g2)
}

func TestTwoSourcesPropagateSeparately(t *testing.T) {
	left := cascade.NewSource(1)
	right := cascade.NewSource(100)

	calls := 0
	sum := cascade.Map2(func(a, b int) int {
		calls++
		return a + b
	}, cascade.From(left), cascade.From(right))

	var got []int
	_, err := cascade.Sink(sum, func(v int) error {
		got = append(got, v)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, left.Push(2))
	require.NoError(t, right.Push(200))
	assert.Equal(t, []int{102, 202}, got)
	assert.Equal(t, 2, calls)
}
