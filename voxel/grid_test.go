package voxel

import (
	"testing"

	"go.viam.com/test"
)

func TestDenseGrid(t *testing.T) {
	t.Run("round trips samples", func(t *testing.T) {
		g := NewDenseGrid(4, 3, 2)
		test.That(t, g.SizeX(), test.ShouldEqual, 4)
		test.That(t, g.SizeY(), test.ShouldEqual, 3)
		test.That(t, g.SizeZ(), test.ShouldEqual, 2)

		s := NewSample(.75, 2)
		g.Set(3, 2, 1, s)
		test.That(t, g.At(3, 2, 1), test.ShouldResemble, s)
		test.That(t, g.Density(3, 2, 1), test.ShouldEqual, .75)
		test.That(t, g.Material(3, 2, 1), test.ShouldEqual, 2)
		test.That(t, g.At(0, 0, 0), test.ShouldResemble, Sample{})
	})

	t.Run("out of range reads return zero", func(t *testing.T) {
		g := NewDenseGrid(2, 2, 2)
		g.Fill(func(x, y, z int) Sample { return NewSample(1, 1) })

		test.That(t, g.Density(-1, 0, 0), test.ShouldEqual, 0)
		test.That(t, g.Density(2, 0, 0), test.ShouldEqual, 0)
		test.That(t, g.Density(0, 2, 0), test.ShouldEqual, 0)
		test.That(t, g.Density(0, 0, -1), test.ShouldEqual, 0)
		test.That(t, g.Material(0, 0, 2), test.ShouldEqual, 0)
		test.That(t, g.Density(1, 1, 1), test.ShouldEqual, 1)
	})

	t.Run("out of range writes are dropped", func(t *testing.T) {
		g := NewDenseGrid(2, 2, 2)
		g.Set(2, 0, 0, NewSample(1, 1))
		g.Set(0, -1, 0, NewSample(1, 1))
		for z := 0; z < 2; z++ {
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					test.That(t, g.At(x, y, z), test.ShouldResemble, Sample{})
				}
			}
		}
	})

	t.Run("negative extents collapse to an empty grid", func(t *testing.T) {
		g := NewDenseGrid(-1, 2, 3)
		test.That(t, g.SizeX(), test.ShouldEqual, 0)
		test.That(t, g.Density(0, 0, 0), test.ShouldEqual, 0)
	})
}

func TestSliceMatrix(t *testing.T) {
	g := NewDenseGrid(3, 2, 2)
	g.Set(2, 1, 0, NewSample(.5, 1))
	g.Set(0, 0, 1, NewSample(.25, 1))

	m := SliceMatrix(g, 0)
	rows, cols := m.Dims()
	test.That(t, rows, test.ShouldEqual, 2)
	test.That(t, cols, test.ShouldEqual, 3)
	test.That(t, m.At(1, 2), test.ShouldEqual, .5)
	test.That(t, m.At(0, 0), test.ShouldEqual, 0)

	m = SliceMatrix(g, 1)
	test.That(t, m.At(0, 0), test.ShouldEqual, .25)

	// out-of-range slices are zero-filled, empty views have no matrix
	m = SliceMatrix(g, 5)
	test.That(t, m.At(1, 2), test.ShouldEqual, 0)
	test.That(t, SliceMatrix(NewDenseGrid(0, 0, 0), 0), test.ShouldBeNil)
}
