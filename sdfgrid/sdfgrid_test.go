package sdfgrid

import (
	"testing"

	"github.com/deadsy/sdfx/sdf"
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/voxelforge/carve/mesher"
	"github.com/voxelforge/carve/octree"
)

func TestNewGrid(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		_, err := NewGrid(nil, 8, 1)
		test.That(t, err, test.ShouldBeError, "cannot build a grid without a distance field")
	})

	t.Run("invalid size", func(t *testing.T) {
		s, err := sdf.Sphere3D(2)
		test.That(t, err, test.ShouldBeNil)
		_, err = NewGrid(s, 0, 1)
		test.That(t, err, test.ShouldBeError, "invalid size (0) for sdf grid")
	})

	t.Run("invalid sphere radius", func(t *testing.T) {
		_, err := Sphere(8, -1, 1)
		test.That(t, err, test.ShouldBeError, "invalid radius (-1.00) for sdf sphere")
	})
}

func TestSphereGridSampling(t *testing.T) {
	g, err := Sphere(16, 5, 3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g.SizeX(), test.ShouldEqual, 16)
	test.That(t, g.SizeY(), test.ShouldEqual, 16)
	test.That(t, g.SizeZ(), test.ShouldEqual, 16)

	t.Run("deep inside reads full density", func(t *testing.T) {
		test.That(t, g.Density(7, 7, 7), test.ShouldAlmostEqual, 1)
	})

	t.Run("far outside reads empty", func(t *testing.T) {
		test.That(t, g.Density(0, 0, 0), test.ShouldEqual, 0)
	})

	t.Run("density falls off monotonically along a ray", func(t *testing.T) {
		prev := g.Density(7, 7, 7)
		for x := 8; x < 16; x++ {
			cur := g.Density(x, 7, 7)
			test.That(t, cur, test.ShouldBeLessThanOrEqualTo, prev)
			prev = cur
		}
	})

	t.Run("surface crossing sits at the radius", func(t *testing.T) {
		test.That(t, g.Density(12, 7, 7), test.ShouldBeGreaterThan, 0.5)
		test.That(t, g.Density(13, 7, 7), test.ShouldBeLessThan, 0.5)
	})

	t.Run("out of range reads zero", func(t *testing.T) {
		test.That(t, g.Density(-1, 7, 7), test.ShouldEqual, 0)
		test.That(t, g.Density(7, 16, 7), test.ShouldEqual, 0)
		test.That(t, g.Material(-1, 7, 7), test.ShouldEqual, 0)
	})

	t.Run("material is constant in range", func(t *testing.T) {
		test.That(t, g.Material(7, 7, 7), test.ShouldEqual, 3)
		test.That(t, g.Material(0, 0, 0), test.ShouldEqual, 3)
	})
}

func TestRasterize(t *testing.T) {
	oct, err := octree.New(16, 4, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	g, err := Sphere(16, 5, 2)
	test.That(t, err, test.ShouldBeNil)

	n := Rasterize(oct, g)
	test.That(t, oct.Size(), test.ShouldEqual, n)

	occupied := 0
	for z := 0; z < 16; z++ {
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				if g.Density(x, y, z) > 0 {
					occupied++
				}
			}
		}
	}
	test.That(t, n, test.ShouldEqual, occupied)

	center := r3.Vector{X: 7, Y: 7, Z: 7}
	test.That(t, oct.GetDensity(center), test.ShouldAlmostEqual, 1)
	test.That(t, oct.GetMaterial(center), test.ShouldEqual, 2)

	t.Run("clips to the octree bounds", func(t *testing.T) {
		small, err := octree.New(4, 2, golog.NewTestLogger(t))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, Rasterize(small, uniformView{size: 8}), test.ShouldEqual, 64)
		test.That(t, small.Size(), test.ShouldEqual, 64)
	})
}

func TestSphereGridMeshes(t *testing.T) {
	g, err := Sphere(16, 5, 1)
	test.That(t, err, test.ShouldBeNil)

	m := mesher.NewMarchingCubes().Extract(g)
	test.That(t, m.IsEmpty(), test.ShouldBeFalse)

	center := r3.Vector{X: 7.5, Y: 7.5, Z: 7.5}
	for _, v := range m.Vertices() {
		dist := v.Position.Sub(center).Norm()
		test.That(t, dist, test.ShouldBeGreaterThan, 4.0)
		test.That(t, dist, test.ShouldBeLessThan, 6.0)
		test.That(t, v.Normal.Dot(v.Position.Sub(center)), test.ShouldBeGreaterThan, 0)
	}
}

type uniformView struct{ size int }

func (u uniformView) SizeX() int { return u.size }

func (u uniformView) SizeY() int { return u.size }

func (u uniformView) SizeZ() int { return u.size }

func (u uniformView) Density(x, y, z int) float64 { return 1 }

func (u uniformView) Material(x, y, z int) int { return 1 }
