package mesher

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/voxelforge/carve/mesh"
	"github.com/voxelforge/carve/voxel"
)

// sphereGrid fills a cubic view with a radial density ramp that crosses
// 0.5 at the given radius from the grid center.
func sphereGrid(size int, radius float64) *voxel.DenseGrid {
	g := voxel.NewDenseGrid(size, size, size)
	c := float64(size-1) / 2
	g.Fill(func(x, y, z int) voxel.Sample {
		dx, dy, dz := float64(x)-c, float64(y)-c, float64(z)-c
		dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
		return voxel.NewSample(1-dist/(2*radius), 1)
	})
	return g
}

func TestMarchingCubesSingleCorner(t *testing.T) {
	g := voxel.NewDenseGrid(2, 2, 2)
	g.Set(0, 0, 0, voxel.NewSample(1, 2))

	mc := NewMarchingCubes()
	m := mc.Extract(g)

	test.That(t, m.TriangleCount(), test.ShouldEqual, 1)
	test.That(t, m.VertexCount(), test.ShouldEqual, 3)

	verts := m.Vertices()
	test.That(t, verts[0].Position, test.ShouldResemble, r3.Vector{X: 0.5})
	test.That(t, verts[1].Position, test.ShouldResemble, r3.Vector{Y: 0.5})
	test.That(t, verts[2].Position, test.ShouldResemble, r3.Vector{Z: 0.5})

	t.Run("normals point away from the solid corner", func(t *testing.T) {
		test.That(t, verts[0].Normal, test.ShouldResemble, r3.Vector{X: 1})
		test.That(t, verts[1].Normal, test.ShouldResemble, r3.Vector{Y: 1})
		test.That(t, verts[2].Normal, test.ShouldResemble, r3.Vector{Z: 1})

		face := mesh.TriangleNormal(verts[0].Position, verts[1].Position, verts[2].Position, r3.Vector{})
		test.That(t, face.Dot(r3.Vector{X: 1, Y: 1, Z: 1}), test.ShouldBeGreaterThan, 0)
	})

	t.Run("color comes from the solid corner material", func(t *testing.T) {
		want := mesh.DefaultPalette().Color(2)
		for _, v := range verts {
			test.That(t, v.Color, test.ShouldResemble, want)
		}
	})
}

func TestMarchingCubesUniformVolumes(t *testing.T) {
	mc := NewMarchingCubes()

	for _, tc := range []struct {
		name    string
		density float64
	}{
		{"all empty", 0},
		{"all solid", 1},
		{"exactly at iso level", 0.5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := voxel.NewDenseGrid(3, 3, 3)
			g.Fill(func(x, y, z int) voxel.Sample {
				return voxel.NewSample(tc.density, 1)
			})
			test.That(t, mc.Extract(g).IsEmpty(), test.ShouldBeTrue)
		})
	}

	t.Run("view too small for a cube", func(t *testing.T) {
		g := voxel.NewDenseGrid(1, 1, 1)
		g.Set(0, 0, 0, voxel.NewSample(1, 1))
		test.That(t, mc.Extract(g).IsEmpty(), test.ShouldBeTrue)
	})
}

type quantized [3]int64

func quantize(v r3.Vector) quantized {
	const scale = 1e6
	return quantized{
		int64(math.Round(v.X * scale)),
		int64(math.Round(v.Y * scale)),
		int64(math.Round(v.Z * scale)),
	}
}

func lessQuantized(a, b quantized) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func TestMarchingCubesSphere(t *testing.T) {
	g := sphereGrid(16, 3)
	center := r3.Vector{X: 7.5, Y: 7.5, Z: 7.5}

	mc := NewMarchingCubes()
	m := mc.Extract(g)
	test.That(t, m.TriangleCount(), test.ShouldBeGreaterThan, 50)

	verts := m.Vertices()
	indices := m.Indices()

	t.Run("surface is closed with consistent winding", func(t *testing.T) {
		undirected := map[[2]quantized]int{}
		directed := map[[2]quantized]int{}
		for i := 0; i+2 < len(indices); i += 3 {
			keys := [3]quantized{
				quantize(verts[indices[i]].Position),
				quantize(verts[indices[i+1]].Position),
				quantize(verts[indices[i+2]].Position),
			}
			for e := 0; e < 3; e++ {
				a, b := keys[e], keys[(e+1)%3]
				directed[[2]quantized{a, b}]++
				if lessQuantized(b, a) {
					a, b = b, a
				}
				undirected[[2]quantized{a, b}]++
			}
		}
		for _, n := range undirected {
			test.That(t, n, test.ShouldEqual, 2)
		}
		for _, n := range directed {
			test.That(t, n, test.ShouldEqual, 1)
		}
	})

	t.Run("triangles face outward", func(t *testing.T) {
		for i := 0; i+2 < len(indices); i += 3 {
			p0 := verts[indices[i]].Position
			p1 := verts[indices[i+1]].Position
			p2 := verts[indices[i+2]].Position
			n := mesh.TriangleNormal(p0, p1, p2, r3.Vector{})
			centroid := p0.Add(p1).Add(p2).Mul(1.0 / 3.0)
			test.That(t, n.Dot(centroid.Sub(center)), test.ShouldBeGreaterThan, 0)
		}
	})

	t.Run("vertex normals are unit length and outward", func(t *testing.T) {
		for _, v := range verts {
			test.That(t, v.Normal.Norm(), test.ShouldAlmostEqual, 1)
			test.That(t, v.Normal.Dot(v.Position.Sub(center)), test.ShouldBeGreaterThan, 0)
		}
	})
}

func TestMarchingCubesIsoLevel(t *testing.T) {
	g := sphereGrid(16, 3)

	mc := NewMarchingCubes()
	test.That(t, mc.IsoLevel(), test.ShouldAlmostEqual, 0.5)

	mc.SetIsoLevel(0.2)
	wide := mc.Extract(g)
	mc.SetIsoLevel(0.8)
	tight := mc.Extract(g)

	test.That(t, tight.TriangleCount(), test.ShouldBeGreaterThan, 0)
	test.That(t, wide.TriangleCount(), test.ShouldBeGreaterThan, tight.TriangleCount())
}

func TestMarchingCubesGradientFallback(t *testing.T) {
	// A checkerboard has a zero central-difference gradient at every
	// interior lattice point, forcing the face normal fallback.
	g := voxel.NewDenseGrid(4, 4, 4)
	g.Fill(func(x, y, z int) voxel.Sample {
		if (x+y+z)%2 == 0 {
			return voxel.NewSample(1, 1)
		}
		return voxel.Sample{}
	})

	mc := NewMarchingCubes()
	m := mc.Extract(g)
	test.That(t, m.IsEmpty(), test.ShouldBeFalse)

	verts := m.Vertices()
	indices := m.Indices()

	inner := 0
	for i := 0; i+2 < len(indices); i += 3 {
		p0 := verts[indices[i]].Position
		p1 := verts[indices[i+1]].Position
		p2 := verts[indices[i+2]].Position
		if !inUnitBox(p0) || !inUnitBox(p1) || !inUnitBox(p2) {
			continue
		}
		inner++

		face := mesh.TriangleNormal(p0, p1, p2, r3.Vector{})
		test.That(t, verts[indices[i]].Normal, test.ShouldResemble, face)
		test.That(t, verts[indices[i+1]].Normal, test.ShouldResemble, face)
		test.That(t, verts[indices[i+2]].Normal, test.ShouldResemble, face)

		centroid := p0.Add(p1).Add(p2).Mul(1.0 / 3.0)
		corner := r3.Vector{X: math.Round(centroid.X), Y: math.Round(centroid.Y), Z: math.Round(centroid.Z)}
		test.That(t, g.Density(int(corner.X), int(corner.Y), int(corner.Z)), test.ShouldAlmostEqual, 1)
		test.That(t, face.Dot(corner.Sub(centroid)), test.ShouldBeLessThan, 0)
	}
	test.That(t, inner, test.ShouldEqual, 4)
}

// inUnitBox reports whether p lies within the central lattice cube of a
// 4x4x4 checkerboard.
func inUnitBox(p r3.Vector) bool {
	return p.X >= 1 && p.X <= 2 && p.Y >= 1 && p.Y <= 2 && p.Z >= 1 && p.Z <= 2
}
