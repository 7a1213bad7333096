package mesher

import (
	"github.com/golang/geo/r3"

	"github.com/voxelforge/carve/mesh"
	"github.com/voxelforge/carve/voxel"
)

const defaultIsoLevel = 0.5

// MarchingCubes extracts a smooth interpolated isosurface from a density
// field. A corner counts as solid when its density exceeds the iso level,
// so the produced triangles separate material from empty space with
// counter-clockwise winding facing the empty side.
type MarchingCubes struct {
	isoLevel float64
	palette  *mesh.Palette
}

// NewMarchingCubes returns an extractor with the default iso level and
// material palette.
func NewMarchingCubes() *MarchingCubes {
	return &MarchingCubes{
		isoLevel: defaultIsoLevel,
		palette:  mesh.DefaultPalette(),
	}
}

// IsoLevel returns the current surface threshold.
func (mc *MarchingCubes) IsoLevel() float64 {
	return mc.isoLevel
}

// SetIsoLevel changes the surface threshold for subsequent extractions.
func (mc *MarchingCubes) SetIsoLevel(iso float64) {
	mc.isoLevel = iso
}

// Extract marches every lattice cube of the view and returns the
// triangulated isosurface.
func (mc *MarchingCubes) Extract(view voxel.GridView) *mesh.Mesh {
	b := mesh.NewBuilder(0)
	sx, sy, sz := view.SizeX(), view.SizeY(), view.SizeZ()
	for z := 0; z < sz-1; z++ {
		for y := 0; y < sy-1; y++ {
			for x := 0; x < sx-1; x++ {
				mc.polygonize(view, b, x, y, z)
			}
		}
	}
	return b.Build()
}

// polygonize emits the surface triangles for the unit cube anchored at
// (x, y, z).
func (mc *MarchingCubes) polygonize(view voxel.GridView, b *mesh.Builder, x, y, z int) {
	var density [8]float64
	cubeIndex := 0
	for i, off := range cornerOffsets {
		density[i] = view.Density(x+off[0], y+off[1], z+off[2])
		if density[i] > mc.isoLevel {
			cubeIndex |= 1 << i
		}
	}
	edges := edgeTable[cubeIndex]
	if edges == 0 {
		return
	}

	color := mc.cubeColor(view, x, y, z, cubeIndex)

	var points, normals [12]r3.Vector
	for e := 0; e < 12; e++ {
		if edges&(1<<e) == 0 {
			continue
		}
		c1, c2 := edgeCorners[e][0], edgeCorners[e][1]
		t := interpT(mc.isoLevel, density[c1], density[c2])
		points[e] = lerpVec(cornerPosition(x, y, z, c1), cornerPosition(x, y, z, c2), t)

		o1, o2 := cornerOffsets[c1], cornerOffsets[c2]
		g1 := gradientAt(view, x+o1[0], y+o1[1], z+o1[2])
		g2 := gradientAt(view, x+o2[0], y+o2[1], z+o2[2])
		g := lerpVec(g1, g2, t).Mul(-1)
		if g.Norm2() > 0 {
			g = g.Normalize()
		}
		normals[e] = g
	}

	tri := triTable[cubeIndex]
	for i := 0; i+2 < len(tri); i += 3 {
		// swapped so counter-clockwise winding faces the empty side
		e0, e1, e2 := tri[i], tri[i+2], tri[i+1]
		p0, p1, p2 := points[e0], points[e1], points[e2]
		if p0 == p1 || p1 == p2 || p2 == p0 {
			continue
		}
		face := mesh.TriangleNormal(p0, p1, p2, r3.Vector{Y: 1})
		b.AddTriangleVertices(
			mesh.Vertex{Position: p0, Normal: normalOr(normals[e0], face), Color: color},
			mesh.Vertex{Position: p1, Normal: normalOr(normals[e1], face), Color: color},
			mesh.Vertex{Position: p2, Normal: normalOr(normals[e2], face), Color: color},
		)
	}
}

// cubeColor picks the palette color of the first solid corner's material.
func (mc *MarchingCubes) cubeColor(view voxel.GridView, x, y, z, cubeIndex int) mesh.RGB {
	for i, off := range cornerOffsets {
		if cubeIndex&(1<<i) != 0 {
			return mc.palette.Color(view.Material(x+off[0], y+off[1], z+off[2]))
		}
	}
	return mc.palette.Color(0)
}

// interpT locates the iso crossing along an edge as a fraction from the
// first corner toward the second, clamped to the edge.
func interpT(iso, v1, v2 float64) float64 {
	if v1 == v2 {
		return 0.5
	}
	t := (iso - v1) / (v2 - v1)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// gradientAt estimates the density gradient at a lattice point with
// central differences. Out-of-range samples read as zero.
func gradientAt(view voxel.GridView, x, y, z int) r3.Vector {
	return r3.Vector{
		X: view.Density(x+1, y, z) - view.Density(x-1, y, z),
		Y: view.Density(x, y+1, z) - view.Density(x, y-1, z),
		Z: view.Density(x, y, z+1) - view.Density(x, y, z-1),
	}
}

func cornerPosition(x, y, z, corner int) r3.Vector {
	off := cornerOffsets[corner]
	return r3.Vector{X: float64(x + off[0]), Y: float64(y + off[1]), Z: float64(z + off[2])}
}

func lerpVec(a, b r3.Vector, t float64) r3.Vector {
	return a.Add(b.Sub(a).Mul(t))
}

func normalOr(n, fallback r3.Vector) r3.Vector {
	if n.Norm2() == 0 {
		return fallback
	}
	return n
}
