// Package mesher converts voxel volumes into triangle meshes. It
// provides two extraction strategies: MarchingCubes produces a smooth
// interpolated surface from a density field, and Blocky produces one
// axis-aligned quad per exposed voxel face.
package mesher

// Algorithm selects a surface extraction strategy.
type Algorithm int

const (
	// AlgorithmCubic emits one quad per exposed voxel face.
	AlgorithmCubic Algorithm = 0
	// AlgorithmMarchingCubes emits an interpolated isosurface.
	AlgorithmMarchingCubes Algorithm = 1
)

// String returns a human readable name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmCubic:
		return "cubic"
	case AlgorithmMarchingCubes:
		return "marching_cubes"
	default:
		return "unknown"
	}
}
