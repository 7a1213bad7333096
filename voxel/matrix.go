package voxel

import "gonum.org/v1/gonum/mat"

// SliceMatrix copies one z-slice of a view's densities into a dense
// matrix with rows indexed by y and columns by x, for inspecting fields
// layer by layer. Returns nil when the view has no cells in x or y;
// out-of-range slices come back zero-filled per the view contract.
func SliceMatrix(view GridView, z int) *mat.Dense {
	sx, sy := view.SizeX(), view.SizeY()
	if sx == 0 || sy == 0 {
		return nil
	}
	m := mat.NewDense(sy, sx, nil)
	for y := 0; y < sy; y++ {
		for x := 0; x < sx; x++ {
			m.Set(y, x, view.Density(x, y, z))
		}
	}
	return m
}
