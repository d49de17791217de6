package voronoi

// ExtractBoundaries scans the classified grid and emits one segment for
// every adjacent cell pair whose nearest-site index differs.
//
// The scan covers rows and columns 0..G-2 in row-major order, checking
// the horizontal neighbor (i, j+1) before the vertical neighbor (i+1, j)
// for each cell; each adjacent pair is visited exactly once so the output
// needs no deduplication. Segment endpoints use the spacing
// dx = Width/G, dy = Height/G anchored at the cell's lower-left corner,
// matching the raster the grid is displayed through. Canvas-border edges
// are never emitted.
func ExtractBoundaries(indexGrid [][]int, b Bounds) []Segment {
	g := len(indexGrid)
	if g == 0 {
		return nil
	}
	dx := b.Width / float64(g)
	dy := b.Height / float64(g)

	var segments []Segment
	for i := 0; i < g-1; i++ {
		for j := 0; j < g-1; j++ {
			if indexGrid[i][j] != indexGrid[i][j+1] {
				segments = append(segments, Segment{
					P1: Point{X: float64(j) * dx, Y: float64(i) * dy},
					P2: Point{X: float64(j+1) * dx, Y: float64(i) * dy},
				})
			}
			if indexGrid[i][j] != indexGrid[i+1][j] {
				segments = append(segments, Segment{
					P1: Point{X: float64(j) * dx, Y: float64(i) * dy},
					P2: Point{X: float64(j) * dx, Y: float64(i+1) * dy},
				})
			}
		}
	}
	return segments
}
