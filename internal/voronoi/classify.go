package voronoi

import (
	"fmt"
	"math"
)

// ClassifyGrid assigns every grid cell to its nearest site and returns the
// two parallel grids of one generation cycle.
//
// The sample point of cell (i, j) is (x[j], y[i]) where x and y are g
// evenly spaced coordinates spanning the working area, inclusive of both
// edges. Nearest is by squared Euclidean distance; an exact distance tie
// resolves to the lowest site id. IndexGrid holds the winning site id,
// ColorGrid that site's color index, so
// colorGrid[i][j] == sites[indexGrid[i][j]].ColorIndex always holds.
//
// The scan is O(g^2 * len(sites)). For the supported site counts (<= 100)
// a brute-force scan beats a spatial index on constant factors; swapping
// one in must preserve the distance metric and tie-break exactly.
func ClassifyGrid(b Bounds, g int, sites []Site) (indexGrid, colorGrid [][]int) {
	if g < 2 {
		panic(fmt.Sprintf("voronoi: grid resolution %d, need at least 2", g))
	}
	if len(sites) == 0 {
		panic("voronoi: cannot classify grid with no sites")
	}

	xs := linspace(0, b.Width, g)
	ys := linspace(0, b.Height, g)

	indexGrid = make([][]int, g)
	colorGrid = make([][]int, g)
	for i := 0; i < g; i++ {
		indexGrid[i] = make([]int, g)
		colorGrid[i] = make([]int, g)
		for j := 0; j < g; j++ {
			id := nearestSiteID(sites, xs[j], ys[i])
			indexGrid[i][j] = id
			colorGrid[i][j] = sites[id].ColorIndex
		}
	}
	return indexGrid, colorGrid
}

// nearestSiteID scans sites in id order; the strict comparison keeps the
// first minimum, so exact ties go to the lowest id regardless of how the
// surrounding cells are ordered or parallelized.
func nearestSiteID(sites []Site, x, y float64) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, s := range sites {
		dx := s.Pos.X - x
		dy := s.Pos.Y - y
		if dist := dx*dx + dy*dy; dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

// linspace returns n evenly spaced values covering [lo, hi] inclusive.
func linspace(lo, hi float64, n int) []float64 {
	vals := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	vals[n-1] = hi
	return vals
}
