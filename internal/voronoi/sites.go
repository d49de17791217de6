package voronoi

import "math/rand"

// GenerateSites samples n positions independently and uniformly from the
// working area. Coincident positions are accepted as drawn, never
// resampled; with float64 coordinates collisions are vanishingly rare and
// the classifier's lowest-id tie-break handles them deterministically.
func GenerateSites(n int, b Bounds, rng *rand.Rand) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: rng.Float64() * b.Width,
			Y: rng.Float64() * b.Height,
		}
	}
	return points
}
