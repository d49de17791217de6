package voronoi

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Parameter limits for a generation cycle.
const (
	MinSites  = 2
	MaxSites  = 100
	MinColors = 2
	MaxColors = 20

	// DefaultResolution is the number of grid samples per axis.
	DefaultResolution = 300

	// MaxResolution caps the grid so a single cycle stays cheap.
	MaxResolution = 2048

	// DefaultExtent is the side length of the default working square.
	DefaultExtent = 10.0
)

// Point is a position in working-area coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Site is one of the generator points defining the diagram's cells.
//
// Sites are created once per generation cycle and never mutated; a new
// cycle replaces them wholesale.
type Site struct {
	ID         int   `json:"id"`          // Index in generation order, [0, N)
	Pos        Point `json:"position"`    // Position in the working area
	ColorIndex int   `json:"color_index"` // Index into the diagram's palette, [0, K)
}

// Segment is a unit grid edge marking a detected cell boundary crossing.
type Segment struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

// Bounds is the working area: a Width x Height rectangle anchored at the
// origin. Sites are sampled inside it and the grid spans it.
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Params configures a generation cycle.
type Params struct {
	// NumSites is the number of sites to place, in [MinSites, MaxSites].
	NumSites int

	// NumColors is the requested palette size, in [MinColors, MaxColors].
	// Values above NumSites are clamped to NumSites before validation;
	// the clamp is documented behavior, not an error.
	NumColors int

	// Resolution is the number of grid samples per axis. Zero selects
	// DefaultResolution.
	Resolution int

	// Bounds is the working area. The zero value selects the default
	// DefaultExtent x DefaultExtent square.
	Bounds Bounds

	// Rand is the randomness source for site placement, palette
	// generation and color distribution. Nil selects a time-seeded
	// source; tests inject a seeded one for reproducible output.
	Rand *rand.Rand
}

// ParameterError reports a generation parameter outside its documented
// range. No partial outputs are produced alongside it.
type ParameterError struct {
	Param    string // Parameter name as exposed to callers
	Value    int    // Offending value (after any documented clamping)
	Min, Max int    // Allowed inclusive range
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter %s = %d outside allowed range [%d, %d]", e.Param, e.Value, e.Min, e.Max)
}

// Diagram holds the complete output of one generation cycle. It is owned
// by the caller; the package keeps no state between cycles.
type Diagram struct {
	// Bounds is the working area the diagram was generated for.
	Bounds Bounds

	// Resolution is the number of grid samples per axis (G).
	Resolution int

	// Sites are the generator points in id order.
	Sites []Site

	// Palette is the ordered color pool; Sites[i].ColorIndex and
	// ColorGrid entries index into it.
	Palette []colorful.Color

	// IndexGrid[i][j] is the id of the site nearest to grid cell (i, j).
	// Row-major, row 0 at the bottom of the working area.
	IndexGrid [][]int

	// ColorGrid[i][j] is Sites[IndexGrid[i][j]].ColorIndex, precomputed
	// so renderers can treat the grid as a palette-indexed raster.
	ColorGrid [][]int

	// Boundaries are the grid edges where the nearest site changes, in
	// scan order.
	Boundaries []Segment

	// DegradedColors counts palette slots that fell back to gray after
	// exhausting the random-draw budget. Zero in the common case.
	DegradedColors int
}

// Generate runs one full generation cycle: sites, palette, color
// assignment, grid classification and boundary extraction, in that order,
// synchronously to completion.
//
// NumColors is first clamped to NumSites. After clamping, out-of-range
// parameters abort the cycle with a *ParameterError and no outputs.
func Generate(p Params) (*Diagram, error) {
	n := p.NumSites
	k := p.NumColors
	if k > n {
		k = n
	}
	if n < MinSites || n > MaxSites {
		return nil, &ParameterError{Param: "num_sites", Value: n, Min: MinSites, Max: MaxSites}
	}
	if k < MinColors || k > MaxColors {
		return nil, &ParameterError{Param: "num_colors", Value: k, Min: MinColors, Max: MaxColors}
	}

	g := p.Resolution
	if g == 0 {
		g = DefaultResolution
	}
	if g < 2 || g > MaxResolution {
		return nil, &ParameterError{Param: "grid_size", Value: g, Min: 2, Max: MaxResolution}
	}

	b := p.Bounds
	if b.Width <= 0 || b.Height <= 0 {
		b = Bounds{Width: DefaultExtent, Height: DefaultExtent}
	}

	rng := p.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	positions := GenerateSites(n, b, rng)
	pool, degraded := BuildPalette(k, rng)
	assignment := DistributeColors(n, k, rng)

	sites := make([]Site, n)
	for i, pos := range positions {
		sites[i] = Site{ID: i, Pos: pos, ColorIndex: assignment[i]}
	}

	indexGrid, colorGrid := ClassifyGrid(b, g, sites)
	boundaries := ExtractBoundaries(indexGrid, b)

	return &Diagram{
		Bounds:         b,
		Resolution:     g,
		Sites:          sites,
		Palette:        pool,
		IndexGrid:      indexGrid,
		ColorGrid:      colorGrid,
		Boundaries:     boundaries,
		DegradedColors: degraded,
	}, nil
}

// NearestSite returns the site closest to the given working-area point,
// using the same squared-distance metric and lowest-id tie-break as the
// grid classifier.
func (d *Diagram) NearestSite(x, y float64) Site {
	best := 0
	bestDist := math.MaxFloat64
	for i, s := range d.Sites {
		dx := s.Pos.X - x
		dy := s.Pos.Y - y
		if dist := dx*dx + dy*dy; dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return d.Sites[best]
}
