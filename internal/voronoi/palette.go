package voronoi

import (
	"fmt"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// minColorDistance is the minimum Euclidean distance in normalized
	// RGB space between a generated palette entry and every earlier one.
	minColorDistance = 0.1

	// maxColorAttempts bounds the random draws per palette slot before
	// the slot falls back to gray.
	maxColorAttempts = 100
)

// fallbackGray (#808080) fills a slot whose attempt budget ran out. It is
// exempt from the distance rule.
var fallbackGray = colorful.Color{R: 128.0 / 255.0, G: 128.0 / 255.0, B: 128.0 / 255.0}

// BuildPalette returns an ordered pool of k mutually distinguishable
// colors. Position 0 is always pure black and position 1 pure white; the
// remaining k-2 entries are drawn uniformly at random in RGB space, each
// accepted only if it keeps at least minColorDistance from every
// previously accepted entry (black and white included).
//
// A slot that cannot find a distinct color within maxColorAttempts draws
// receives fallbackGray instead. The degraded count reports how many
// slots fell back; this is a documented quality reduction, never an
// error.
//
// k must be in [MinColors, MaxColors]; BuildPalette panics otherwise.
func BuildPalette(k int, rng *rand.Rand) (pool []colorful.Color, degraded int) {
	if k < MinColors || k > MaxColors {
		panic(fmt.Sprintf("voronoi: palette size %d outside [%d, %d]", k, MinColors, MaxColors))
	}

	pool = make([]colorful.Color, 0, k)
	pool = append(pool,
		colorful.Color{R: 0, G: 0, B: 0},
		colorful.Color{R: 1, G: 1, B: 1},
	)

	for len(pool) < k {
		c, ok := randomDistinctColor(pool, rng)
		if !ok {
			degraded++
		}
		pool = append(pool, c)
	}
	return pool, degraded
}

// randomDistinctColor draws candidates until one clears the distance
// threshold against every existing entry. ok reports whether a candidate
// succeeded; on a false return the fallback gray is handed back.
func randomDistinctColor(existing []colorful.Color, rng *rand.Rand) (c colorful.Color, ok bool) {
	for attempt := 0; attempt < maxColorAttempts; attempt++ {
		c = colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
		if distinctFrom(c, existing) {
			return c, true
		}
	}
	return fallbackGray, false
}

func distinctFrom(c colorful.Color, existing []colorful.Color) bool {
	for _, e := range existing {
		if c.DistanceRgb(e) < minColorDistance {
			return false
		}
	}
	return true
}
