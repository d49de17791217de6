package voronoi

import (
	"errors"
	"testing"
)

func TestGenerate_EndToEnd(t *testing.T) {
	d, err := Generate(Params{
		NumSites:   20,
		NumColors:  5,
		Resolution: 40,
		Rand:       testRand(17),
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(d.Sites) != 20 {
		t.Errorf("sites: got %d, want 20", len(d.Sites))
	}
	if len(d.Palette) != 5 {
		t.Errorf("palette: got %d, want 5", len(d.Palette))
	}
	if d.Resolution != 40 || len(d.IndexGrid) != 40 || len(d.ColorGrid) != 40 {
		t.Fatalf("grid shape: resolution %d, %dx%d", d.Resolution, len(d.IndexGrid), len(d.ColorGrid))
	}

	for i, s := range d.Sites {
		if s.ID != i {
			t.Errorf("site %d: id %d", i, s.ID)
		}
		if s.Pos.X < 0 || s.Pos.X > d.Bounds.Width || s.Pos.Y < 0 || s.Pos.Y > d.Bounds.Height {
			t.Errorf("site %d at %+v outside working area", i, s.Pos)
		}
		if s.ColorIndex < 0 || s.ColorIndex >= len(d.Palette) {
			t.Errorf("site %d: color index %d outside [0, %d)", i, s.ColorIndex, len(d.Palette))
		}
	}

	// Consistency invariant across the full grid.
	for i := range d.IndexGrid {
		for j := range d.IndexGrid[i] {
			id := d.IndexGrid[i][j]
			if d.ColorGrid[i][j] != d.Sites[id].ColorIndex {
				t.Fatalf("cell (%d,%d): color %d, want %d", i, j, d.ColorGrid[i][j], d.Sites[id].ColorIndex)
			}
		}
	}

	// Boundary list must match index-grid transitions, recomputed here
	// independently of the extractor.
	transitions := 0
	for i := 0; i < d.Resolution-1; i++ {
		for j := 0; j < d.Resolution-1; j++ {
			if d.IndexGrid[i][j] != d.IndexGrid[i][j+1] {
				transitions++
			}
			if d.IndexGrid[i][j] != d.IndexGrid[i+1][j] {
				transitions++
			}
		}
	}
	if len(d.Boundaries) == 0 || len(d.Boundaries) != transitions {
		t.Errorf("boundaries: got %d, grid has %d transitions", len(d.Boundaries), transitions)
	}
}

func TestGenerate_ClampsColorsToSites(t *testing.T) {
	d, err := Generate(Params{
		NumSites:   10,
		NumColors:  20, // clamped to 10
		Resolution: 20,
		Rand:       testRand(19),
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(d.Palette) != 10 {
		t.Fatalf("palette: got %d colors, want clamp to 10", len(d.Palette))
	}
	// With N == effective K every color is used exactly once.
	counts := make([]int, 10)
	for _, s := range d.Sites {
		counts[s.ColorIndex]++
	}
	for color, count := range counts {
		if count != 1 {
			t.Errorf("color %d used %d times, want exactly 1", color, count)
		}
	}
}

func TestGenerate_InvalidParameters(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		wantParam string
	}{
		{"too few sites", Params{NumSites: 1, NumColors: 2}, "num_sites"},
		{"too many sites", Params{NumSites: 101, NumColors: 5}, "num_sites"},
		{"too few colors", Params{NumSites: 10, NumColors: 1}, "num_colors"},
		{"colors below min after clamp", Params{NumSites: 50, NumColors: 0}, "num_colors"},
		{"resolution too large", Params{NumSites: 10, NumColors: 3, Resolution: 5000}, "grid_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Generate(tt.params)
			if err == nil {
				t.Fatal("expected error, got diagram")
			}
			if d != nil {
				t.Error("partial diagram returned alongside error")
			}

			var perr *ParameterError
			if !errors.As(err, &perr) {
				t.Fatalf("error type: got %T, want *ParameterError", err)
			}
			if perr.Param != tt.wantParam {
				t.Errorf("offending parameter: got %q, want %q", perr.Param, tt.wantParam)
			}
		})
	}
}

func TestGenerate_Defaults(t *testing.T) {
	d, err := Generate(Params{NumSites: 4, NumColors: 2, Resolution: 10, Rand: testRand(23)})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if d.Bounds.Width != DefaultExtent || d.Bounds.Height != DefaultExtent {
		t.Errorf("bounds: got %+v, want default %vx%v", d.Bounds, DefaultExtent, DefaultExtent)
	}
}

func TestDiagram_NearestSite(t *testing.T) {
	d, err := Generate(Params{NumSites: 15, NumColors: 4, Resolution: 20, Rand: testRand(29)})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// The point query and the grid classifier share metric and tie-break,
	// so they must agree at every sample point.
	xs := linspace(0, d.Bounds.Width, d.Resolution)
	ys := linspace(0, d.Bounds.Height, d.Resolution)
	for i := 0; i < d.Resolution; i += 3 {
		for j := 0; j < d.Resolution; j += 3 {
			if got := d.NearestSite(xs[j], ys[i]); got.ID != d.IndexGrid[i][j] {
				t.Errorf("point (%.3f, %.3f): site %d, classifier says %d",
					xs[j], ys[i], got.ID, d.IndexGrid[i][j])
			}
		}
	}

	// A site's own position always maps to itself except for exact
	// coincidences, which resolve to the lower id.
	for _, s := range d.Sites {
		got := d.NearestSite(s.Pos.X, s.Pos.Y)
		if got.ID > s.ID {
			t.Errorf("site %d position resolved to higher id %d", s.ID, got.ID)
		}
	}
}
