package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/openspacech/voronoi-mcp/internal/voronoi"
)

// smoothRadius is the Gaussian blur radius used by Options.Smooth.
const smoothRadius = 1.5

// Options control how a diagram is turned into pixels.
type Options struct {
	// Width and Height are the output size in pixels. Zero values default
	// to the diagram's grid resolution (one pixel per cell).
	Width  int
	Height int

	// ShowSites draws each site as a colored dot with a red edge.
	ShowSites bool

	// ShowBoundaries draws the extracted boundary segments in grey.
	ShowBoundaries bool

	// Smooth applies a light Gaussian blur to the raster before any
	// overlays, trading crisp cell edges for an anti-aliased preview.
	Smooth bool
}

// Result contains a rendered diagram encoded as base64 PNG.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Rasterize converts the diagram's color grid into an image, one pixel per
// grid cell, looking each cell up in the diagram's palette. The result is
// flipped so the working area's bottom row ends up at the bottom of the
// image.
func Rasterize(d *voronoi.Diagram) *image.NRGBA {
	g := d.Resolution
	img := image.NewNRGBA(image.Rect(0, 0, g, g))
	for i := 0; i < g; i++ {
		for j := 0; j < g; j++ {
			r, gr, b := d.Palette[d.ColorGrid[i][j]].RGB255()
			img.SetNRGBA(j, i, color.NRGBA{R: r, G: gr, B: b, A: 255})
		}
	}
	return imaging.FlipV(img)
}

// Render produces a PNG of the diagram at the requested size with the
// requested overlays.
func Render(d *voronoi.Diagram, opts Options) (*Result, error) {
	w := opts.Width
	if w <= 0 {
		w = d.Resolution
	}
	h := opts.Height
	if h <= 0 {
		h = d.Resolution
	}

	img := Rasterize(d)
	if w != d.Resolution || h != d.Resolution {
		// Nearest neighbor matches the discretized nature of the grid;
		// interpolating filters would invent colors outside the palette.
		img = imaging.Resize(img, w, h, imaging.NearestNeighbor)
	}

	if opts.Smooth {
		img = imaging.Clone(blur.Gaussian(img, smoothRadius))
	}

	if opts.ShowBoundaries {
		drawBoundaries(img, d)
	}
	if opts.ShowSites {
		drawSites(img, d)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode diagram: %w", err)
	}

	return &Result{
		Width:       w,
		Height:      h,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
