package render

import (
	"image"
	"image/color"
	"math"

	"github.com/openspacech/voronoi-mcp/internal/voronoi"
)

var (
	boundaryColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255} // grey
	markerEdge    = color.NRGBA{R: 255, G: 0, B: 0, A: 255}     // red
)

// drawBoundaries overlays the diagram's boundary segments onto img.
func drawBoundaries(img *image.NRGBA, d *voronoi.Diagram) {
	for _, seg := range d.Boundaries {
		x1, y1 := toPixel(seg.P1, d.Bounds, img)
		x2, y2 := toPixel(seg.P2, d.Bounds, img)
		drawLine(img, x1, y1, x2, y2, boundaryColor)
	}
}

// drawSites overlays each site as a dot in its palette color with a red
// edge ring, scaled to the output size.
func drawSites(img *image.NRGBA, d *voronoi.Diagram) {
	radius := img.Bounds().Dx() / 80
	if radius < 3 {
		radius = 3
	}
	edge := radius + 2

	for _, s := range d.Sites {
		r, g, b := d.Palette[s.ColorIndex].RGB255()
		fill := color.NRGBA{R: r, G: g, B: b, A: 255}
		cx, cy := toPixel(s.Pos, d.Bounds, img)

		for dy := -edge; dy <= edge; dy++ {
			for dx := -edge; dx <= edge; dx++ {
				dist := dx*dx + dy*dy
				if dist > edge*edge {
					continue
				}
				if dist <= radius*radius {
					setPixel(img, cx+dx, cy+dy, fill)
				} else {
					setPixel(img, cx+dx, cy+dy, markerEdge)
				}
			}
		}
	}
}

// toPixel maps a working-area point to image coordinates, flipping Y so
// the working area's origin lands at the bottom-left of the image.
func toPixel(p voronoi.Point, b voronoi.Bounds, img *image.NRGBA) (x, y int) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	x = int(math.Round(p.X / b.Width * float64(w-1)))
	y = (h - 1) - int(math.Round(p.Y/b.Height*float64(h-1)))
	return x, y
}

// drawLine draws a straight line between two pixels. Boundary segments are
// axis-aligned so this degenerates to a simple run, but the DDA form keeps
// it correct for any endpoints.
func drawLine(img *image.NRGBA, x1, y1, x2, y2 int, c color.NRGBA) {
	steps := absInt(x2 - x1)
	if dy := absInt(y2 - y1); dy > steps {
		steps = dy
	}
	if steps == 0 {
		setPixel(img, x1, y1, c)
		return
	}
	for s := 0; s <= steps; s++ {
		x := x1 + (x2-x1)*s/steps
		y := y1 + (y2-y1)*s/steps
		setPixel(img, x, y, c)
	}
}

func setPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
