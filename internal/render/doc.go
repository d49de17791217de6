// Package render turns generated Voronoi diagrams into PNG images.
//
// The core pipeline exposes its results purely as data (palette-indexed
// grids, site lists, boundary segments); this package is the display-side
// collaborator that consumes them. The color grid is rasterized through
// the palette as a lookup table, upscaled with nearest-neighbor resampling
// so cell edges stay crisp, and optionally overlaid with site markers and
// boundary lines. Marker and boundary visibility are plain options here;
// interactive toggling lives entirely with the caller.
//
// # Orientation
//
// Grid row 0 is the bottom of the working area while image row 0 is the
// top, so rasterization ends with a vertical flip. Overlay drawing applies
// the same flip when converting working-area coordinates to pixels.
//
// Rendered results are returned as base64-encoded PNG with dimensions,
// ready to embed in protocol responses.
package render
