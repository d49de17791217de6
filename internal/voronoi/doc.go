// Package voronoi computes discretized planar Voronoi diagrams.
//
// The package implements a sampled-grid approximation rather than exact
// continuous cell geometry: the working area is sampled on a G x G grid,
// every sample point is classified by its nearest site, and cell
// boundaries are read off as the grid edges where the nearest-site index
// changes. For the site counts this package targets (2-100 sites) the
// approximation is visually indistinguishable from the exact diagram at
// moderate resolutions (~300 samples per axis).
//
// # Coordinate System
//
// All positions are in working-area coordinates, a WxH rectangle anchored
// at the origin (10x10 by default). Grid row 0 corresponds to the bottom
// of the working area and rows grow upward; callers converting to image
// coordinates must flip vertically.
//
// # Pipeline
//
// A generation cycle runs five stages in order:
//
//  1. GenerateSites: sample N uniform site positions
//  2. BuildPalette: black, white, then K-2 mutually distinct random colors
//  3. DistributeColors: balanced site-to-color assignment
//  4. ClassifyGrid: nearest-site index and color for every grid cell
//  5. ExtractBoundaries: segments at every nearest-site transition
//
// Generate runs the full cycle and returns a fresh Diagram; prior cycles
// are never mutated or mixed into the next one.
//
// # Randomness
//
// Every stochastic stage takes an explicit *rand.Rand so callers can seed
// for reproducible output. Classification and boundary extraction are
// deterministic given their inputs: exact nearest-site distance ties
// always resolve to the lowest site id.
//
// # Error Handling
//
// Generate validates its parameters and returns *ParameterError for
// out-of-range values. The individual pipeline stages treat invalid
// arguments (e.g. more colors than sites reaching the distributor) as
// programming errors and panic rather than return silently wrong output.
package voronoi
