package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/openspacech/voronoi-mcp/internal/render"
	"github.com/openspacech/voronoi-mcp/internal/voronoi"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "voronoi_generate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "voronoi_generate":
		return s.handleVoronoiGenerate(args)
	case "voronoi_render":
		return s.handleVoronoiRender(args)
	case "voronoi_palette":
		return s.handleVoronoiPalette(args)
	case "voronoi_nearest_site":
		return s.handleVoronoiNearestSite(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// newRand builds the randomness source for one tool call: seeded when the
// request asks for reproducibility, time-seeded otherwise.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// PaletteColor is one palette entry in caller-friendly forms.
type PaletteColor struct {
	Hex string `json:"hex"` // "#RRGGBB"
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
}

func paletteColors(pool []colorful.Color) []PaletteColor {
	out := make([]PaletteColor, len(pool))
	for i, c := range pool {
		r, g, b := c.RGB255()
		out[i] = PaletteColor{Hex: c.Hex(), R: r, G: g, B: b}
	}
	return out
}

// === Generation ===

type voronoiGenerateArgs struct {
	NumSites          int   `json:"num_sites"`
	NumColors         int   `json:"num_colors"`
	GridSize          int   `json:"grid_size"`
	Seed              int64 `json:"seed"`
	IncludeGrid       bool  `json:"include_grid"`
	IncludeBoundaries bool  `json:"include_boundaries"`
}

// GenerateResult summarizes one generation cycle.
type GenerateResult struct {
	NumSites       int                `json:"num_sites"`
	NumColors      int                `json:"num_colors"`
	GridSize       int                `json:"grid_size"`
	Bounds         voronoi.Bounds     `json:"bounds"`
	Sites          []voronoi.Site     `json:"sites"`
	Palette        []PaletteColor     `json:"palette"`
	BoundaryCount  int                `json:"boundary_count"`
	DegradedColors int                `json:"degraded_colors"`
	ColorGrid      [][]int            `json:"color_grid,omitempty"`
	Boundaries     []voronoi.Segment  `json:"boundaries,omitempty"`
}

func (s *Server) handleVoronoiGenerate(args json.RawMessage) (interface{}, error) {
	// Defaults apply only to absent fields; an explicit zero stays zero
	// and fails parameter validation like any other out-of-range value.
	a := voronoiGenerateArgs{NumSites: 20, NumColors: 2}
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}

	d, err := voronoi.Generate(voronoi.Params{
		NumSites:   a.NumSites,
		NumColors:  a.NumColors,
		Resolution: a.GridSize,
		Rand:       newRand(a.Seed),
	})
	if err != nil {
		return nil, err
	}

	if d.DegradedColors > 0 {
		log.Printf("palette degraded: %d slot(s) fell back to gray", d.DegradedColors)
	}

	s.diagram = d

	result := &GenerateResult{
		NumSites:       len(d.Sites),
		NumColors:      len(d.Palette),
		GridSize:       d.Resolution,
		Bounds:         d.Bounds,
		Sites:          d.Sites,
		Palette:        paletteColors(d.Palette),
		BoundaryCount:  len(d.Boundaries),
		DegradedColors: d.DegradedColors,
	}
	if a.IncludeGrid {
		result.ColorGrid = d.ColorGrid
	}
	if a.IncludeBoundaries {
		result.Boundaries = d.Boundaries
	}
	return result, nil
}

// === Rendering ===

type voronoiRenderArgs struct {
	Width          int  `json:"width"`
	Height         int  `json:"height"`
	ShowSites      bool `json:"show_sites"`
	ShowBoundaries bool `json:"show_boundaries"`
	Smooth         bool `json:"smooth"`
}

func (s *Server) handleVoronoiRender(args json.RawMessage) (interface{}, error) {
	var a voronoiRenderArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}
	if s.diagram == nil {
		return nil, fmt.Errorf("no diagram generated yet; call voronoi_generate first")
	}

	return render.Render(s.diagram, render.Options{
		Width:          a.Width,
		Height:         a.Height,
		ShowSites:      a.ShowSites,
		ShowBoundaries: a.ShowBoundaries,
		Smooth:         a.Smooth,
	})
}

// === Palette preview ===

type voronoiPaletteArgs struct {
	NumColors int   `json:"num_colors"`
	Seed      int64 `json:"seed"`
}

// PaletteResult is a standalone palette preview.
type PaletteResult struct {
	NumColors      int            `json:"num_colors"`
	Colors         []PaletteColor `json:"colors"`
	DegradedColors int            `json:"degraded_colors"`
}

func (s *Server) handleVoronoiPalette(args json.RawMessage) (interface{}, error) {
	var a voronoiPaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.NumColors < voronoi.MinColors || a.NumColors > voronoi.MaxColors {
		return nil, &voronoi.ParameterError{
			Param: "num_colors", Value: a.NumColors,
			Min: voronoi.MinColors, Max: voronoi.MaxColors,
		}
	}

	pool, degraded := voronoi.BuildPalette(a.NumColors, newRand(a.Seed))
	if degraded > 0 {
		log.Printf("palette degraded: %d slot(s) fell back to gray", degraded)
	}

	return &PaletteResult{
		NumColors:      len(pool),
		Colors:         paletteColors(pool),
		DegradedColors: degraded,
	}, nil
}

// === Point query ===

type voronoiNearestSiteArgs struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NearestSiteResult identifies the site owning a queried point.
type NearestSiteResult struct {
	Site     voronoi.Site `json:"site"`
	ColorHex string       `json:"color_hex"`
	Distance float64      `json:"distance"`
}

func (s *Server) handleVoronoiNearestSite(args json.RawMessage) (interface{}, error) {
	var a voronoiNearestSiteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.diagram == nil {
		return nil, fmt.Errorf("no diagram generated yet; call voronoi_generate first")
	}
	b := s.diagram.Bounds
	if a.X < 0 || a.X > b.Width || a.Y < 0 || a.Y > b.Height {
		return nil, fmt.Errorf("point (%g, %g) outside working area %gx%g", a.X, a.Y, b.Width, b.Height)
	}

	site := s.diagram.NearestSite(a.X, a.Y)
	return &NearestSiteResult{
		Site:     site,
		ColorHex: s.diagram.Palette[site.ColorIndex].Hex(),
		Distance: math.Hypot(site.Pos.X-a.X, site.Pos.Y-a.Y),
	}, nil
}
