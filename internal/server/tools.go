package server

import "github.com/openspacech/voronoi-mcp/internal/voronoi"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name: "voronoi_generate",
			Description: "Generate a new discretized Voronoi diagram: random sites, a balanced " +
				"color assignment from a distinct-color palette, a nearest-site grid and the " +
				"cell boundary segments. Replaces any previously generated diagram.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"num_sites": map[string]interface{}{
						"type":        "integer",
						"description": "Number of sites to place (2-100). Default 20",
						"minimum":     voronoi.MinSites,
						"maximum":     voronoi.MaxSites,
						"default":     20,
					},
					"num_colors": map[string]interface{}{
						"type":        "integer",
						"description": "Palette size (2-20); values above num_sites are clamped to it. Default 2",
						"minimum":     voronoi.MinColors,
						"maximum":     voronoi.MaxColors,
						"default":     2,
					},
					"grid_size": map[string]interface{}{
						"type":        "integer",
						"description": "Grid samples per axis. Default 300",
						"default":     voronoi.DefaultResolution,
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Randomness seed for reproducible diagrams. 0 or omitted = time-seeded",
					},
					"include_grid": map[string]interface{}{
						"type":        "boolean",
						"description": "Include the full color grid in the result (large for big grid sizes). Default false",
						"default":     false,
					},
					"include_boundaries": map[string]interface{}{
						"type":        "boolean",
						"description": "Include the boundary segment list in the result. Default false",
						"default":     false,
					},
				},
			},
		},
		{
			Name: "voronoi_render",
			Description: "Render the last generated diagram as a base64-encoded PNG. Site markers " +
				"and boundary lines are drawn only when requested, so the same diagram can be " +
				"re-rendered with different toggles without regenerating.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Output width in pixels. Default: grid size",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Output height in pixels. Default: grid size",
					},
					"show_sites": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw each site as a colored dot with a red edge. Default false",
						"default":     false,
					},
					"show_boundaries": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the extracted cell boundaries in grey. Default false",
						"default":     false,
					},
					"smooth": map[string]interface{}{
						"type":        "boolean",
						"description": "Apply a light Gaussian blur for an anti-aliased preview. Default false",
						"default":     false,
					},
				},
			},
		},
		{
			Name: "voronoi_palette",
			Description: "Build a standalone color pool without generating a diagram: black, white, " +
				"then mutually distinguishable random colors. Useful for previewing palettes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"num_colors": map[string]interface{}{
						"type":        "integer",
						"description": "Palette size (2-20)",
						"minimum":     voronoi.MinColors,
						"maximum":     voronoi.MaxColors,
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Randomness seed. 0 or omitted = time-seeded",
					},
				},
				"required": []string{"num_colors"},
			},
		},
		{
			Name: "voronoi_nearest_site",
			Description: "Look up the site owning a working-area point in the last generated diagram, " +
				"using the same distance metric and tie-break as the grid classifier.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "number",
						"description": "X coordinate in the working area",
					},
					"y": map[string]interface{}{
						"type":        "number",
						"description": "Y coordinate in the working area",
					},
				},
				"required": []string{"x", "y"},
			},
		},
	}
}

// handleToolsList responds to a tools/list request
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
