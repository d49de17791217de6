// Package server implements the MCP (Model Context Protocol) server for
// the Voronoi diagram generator.
//
// This package provides a JSON-RPC 2.0 server that exposes the diagram
// pipeline to MCP-compatible clients. The client plays the role of the
// interactive front end: it triggers regeneration, chooses overlay
// visibility, and displays the rendered output; all computation stays
// server-side and is exposed purely as data.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - voronoi_generate: Run a full generation cycle (sites, palette,
//     balanced color assignment, grid classification, boundary
//     extraction) and keep the result as the active diagram
//   - voronoi_render: Render the active diagram as base64 PNG with
//     optional site and boundary overlays
//   - voronoi_palette: Preview a standalone color pool
//   - voronoi_nearest_site: Query which site owns a point
//
// # Diagram State
//
// The server holds the single most recently generated diagram.
// voronoi_render and voronoi_nearest_site operate on it without
// recomputing, mirroring how a front end redraws with different toggles.
// A new voronoi_generate call replaces the diagram wholesale.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Out-of-range generation parameters surface here as tool errors; a
// degraded palette (fallback gray slots) is reported in the result and
// logged, never treated as a failure.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
