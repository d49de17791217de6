package main

import (
	"fmt"
	"log"
	"os"

	"github.com/openspacech/voronoi-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("voronoi-mcp %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Print(`voronoi-mcp generates discretized Voronoi diagrams for MCP clients.

The server speaks JSON-RPC 2.0 over stdin/stdout and exposes tools to
generate a diagram (random sites, balanced color assignment, nearest-site
grid, cell boundaries), render it as PNG, preview palettes, and query
which site owns a point. Register the binary with your MCP client; it
takes no positional arguments.

  --version, -v   print version and exit
  --help, -h      print this text and exit

Set VORONOI_MCP_LOG_LEVEL=debug for startup diagnostics on stderr.
`)
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("VORONOI_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Voronoi MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
