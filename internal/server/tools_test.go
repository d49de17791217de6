package server

import "testing"

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"voronoi_generate",
		"voronoi_render",
		"voronoi_palette",
		"voronoi_nearest_site",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			schemaType, ok := tool.InputSchema["type"]
			if !ok || schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want object", schemaType)
			}
			if _, ok := tool.InputSchema["properties"]; !ok {
				t.Error("InputSchema has no properties")
			}
		})
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result type: got %T", resp.Result)
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("tools type: got %T", result["tools"])
	}
	if len(tools) != len(GetToolDefinitions()) {
		t.Errorf("tools count: got %d, want %d", len(tools), len(GetToolDefinitions()))
	}
}
