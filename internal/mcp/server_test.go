package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestExtractFixtureID(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{"fixture://corpus/python", "python"},
		{"fixture://corpus/cpp", "cpp"},
		{"fixture://corpus/", ""},
		{"fixture://corpus", ""},
		{"invalid", ""},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			result := extractFixtureID(tt.uri)
			if result != tt.expected {
				t.Errorf("extractFixtureID(%q) = %q, want %q", tt.uri, result, tt.expected)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	s := NewServer()
	if s == nil {
		t.Fatal("NewServer() returned nil")
	}
	if s.mcp == nil {
		t.Error("NewServer().mcp is nil")
	}
}

func TestHandleListFixtures(t *testing.T) {
	s := NewServer()
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	result, err := s.handleListFixtures(ctx, req)
	if err != nil {
		t.Errorf("handleListFixtures() error = %v", err)
	}
	if result == nil {
		t.Fatal("handleListFixtures() returned nil result")
	}
	if result.IsError {
		t.Error("handleListFixtures() should not error on the embedded corpus")
	}
}

func TestHandleListFixtures_LanguageFilter(t *testing.T) {
	s := NewServer()
	ctx := context.Background()

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"language": "COBOL",
			},
		},
	}

	result, err := s.handleListFixtures(ctx, req)
	if err != nil {
		t.Errorf("handleListFixtures() error = %v", err)
	}
	if result == nil {
		t.Fatal("handleListFixtures() returned nil result")
	}
	if result.IsError {
		t.Error("handleListFixtures() should not error for an unknown language")
	}
}

func TestHandleGetFixture_NotFound(t *testing.T) {
	s := NewServer()
	ctx := context.Background()

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"id": "nonexistent",
			},
		},
	}

	result, err := s.handleGetFixture(ctx, req)
	if err != nil {
		t.Errorf("handleGetFixture() error = %v", err)
	}
	if result == nil {
		t.Fatal("handleGetFixture() returned nil result")
	}
	if !result.IsError {
		t.Error("handleGetFixture() should return error for non-existent fixture")
	}
}

func TestHandleGetFixture_MissingID(t *testing.T) {
	s := NewServer()
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	result, err := s.handleGetFixture(ctx, req)
	if err != nil {
		t.Errorf("handleGetFixture() error = %v", err)
	}
	if result == nil {
		t.Fatal("handleGetFixture() returned nil result")
	}
	if !result.IsError {
		t.Error("handleGetFixture() should return error when id is missing")
	}
}

func TestHandleFixtureResource(t *testing.T) {
	s := NewServer()
	ctx := context.Background()

	req := mcp.ReadResourceRequest{}
	req.Params.URI = FixtureURIPrefix + "python"

	contents, err := s.handleFixtureResource(ctx, req)
	if err != nil {
		t.Fatalf("handleFixtureResource() error = %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("Expected 1 resource content, got %d", len(contents))
	}

	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatal("Expected TextResourceContents")
	}
	if !strings.Contains(text.Text, "TEST_CONSTANT") {
		t.Error("Expected fixture content in resource text")
	}
}

func TestHandleFixtureResource_InvalidURI(t *testing.T) {
	s := NewServer()
	ctx := context.Background()

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "invalid"

	if _, err := s.handleFixtureResource(ctx, req); err == nil {
		t.Error("Expected error for invalid URI")
	}
}
