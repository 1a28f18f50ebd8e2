package mcp

import (
	"context"
	"fmt"

	"github.com/luuuc/fixture-cli/internal/corpus"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// FixtureURIPrefix is the URI scheme prefix for fixture resources
const FixtureURIPrefix = "fixture://corpus/"

// Server wraps the MCP server with corpus-specific functionality
type Server struct {
	mcp *server.MCPServer
}

// NewServer creates a new MCP server exposing the fixture corpus
func NewServer() *Server {
	s := server.NewMCPServer(
		"fixture",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	srv := &Server{mcp: s}
	srv.registerTools()
	srv.registerResources()

	return srv
}

// ServeStdio starts the server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	// list_fixtures tool
	listFixturesTool := mcp.NewTool("list_fixtures",
		mcp.WithDescription("List all fixtures in the corpus"),
		mcp.WithString("language",
			mcp.Description("Optional language filter (e.g. 'Python', 'C++')"),
		),
	)
	s.mcp.AddTool(listFixturesTool, s.handleListFixtures)

	// get_fixture tool
	getFixtureTool := mcp.NewTool("get_fixture",
		mcp.WithDescription("Get the source of a specific fixture"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The fixture ID (e.g. 'python', 'cpp')"),
		),
	)
	s.mcp.AddTool(getFixtureTool, s.handleGetFixture)
}

func (s *Server) registerResources() {
	// Dynamic resource template for individual fixtures
	template := mcp.NewResourceTemplate(
		FixtureURIPrefix+"{id}",
		"Fixture Source",
		mcp.WithTemplateMIMEType("text/plain"),
		mcp.WithTemplateDescription("Individual source fixture from the corpus"),
	)
	s.mcp.AddResourceTemplate(template, s.handleFixtureResource)
}

func (s *Server) handleListFixtures(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var fixtures []*corpus.Fixture
	var err error

	if language := request.GetString("language", ""); language != "" {
		fixtures, err = corpus.ByLanguage(language)
	} else {
		fixtures, err = corpus.All()
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list fixtures: %v", err)), nil
	}

	if len(fixtures) == 0 {
		return mcp.NewToolResultText("No fixtures match."), nil
	}

	var result string
	for _, f := range fixtures {
		result += fmt.Sprintf("- **%s** (%s, %s): %s\n", f.ID, f.Language, f.Filename, f.Description)
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleGetFixture(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	f, err := corpus.Get(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fixture '%s' not found", id)), nil
	}

	result := fmt.Sprintf("# %s (%s)\n\n```\n%s```\n", f.Filename, f.Language, f.Content)

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleFixtureResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	// Extract ID from URI (fixture://corpus/{id})
	uri := request.Params.URI
	id := extractFixtureID(uri)

	if id == "" {
		return nil, fmt.Errorf("invalid fixture URI: %s", uri)
	}

	f, err := corpus.Get(id)
	if err != nil {
		return nil, fmt.Errorf("fixture '%s' not found", id)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     f.Content,
		},
	}, nil
}

// extractFixtureID extracts the fixture ID from a fixture://corpus/{id} URI
func extractFixtureID(uri string) string {
	if len(uri) > len(FixtureURIPrefix) {
		return uri[len(FixtureURIPrefix):]
	}
	return ""
}
