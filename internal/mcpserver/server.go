// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes Doctrail's public lookup and AI assist operations as tools via
// stdio transport. Only the unauthenticated surface is exposed: tools see
// public documents exactly the way an anonymous code-holder does.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/doctrail/internal/aiassist"
	"github.com/starford/doctrail/internal/store"
	"github.com/starford/doctrail/internal/tracking"
)

// Server wraps the MCP server with Doctrail tools.
type Server struct {
	mcp       *server.MCPServer
	db        store.RecordStore
	assistant *aiassist.Assistant
}

// New creates a new MCP server with all Doctrail tools registered.
func New(db store.RecordStore, assistant *aiassist.Assistant) *Server {
	s := &Server{db: db, assistant: assistant}

	s.mcp = server.NewMCPServer(
		"Doctrail",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("track_document",
		mcp.WithDescription("Look up a public document by its tracking code (DOC-XXXXXXX). "+
			"Private documents are not resolvable."),
		mcp.WithString("code", mcp.Required(), mcp.Description("Tracking code, case-insensitive")),
	), s.trackDocument)

	s.mcp.AddTool(mcp.NewTool("get_public_document",
		mcp.WithDescription("Fetch a public document by its identifier."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Document identifier")),
	), s.getPublicDocument)

	s.mcp.AddTool(mcp.NewTool("summarize_content",
		mcp.WithDescription("Generate a concise summary of document content. Best-effort: "+
			"returns a fixed fallback message when generation fails."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Raw document content to summarize")),
	), s.summarizeContent)

	s.mcp.AddTool(mcp.NewTool("suggest_category",
		mcp.WithDescription("Suggest a single category label for a document based on its title and description."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Document title")),
		mcp.WithString("description", mcp.Description("Optional document description")),
	), s.suggestCategory)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) trackDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := s.db.ResolveTrackingCode(tracking.Normalize(code))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("no public document found for code %s", tracking.Normalize(code))), nil
	}
	return s.publicDocumentResult(id)
}

func (s *Server) getPublicDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.publicDocumentResult(id)
}

func (s *Server) publicDocumentResult(id string) (*mcp.CallToolResult, error) {
	doc, err := s.db.GetPublicDocument(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	out, _ := json.MarshalIndent(doc, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) summarizeContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(s.assistant.Summarize(ctx, content)), nil
}

func (s *Server) suggestCategory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	description := ""
	if d, err := req.RequireString("description"); err == nil {
		description = d
	}
	return mcp.NewToolResultText(s.assistant.SuggestCategory(ctx, title, description)), nil
}
