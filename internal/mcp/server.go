// Package mcp exposes the course search engine to AI assistants over the
// Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/justinvassantachart/cs111-interactive-sub002/internal/course"
	apperrors "github.com/justinvassantachart/cs111-interactive-sub002/internal/errors"
	"github.com/justinvassantachart/cs111-interactive-sub002/internal/search"
	"github.com/justinvassantachart/cs111-interactive-sub002/pkg/version"
)

// Server wraps a search session behind an MCP stdio server.
type Server struct {
	session *search.Session
	catalog func() *course.Catalog
	logger  *slog.Logger
	mcp     *mcp.Server
}

// NewServer creates an MCP server over the given session. catalogFn returns
// the currently loaded catalog; it is a function because the watcher may swap
// the catalog while the server runs.
func NewServer(session *search.Session, catalogFn func() *course.Catalog, logger *slog.Logger) (*Server, error) {
	if session == nil {
		return nil, errors.New("search session is required")
	}
	if catalogFn == nil {
		return nil, errors.New("catalog accessor is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		session: session,
		catalog: catalogFn,
		logger:  logger,
	}

	s.mcp = mcp.NewServer(
		&mcp.Implementation{
			Name:    "cs111-search",
			Version: version.Version,
		},
		nil,
	)
	s.registerTools()

	return s, nil
}

// registerTools registers all tools with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_course",
		Description: "Search CS111 course content (lectures, discussion sections, assignments) by free text. Returns up to 10 ranked jump targets with previews and navigation routes.",
	}, s.searchCourseHandler)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "course_status",
		Description: "Report how much course content is loaded and indexed. Use to verify the content directory was found.",
	}, s.courseStatusHandler)

	s.logger.Debug("MCP tools registered", slog.Int("count", 2))
}

// searchCourseHandler is the MCP handler for the search_course tool.
func (s *Server) searchCourseHandler(ctx context.Context, _ *mcp.CallToolRequest, input SearchCourseInput) (
	*mcp.CallToolResult,
	SearchCourseOutput,
	error,
) {
	if input.Query == "" {
		return nil, SearchCourseOutput{}, apperrors.ValidationError("query parameter is required", nil)
	}

	results := s.session.Search(input.Query)
	if input.Limit > 0 && input.Limit < len(results) {
		results = results[:input.Limit]
	}

	output := SearchCourseOutput{Results: make([]CourseResult, 0, len(results))}
	for _, r := range results {
		output.Results = append(output.Results, CourseResult{
			Kind:         string(r.Kind),
			ContentType:  string(r.ContentType),
			ContentID:    r.ContentID,
			Title:        r.LectureTitle,
			SectionID:    r.SectionID,
			SectionTitle: r.SectionTitle,
			Preview:      r.Preview,
			Route:        r.Route,
			Score:        r.Score,
		})
	}

	s.logger.Debug("search_course",
		slog.String("query", input.Query),
		slog.Int("results", len(output.Results)))
	return nil, output, nil
}

// courseStatusHandler is the MCP handler for the course_status tool.
func (s *Server) courseStatusHandler(ctx context.Context, _ *mcp.CallToolRequest, _ CourseStatusInput) (
	*mcp.CallToolResult,
	CourseStatusOutput,
	error,
) {
	catalog := s.catalog()
	return nil, CourseStatusOutput{
		Lectures:     len(catalog.Lectures),
		Sections:     len(catalog.Sections),
		Assignments:  len(catalog.Assignments),
		TotalIndexed: s.session.TotalIndexed(),
	}, nil
}

// Serve runs the server over stdio until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("Starting MCP server", slog.String("transport", "stdio"))

	err := s.mcp.Run(ctx, &mcp.StdioTransport{})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("MCP server stopped with error", slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("MCP server stopped")
	return nil
}
