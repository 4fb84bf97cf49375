package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/a3tai/pdf-quiz/internal/config"
	"github.com/a3tai/pdf-quiz/internal/descriptions"
	"github.com/a3tai/pdf-quiz/internal/logger"
)

// Tool names
const (
	ToolExtract     = descriptions.QuizExtract
	ToolParseText   = descriptions.QuizParseText
	ToolSample      = descriptions.QuizSample
	ToolCheckAnswer = descriptions.QuizCheckAnswer
)

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	service   *Service
	mcpServer *server.MCPServer
	log       *logger.Logger
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, service *Service, log *logger.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}
	if log == nil {
		log = logger.Nop()
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:    cfg,
		service:   service,
		mcpServer: mcpServer,
		log:       log,
	}
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	extractTool := mcp.NewTool(
		ToolExtract,
		mcp.WithDescription(descriptions.GetToolDescription(ToolExtract)),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("PDF path, relative to the server directory"),
		),
		mcp.WithNumber("start",
			mcp.Description("First page to scan, 1-indexed (default 1)"),
		),
		mcp.WithNumber("end",
			mcp.Description("Last page to scan, inclusive (default: last page)"),
		),
		mcp.WithString("output",
			mcp.Description("Optional .json file to write the question list to"),
		),
	)
	s.mcpServer.AddTool(extractTool, s.handleExtract)

	parseTextTool := mcp.NewTool(
		ToolParseText,
		mcp.WithDescription(descriptions.GetToolDescription(ToolParseText)),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Plain text of one page"),
		),
	)
	s.mcpServer.AddTool(parseTextTool, s.handleParseText)

	sampleTool := mcp.NewTool(
		ToolSample,
		mcp.WithDescription(descriptions.GetToolDescription(ToolSample)),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Question list (.json), relative to the server directory"),
		),
		mcp.WithNumber("size",
			mcp.Required(),
			mcp.Description("Number of questions to draw"),
		),
	)
	s.mcpServer.AddTool(sampleTool, s.handleSample)

	checkTool := mcp.NewTool(
		ToolCheckAnswer,
		mcp.WithDescription(descriptions.GetToolDescription(ToolCheckAnswer)),
		mcp.WithString("record",
			mcp.Required(),
			mcp.Description("The question record as JSON"),
		),
		mcp.WithString("answer",
			mcp.Required(),
			mcp.Description("The submitted answer"),
		),
	)
	s.mcpServer.AddTool(checkTool, s.handleCheckAnswer)
}

// Handler functions
func (s *Server) handleExtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	start, err := intArgument(args, "start", 1)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end, err := intArgument(args, "end", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	output, _ := args["output"].(string)

	result, err := s.service.Extract(ctx, ExtractRequest{Path: path, Start: start, End: end, Output: output})
	if err != nil {
		s.log.Warn("extract tool failed", "path", path, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.jsonResult(s.formatExtractResult(result), result)
}

func (s *Server) handleParseText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.service.ParseText(ParseTextRequest{Text: text})
	summary := fmt.Sprintf("Matched %d block(s): %d valid, %d rejected\n",
		len(result.Outcomes), result.Valid, result.Rejected)
	return s.jsonResult(summary, result)
}

func (s *Server) handleSample(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	if _, ok := args["size"]; !ok {
		return mcp.NewToolResultError("required argument \"size\" not found"), nil
	}
	size, err := intArgument(args, "size", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.Sample(SampleRequest{Path: path, Size: size})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary := fmt.Sprintf("Sampled %d of %d usable question(s) from %s\n",
		len(result.Records), result.Total-result.Dropped, result.Path)
	return s.jsonResult(summary, result)
}

func (s *Server) handleCheckAnswer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	record, err := request.RequireString("record")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	answer, err := request.RequireString("answer")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.CheckAnswer(CheckAnswerRequest{Record: record, Answer: answer})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var summary string
	if result.Correct {
		summary = "Correct!\n"
	} else {
		summary = fmt.Sprintf("Incorrect. The correct answer is: %s\n", result.Expected)
	}
	return s.jsonResult(summary, result)
}

// jsonResult returns a text result made of a readable summary followed by
// the indented JSON payload
func (s *Server) jsonResult(summary string, payload any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(summary + "\n" + string(data)), nil
}

func (s *Server) formatExtractResult(result *ExtractResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Successfully extracted %d questions from %s\n", result.Valid, result.Path)
	fmt.Fprintf(&b, "Pages scanned: %d of %d\n", result.PagesScanned, result.Pages)
	fmt.Fprintf(&b, "Blocks matched: %d (%d rejected)\n", result.Blocks, result.Rejected)
	if result.Output != "" {
		fmt.Fprintf(&b, "Output saved to %s\n", result.Output)
	}
	return b.String()
}

// intArgument reads an optional integer argument. JSON numbers arrive as
// float64.
func intArgument(args map[string]any, key string, def int) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return def, nil
	}

	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("argument %q must be a whole number", key)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("argument %q must be a number", key)
	}
}

// Run serves the tools over standard I/O until the client disconnects
func (s *Server) Run(_ context.Context) error {
	s.log.Info("starting MCP server",
		"mode", s.config.Mode,
		"directory", s.service.Root(),
		"version", s.config.Version,
	)

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
