package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/vedantwpatil/color-picker/internal/colorx"
	"github.com/vedantwpatil/color-picker/internal/output"
	"github.com/vedantwpatil/color-picker/internal/screen"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing color sampling tools",
	Long: `Start a Model Context Protocol server with two tools:

  sample_color      color at a point, or under the cursor
  cursor_position   current cursor position

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport

Examples:
  colorpicker mcp
  colorpicker mcp --transport streamable-http --port 8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		s := newMCPServer(app.sampler, app.tracker, app.format())
		switch transport {
		case "stdio":
			return mcpserver.ServeStdio(s.mcp)
		case "streamable-http":
			return mcpserver.NewStreamableHTTPServer(s.mcp).Start(fmt.Sprintf(":%d", port))
		default:
			return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
		}
	},
}

func init() {
	mcpCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	mcpCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

type colorSampler interface {
	SampleErr(screen.Point) (colorx.Color, error)
}

type cursorLocator interface {
	Current() (screen.Point, error)
}

type mcpServer struct {
	sampler colorSampler
	cursor  cursorLocator
	format  output.Format
	mcp     *mcpserver.MCPServer
}

func newMCPServer(sampler colorSampler, cursor cursorLocator, format output.Format) *mcpServer {
	s := &mcpServer{
		sampler: sampler,
		cursor:  cursor,
		format:  format,
		mcp: mcpserver.NewMCPServer(
			"colorpicker",
			"1.0.0",
			mcpserver.WithToolCapabilities(true),
		),
	}

	s.mcp.AddTool(
		mcp.NewTool("sample_color",
			mcp.WithDescription("Sample the screen color at a point, or under the mouse cursor when no point is given. Returns hex, rgb and hsl."),
			mcp.WithNumber("x", mcp.Description("X coordinate, bottom-left origin")),
			mcp.WithNumber("y", mcp.Description("Y coordinate, bottom-left origin")),
		),
		s.handleSample,
	)
	s.mcp.AddTool(
		mcp.NewTool("cursor_position",
			mcp.WithDescription("Report the mouse cursor position in bottom-left screen coordinates."),
		),
		s.handleCursor,
	)
	return s
}

func (s *mcpServer) handleSample(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	x, hasX := params["x"].(float64)
	y, hasY := params["y"].(float64)

	var p screen.Point
	switch {
	case hasX && hasY:
		p = screen.Point{X: x, Y: y}
	case hasX || hasY:
		return mcp.NewToolResultError("x and y must be given together"), nil
	default:
		cur, err := s.cursor.Current()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		p = cur
	}

	c, err := s.sampler.SampleErr(p)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.result(output.NewSample(p, c, time.Now()))
}

func (s *mcpServer) handleCursor(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := s.cursor.Current()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.result(p)
}

func (s *mcpServer) result(v interface{}) (*mcp.CallToolResult, error) {
	text, err := output.Marshal(v, s.format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}
