// Package ipc exposes the installers to the UI process over an MCP stdio
// server. Each target gets its own install tool; every tool call returns
// the install Result serialized as JSON, so failures travel as data rather
// than protocol errors.
package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"termtint/internal/installer"
	"termtint/internal/theme"
)

// Server wraps the MCP server with the theme source the installers read.
type Server struct {
	mcp    *server.MCPServer
	source theme.Source
	apply  bool
	logger *log.Logger
}

// New builds the IPC server and registers one install tool per target plus
// the platform and detection queries.
func New(src theme.Source, apply bool, logger *log.Logger, version string) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			"termtint",
			version,
			server.WithToolCapabilities(false),
		),
		source: src,
		apply:  apply,
		logger: logger,
	}

	for _, target := range installer.Targets() {
		inst, _ := installer.ForTarget(target, src, apply)
		s.mcp.AddTool(
			mcp.NewTool(toolName(target),
				mcp.WithDescription(fmt.Sprintf("Install a stored theme into %s", inst.Name())),
				mcp.WithString("theme_id",
					mcp.Required(),
					mcp.Description("Identifier of the theme to install"),
				),
			),
			s.installHandler(target, inst),
		)
	}

	s.mcp.AddTool(
		mcp.NewTool("get_platform",
			mcp.WithDescription("Report the host platform: macos, windows, or linux"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(installer.Platform()), nil
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("detect_themes",
			mcp.WithDescription("List themes already installed in terminal configs"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			data, err := json.Marshal(installer.DetectInstalled())
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(string(data)), nil
		},
	)

	return s
}

// ServeStdio blocks serving requests on stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) installHandler(target string, inst installer.Installer) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		themeID, err := req.RequireString("theme_id")
		if err != nil {
			return mcp.NewToolResultError("theme_id parameter is required"), nil
		}

		res := inst.Install(themeID)
		s.logger.Info("install",
			"target", target,
			"theme", themeID,
			"success", res.Success,
		)

		data, err := json.Marshal(res)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// toolName maps a target identifier onto its MCP tool name, e.g.
// "windows-terminal" becomes "install_windows_terminal".
func toolName(target string) string {
	return "install_" + strings.ReplaceAll(target, "-", "_")
}
