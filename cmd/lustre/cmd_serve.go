package main

import (
	"context"

	"github.com/spf13/cobra"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"lustre/internal/compare"
	"lustre/internal/logging"
	mcpserver "lustre/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing generate_content,
validate_product, and compare_products tools.

The server monitors for parent process death and self-terminates when its
client disconnects, preventing zombie server processes.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	engine := buildEngine(cmd, false)
	srv := mcpserver.NewServer(engine, compare.NewScorer(cfg.ScorerThresholds()), cfg.OutputDir)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting lustre MCP server over stdio (parent watchdog active)")
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
