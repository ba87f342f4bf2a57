package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	worklogmcp "github.com/gorewood/worklog/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run worklog as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "worklog": {
        "command": "worklog",
        "args": ["serve"]
      }
    }
  }

Available tools: append_entry, show_section`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadAppEnv(cmd)
			if err != nil {
				newPrinter(cmd).Error(err)
				return err
			}
			env.logger.Info("serving MCP over stdio", "journals_dir", env.cfg.JournalsDir)
			server := worklogmcp.NewServer(buildVersion(), env.appender)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
