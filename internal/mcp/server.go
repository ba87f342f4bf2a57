// Package mcp provides a Model Context Protocol server for worklog.
// It lets an agent file work-log entries and read journal sections directly.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/worklog/internal/journal"
)

// NewServer creates an MCP server with all worklog tools registered.
func NewServer(version string, appender *journal.Appender) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "worklog",
		Version: version,
	}, nil)
	registerTools(server, appender)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that add to a journal
// without removing anything.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all worklog tools to the server.
func registerTools(server *mcp.Server, appender *journal.Appender) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "append_entry",
		Description: "Append a work-log entry to the journal for a date. The entry is filed under the log heading " +
			"and a sub-heading named after the project; missing headings are created.",
		Annotations: writeAnnotations(),
	}, handleAppend(appender))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_section",
		Description: "Read the journal for a date, or only one project's section of the work log.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(appender))
}
