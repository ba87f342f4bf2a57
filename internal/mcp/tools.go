package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/worklog/internal/draft"
	"github.com/gorewood/worklog/internal/journal"
	"github.com/gorewood/worklog/internal/orgdoc"
)

// AppendInput is the input for the append_entry tool.
type AppendInput struct {
	Date    string `json:"date"              jsonschema:"journal date as YYYY-MM-DD (required)"`
	Project string `json:"project"           jsonschema:"project sub-heading title; an empty string is a valid title (required)"`
	Entry   string `json:"entry"             jsonschema:"entry text, may span several lines (required)"`
	Heading string `json:"heading,omitempty" jsonschema:"override the top-level log heading"`
	Clean   bool   `json:"clean,omitempty"   jsonschema:"strip assistant preamble and sign-off lines from the entry"`
}

// AppendOutput is the output for the append_entry tool.
type AppendOutput struct {
	Path      string           `json:"path"      jsonschema:"journal file that was written"`
	Created   bool             `json:"created"   jsonschema:"true if the journal file was new"`
	Placement orgdoc.Placement `json:"placement" jsonschema:"where the entry was inserted"`
}

func handleAppend(appender *journal.Appender) mcp.ToolHandlerFor[AppendInput, AppendOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AppendInput) (*mcp.CallToolResult, AppendOutput, error) {
		text := input.Entry
		if input.Clean {
			text = draft.StripChatter(text)
		}
		entry, err := draft.ReadAll(draft.NewTextSource(text))
		if err != nil {
			return nil, AppendOutput{}, err
		}

		result, err := appender.Append(ctx, journal.Request{
			Date:    input.Date,
			Project: input.Project,
			Entry:   entry,
			Heading: input.Heading,
		})
		if err != nil {
			return nil, AppendOutput{}, fmt.Errorf("appending entry: %w", err)
		}

		return nil, AppendOutput{
			Path:      result.Path,
			Created:   result.Created,
			Placement: result.Placement,
		}, nil
	}
}

// ShowInput is the input for the show_section tool.
type ShowInput struct {
	Date    string `json:"date"              jsonschema:"journal date as YYYY-MM-DD (required)"`
	Project string `json:"project,omitempty" jsonschema:"project sub-heading; omit for the whole journal"`
	Heading string `json:"heading,omitempty" jsonschema:"override the top-level log heading"`
}

// ShowOutput is the output for the show_section tool.
type ShowOutput struct {
	Path    string `json:"path"    jsonschema:"journal file path"`
	Found   bool   `json:"found"   jsonschema:"false if the journal or section does not exist"`
	Content string `json:"content" jsonschema:"journal or section text"`
}

func handleShow(appender *journal.Appender) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		heading := appender.Heading()
		if input.Heading != "" {
			heading = input.Heading
		}

		view, err := appender.Store().Lookup(input.Date, heading, input.Project)
		if err != nil {
			return nil, ShowOutput{}, err
		}
		return nil, ShowOutput{Path: view.Path, Found: view.Found, Content: view.Content}, nil
	}
}
