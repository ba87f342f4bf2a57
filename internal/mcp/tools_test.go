package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/worklog/internal/journal"
	"github.com/gorewood/worklog/internal/orgdoc"
)

// --- Test helpers ---

const testDate = "2026-02-05"

func makeTestAppender(t *testing.T) (*journal.Appender, string) {
	t.Helper()
	dir := t.TempDir()
	store := journal.NewStore(dir, ".org")
	return journal.NewAppender(store, "Claude 作業ログ", orgdoc.Template{OptionsLine: "#+OPTIONS: ^:{}"}, nil), dir
}

func readJournal(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, testDate+".org"))
	if err != nil {
		t.Fatalf("reading journal: %v", err)
	}
	return string(data)
}

// --- append_entry ---

func TestHandleAppend_NewJournal(t *testing.T) {
	appender, dir := makeTestAppender(t)
	handler := handleAppend(appender)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, AppendInput{
		Date:    testDate,
		Project: "alpha",
		Entry:   "did X\n",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Created {
		t.Error("Created = false, want true")
	}
	if out.Placement.Outcome != orgdoc.CreatedDocument {
		t.Errorf("Outcome = %q, want %q", out.Placement.Outcome, orgdoc.CreatedDocument)
	}

	want := "#+OPTIONS: ^:{}\n* Claude 作業ログ\n** alpha\ndid X\n"
	if got := readJournal(t, dir); got != want {
		t.Errorf("journal = %q, want %q", got, want)
	}
}

func TestHandleAppend_EmptyProject(t *testing.T) {
	appender, dir := makeTestAppender(t)
	handler := handleAppend(appender)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, AppendInput{
		Date:  testDate,
		Entry: "did X",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Placement.Outcome != orgdoc.CreatedDocument {
		t.Errorf("Outcome = %q, want %q", out.Placement.Outcome, orgdoc.CreatedDocument)
	}

	want := "#+OPTIONS: ^:{}\n* Claude 作業ログ\n** \ndid X\n"
	if got := readJournal(t, dir); got != want {
		t.Errorf("journal = %q, want %q", got, want)
	}
}

func TestHandleAppend_Clean(t *testing.T) {
	appender, dir := makeTestAppender(t)
	handler := handleAppend(appender)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, AppendInput{
		Date:    testDate,
		Project: "alpha",
		Entry:   "Here is the entry:\n\n- did X\n\nLet me know if that works.",
		Clean:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "#+OPTIONS: ^:{}\n* Claude 作業ログ\n** alpha\n- did X\n"
	if got := readJournal(t, dir); got != want {
		t.Errorf("journal = %q, want %q", got, want)
	}
}

func TestHandleAppend_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input AppendInput
	}{
		{name: "empty entry", input: AppendInput{Date: testDate, Project: "p", Entry: "\n"}},
		{name: "bad date", input: AppendInput{Date: "tomorrow", Project: "p", Entry: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appender, dir := makeTestAppender(t)
			handler := handleAppend(appender)

			if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, tt.input); err == nil {
				t.Fatal("expected error")
			}
			if _, err := os.Stat(filepath.Join(dir, testDate+".org")); !os.IsNotExist(err) {
				t.Errorf("journal written despite error: %v", err)
			}
		})
	}
}

// --- show_section ---

func TestHandleShow(t *testing.T) {
	appender, _ := makeTestAppender(t)
	ctx := context.Background()

	_, _, err := handleAppend(appender)(ctx, &mcp.CallToolRequest{}, AppendInput{Date: testDate, Project: "alpha", Entry: "did X"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	handler := handleShow(appender)

	_, out, err := handler(ctx, &mcp.CallToolRequest{}, ShowInput{Date: testDate, Project: "alpha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Found || out.Content != "** alpha\ndid X\n" {
		t.Errorf("show = %+v", out)
	}

	_, out, err = handler(ctx, &mcp.CallToolRequest{}, ShowInput{Date: testDate, Project: "beta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Found {
		t.Error("Found = true for a missing project")
	}

	_, out, err = handler(ctx, &mcp.CallToolRequest{}, ShowInput{Date: testDate, Project: "alpha", Heading: "Other"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Found {
		t.Error("Found = true under a different heading")
	}
}

// --- server wiring ---

func TestNewServer_ListsTools(t *testing.T) {
	appender, _ := makeTestAppender(t)
	server := NewServer("test", appender)
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer serverSession.Close() //nolint:errcheck // test cleanup

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close() //nolint:errcheck // test cleanup

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}

	names := make(map[string]bool)
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"append_entry", "show_section"} {
		if !names[want] {
			t.Errorf("tool %q not registered", want)
		}
	}
}
