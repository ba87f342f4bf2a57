package journal

import (
	"context"
	"log/slog"

	"github.com/gorewood/worklog/internal/orgdoc"
	"github.com/gorewood/worklog/internal/output"
)

// Request is one entry to file.
type Request struct {
	// Date selects the journal, in DateLayout.
	Date string
	// Project is the level-2 heading title.
	Project string
	// Entry is the text to insert. It must not be empty.
	Entry string
	// Heading overrides the appender's level-1 title when set.
	Heading string
	// DryRun computes the result without writing the journal.
	DryRun bool
}

// Result describes a completed append.
type Result struct {
	Path      string           `json:"path"`
	Placement orgdoc.Placement `json:"placement"`
	// Created is true when the journal file did not exist before.
	Created bool `json:"created"`
	// Content is the full journal text after the append.
	Content string `json:"-"`
	DryRun  bool   `json:"dry_run,omitempty"`
}

// Appender files entries into journals held by a Store.
type Appender struct {
	store   *Store
	heading string
	tmpl    orgdoc.Template
	logger  *slog.Logger
}

// NewAppender creates an Appender. heading is the default level-1 title and
// tmpl seeds journals that do not exist yet. A nil logger discards logs.
func NewAppender(store *Store, heading string, tmpl orgdoc.Template, logger *slog.Logger) *Appender {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Appender{store: store, heading: heading, tmpl: tmpl, logger: logger}
}

// Store returns the underlying store.
func (a *Appender) Store() *Store {
	return a.store
}

// Heading returns the default level-1 title.
func (a *Appender) Heading() string {
	return a.heading
}

// Append loads the journal, files the entry, and writes the journal back.
// All validation happens before anything is written.
func (a *Appender) Append(ctx context.Context, req Request) (*Result, error) {
	if req.Entry == "" {
		return nil, output.NewUserError("entry is empty")
	}

	path, err := a.store.Path(req.Date)
	if err != nil {
		return nil, err
	}

	content, exists, err := a.store.Load(req.Date)
	if err != nil {
		return nil, err
	}

	doc := orgdoc.Document{}
	if exists {
		doc = orgdoc.Parse(content)
	}

	heading := a.heading
	if req.Heading != "" {
		heading = req.Heading
	}

	updated, placement := orgdoc.AppendEntry(doc, orgdoc.Path{Level1: heading, Level2: req.Project}, req.Entry, a.tmpl)
	a.logger.DebugContext(ctx, "entry placed",
		"path", path,
		"heading", heading,
		"project", req.Project,
		"outcome", placement.Outcome,
		"line", placement.Line,
	)

	result := &Result{
		Path:      path,
		Placement: placement,
		Created:   !exists,
		Content:   updated.String(),
		DryRun:    req.DryRun,
	}
	if req.DryRun {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := a.store.Save(req.Date, result.Content); err != nil {
		return nil, err
	}
	a.logger.InfoContext(ctx, "journal updated", "path", path, "created", result.Created)
	return result, nil
}
