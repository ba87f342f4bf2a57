package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gorewood/worklog/internal/orgdoc"
)

// Printer handles formatted output to a writer.
// It supports both JSON and human-readable output modes.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Key     lipgloss.Style
	Muted   lipgloss.Style
	// Headings is indexed by outline level minus one; deeper levels reuse
	// the last style.
	Headings []lipgloss.Style
	Meta     lipgloss.Style
}

// newStyles returns colored styles, or plain ones when color is off.
func newStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Error:    plain,
			Success:  plain,
			Warning:  plain,
			Key:      plain,
			Muted:    plain,
			Headings: []lipgloss.Style{plain},
			Meta:     plain,
		}
	}
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),           // Cyan
		Muted:   lipgloss.NewStyle().Faint(true),
		Headings: []lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // Blue
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")), // Magenta
			lipgloss.NewStyle().Foreground(lipgloss.Color("14")),            // Cyan
		},
		Meta: lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // Gray
	}
}

// NewPrinter creates a new Printer.
// If jsonMode is true, output will be JSON formatted.
// If isTTY is true, colors will be enabled for human output.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: newStyles(isTTY),
	}
}

// WithStderr sets a separate writer for errors and warnings in human mode.
// In JSON mode, errors still go to the main writer.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// Success outputs a success result.
// JSON mode writes data as an object; human mode prints the "message" key,
// or every key when there is none.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.WriteJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
		return nil
	}

	for key, val := range data {
		p.KeyValue(key, fmt.Sprint(val))
	}
	return nil
}

// Error outputs an error.
// JSON mode writes {"error": "...", "code": N} to the main writer; human
// mode writes a styled line to the error writer.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Error(), exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Error()))
}

// Warn outputs a warning message.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.WriteJSON(map[string]any{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// KeyValue renders "key: value".
func (p *Printer) KeyValue(key string, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}

// Outline prints outline text with headings and metadata lines styled.
// Without color the text is written unchanged.
func (p *Printer) Outline(content string) {
	content = strings.TrimSuffix(content, "\n")
	if !p.isTTY {
		mustWrite(fmt.Fprintln(p.w, content))
		return
	}

	for _, line := range orgdoc.LinesOf(content) {
		mustWrite(fmt.Fprintln(p.w, p.styleLine(line)))
	}
}

// styleLine picks the style for one outline line.
func (p *Printer) styleLine(line orgdoc.Line) string {
	switch {
	case line.IsHeading():
		idx := min(line.Level, len(p.styles.Headings)) - 1
		return p.styles.Headings[idx].Render(line.Text)
	case line.IsMetadata():
		return p.styles.Meta.Render(line.Text)
	default:
		return line.Text
	}
}

// WriteJSON encodes any data as indented JSON.
func (p *Printer) WriteJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N}
func ErrorJSON(message string, code int) []byte {
	result, _ := json.Marshal(map[string]any{
		"error": message,
		"code":  code,
	})
	return result
}

// mustWrite panics if a write to stdout, stderr, or a buffer fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
