package orgdoc

import (
	"slices"
	"strings"
)

// Document is an outline held as an ordered list of classified lines.
type Document struct {
	Lines []Line
}

// Parse splits content on newlines and classifies every line.
// A trailing newline produces a final empty line, so String reproduces the
// input byte for byte.
func Parse(content string) Document {
	raw := strings.Split(content, "\n")
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = ClassifyLine(text)
	}
	return Document{Lines: lines}
}

// String joins the document lines with newlines.
func (d Document) String() string {
	texts := make([]string, len(d.Lines))
	for i, line := range d.Lines {
		texts[i] = line.Text
	}
	return strings.Join(texts, "\n")
}

// Len returns the number of lines.
func (d Document) Len() int {
	return len(d.Lines)
}

// IsEmpty reports whether the document has no content at all.
func (d Document) IsEmpty() bool {
	return len(d.Lines) == 0 || (len(d.Lines) == 1 && d.Lines[0].Text == "")
}

// Locate returns the index of the first heading with exactly the given level
// and title. Titles compare byte for byte.
func (d Document) Locate(level int, title string) (int, bool) {
	return d.locateIn(level, title, 0, len(d.Lines))
}

// LocateChild is Locate restricted to the section of the heading at parent.
// It never matches the parent line itself.
func (d Document) LocateChild(parent, level int, title string) (int, bool) {
	return d.locateIn(level, title, parent+1, d.SectionEnd(parent))
}

// locateIn is Locate restricted to the half-open range [from, to).
func (d Document) locateIn(level int, title string, from, to int) (int, bool) {
	for i := from; i < to; i++ {
		line := d.Lines[i]
		if line.Level == level && line.Title == title {
			return i, true
		}
	}
	return -1, false
}

// SectionEnd returns the exclusive end of the section that starts at the
// heading at index start: the first later heading whose level is <= the
// start heading's level, or Len() if there is none.
func (d Document) SectionEnd(start int) int {
	level := d.Lines[start].Level
	for i := start + 1; i < len(d.Lines); i++ {
		if d.Lines[i].IsHeading() && d.Lines[i].Level <= level {
			return i
		}
	}
	return len(d.Lines)
}

// Section returns the lines of the section starting at start, heading
// included.
func (d Document) Section(start int) []Line {
	return d.Lines[start:d.SectionEnd(start)]
}

// leadingMetadata returns the number of metadata lines at the very top.
func (d Document) leadingMetadata() int {
	n := 0
	for n < len(d.Lines) && d.Lines[n].IsMetadata() {
		n++
	}
	return n
}

// insert returns a copy of the document with lines spliced in at index at.
func (d Document) insert(at int, lines ...Line) Document {
	return Document{Lines: slices.Insert(slices.Clone(d.Lines), at, lines...)}
}

// LinesOf splits multi-line text into classified lines.
func LinesOf(text string) []Line {
	return Parse(text).Lines
}
