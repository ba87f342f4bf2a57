package orgdoc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// HeadingMarker is repeated at the start of a heading line; the repeat
	// count is the heading level.
	HeadingMarker = '*'

	// MetadataPrefix starts a document-metadata line such as "#+OPTIONS:".
	MetadataPrefix = "#+"
)

// Line is a single line of an outline document.
type Line struct {
	// Text is the raw line without its terminating newline.
	Text string
	// Level is the heading level, or 0 for a plain line.
	Level int
	// Title is the heading text after the markers. Empty for plain lines.
	Title string
}

// IsHeading reports whether the line is a heading.
func (l Line) IsHeading() bool {
	return l.Level > 0
}

// IsBlank reports whether the line is empty or whitespace only.
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// IsMetadata reports whether the line is a document-metadata line.
func (l Line) IsMetadata() bool {
	return strings.HasPrefix(l.Text, MetadataPrefix)
}

// ClassifyLine parses a single line of text.
//
// A heading is one or more markers, at least one whitespace rune, then the
// title. The whitespace run after the markers is not part of the title; the
// rest of the line is kept verbatim. "**" and "*bold*" are plain lines.
func ClassifyLine(text string) Line {
	level := 0
	for level < len(text) && text[level] == HeadingMarker {
		level++
	}
	if level == 0 {
		return Line{Text: text}
	}

	rest := text[level:]
	r, size := utf8.DecodeRuneInString(rest)
	if size == 0 || !unicode.IsSpace(r) {
		return Line{Text: text}
	}

	return Line{
		Text:  text,
		Level: level,
		Title: strings.TrimLeftFunc(rest, unicode.IsSpace),
	}
}

// HeadingText renders a heading line for the given level and title.
// The title is written as-is; it is never re-parsed.
func HeadingText(level int, title string) string {
	return strings.Repeat(string(HeadingMarker), level) + " " + title
}

// headingLine builds a classified heading Line without going through
// ClassifyLine, so the title is kept exactly as given.
func headingLine(level int, title string) Line {
	return Line{Text: HeadingText(level, title), Level: level, Title: title}
}
