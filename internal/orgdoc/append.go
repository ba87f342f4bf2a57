package orgdoc

// Outcome names the branch AppendEntry took.
type Outcome string

// Outcomes of AppendEntry.
const (
	// CreatedDocument means the document was empty and was built from the
	// template.
	CreatedDocument Outcome = "created-document"
	// CreatedLevel1 means the level-1 heading was missing and was added, with
	// its level-2 heading, below any leading metadata lines. The level-1
	// heading, level-2 heading and entry are three consecutive lines; no
	// blank line separates them from the content that follows.
	CreatedLevel1 Outcome = "created-level1"
	// CreatedLevel2 means the level-2 heading was added at the head of the
	// existing level-1 section.
	CreatedLevel2 Outcome = "created-level2"
	// Appended means the entry went to the tail of an existing level-2 section.
	Appended Outcome = "appended"
)

// Path is the two-level heading key an entry is filed under.
type Path struct {
	Level1 string
	Level2 string
}

// Template holds what a freshly created document starts with.
type Template struct {
	// OptionsLine is written as the first line of a new document.
	// Empty means no metadata line.
	OptionsLine string
}

// Placement describes where AppendEntry put the entry.
type Placement struct {
	Outcome Outcome `json:"outcome"`
	// Line is the 0-based index of the entry's first line in the result.
	Line int `json:"line"`
}

// AppendEntry files entry under path and returns the new document.
//
// The input document is not modified. Missing headings are created; no
// existing line is moved or reordered. A multi-line entry is spliced as
// consecutive lines.
func AppendEntry(doc Document, path Path, entry string, tmpl Template) (Document, Placement) {
	entryLines := LinesOf(entry)

	if doc.IsEmpty() {
		return newDocument(path, entryLines, tmpl)
	}

	l1, ok := doc.Locate(1, path.Level1)
	if !ok {
		at := doc.leadingMetadata()
		lines := append([]Line{headingLine(1, path.Level1), headingLine(2, path.Level2)}, entryLines...)
		return doc.insert(at, lines...), Placement{Outcome: CreatedLevel1, Line: at + 2}
	}

	l2, ok := doc.LocateChild(l1, 2, path.Level2)
	if !ok {
		at := l1 + 1
		lines := append([]Line{headingLine(2, path.Level2)}, entryLines...)
		return doc.insert(at, lines...), Placement{Outcome: CreatedLevel2, Line: at + 1}
	}

	at := doc.SectionEnd(l2)
	for at > l2+1 && doc.Lines[at-1].IsBlank() {
		at--
	}
	return doc.insert(at, entryLines...), Placement{Outcome: Appended, Line: at}
}

// newDocument builds the template document: metadata line, both headings,
// the entry, and a trailing newline.
func newDocument(path Path, entryLines []Line, tmpl Template) (Document, Placement) {
	var lines []Line
	if tmpl.OptionsLine != "" {
		lines = append(lines, ClassifyLine(tmpl.OptionsLine))
	}
	lines = append(lines, headingLine(1, path.Level1), headingLine(2, path.Level2))
	start := len(lines)
	lines = append(lines, entryLines...)
	lines = append(lines, Line{})
	return Document{Lines: lines}, Placement{Outcome: CreatedDocument, Line: start}
}
