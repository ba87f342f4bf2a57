// Package orgdoc locates and edits sections of a line-oriented Org outline.
//
// It recognizes only what the journal needs: heading lines ("*", "**", ...
// followed by whitespace and a title) and document-metadata lines ("#+").
// Every other line is opaque content that is copied verbatim.
//
// # Sections
//
// A section starts at a heading of level L and runs until the next heading
// whose level is <= L, or the end of the document. Sections are never
// materialized; they are computed from a start index on demand:
//
//	doc := orgdoc.Parse(content)
//	if idx, ok := doc.Locate(2, "proj"); ok {
//		end := doc.SectionEnd(idx)
//		body := doc.Lines[idx+1 : end]
//	}
//
// # Appending
//
// AppendEntry finds or creates a two-level heading path and splices an entry
// into it. New level-2 headings go to the head of their level-1 section so
// the newest project is first; entries for an existing level-2 heading go to
// the tail of that subsection, ahead of any trailing blank lines.
package orgdoc
