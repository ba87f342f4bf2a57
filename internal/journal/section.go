package journal

import (
	"strings"

	"github.com/gorewood/worklog/internal/orgdoc"
)

// SectionView is the part of a journal a lookup selected.
type SectionView struct {
	Path string `json:"path"`
	// Found is false when the journal or the requested heading is missing.
	Found   bool   `json:"found"`
	Content string `json:"content"`
}

// Lookup returns the journal for date, narrowed to the project's level-2
// section under heading when project is not empty.
func (s *Store) Lookup(date, heading, project string) (*SectionView, error) {
	path, err := s.Path(date)
	if err != nil {
		return nil, err
	}

	content, exists, err := s.Load(date)
	if err != nil {
		return nil, err
	}
	view := &SectionView{Path: path}
	if !exists {
		return view, nil
	}
	if project == "" {
		view.Found = true
		view.Content = content
		return view, nil
	}

	doc := orgdoc.Parse(content)
	l1, ok := doc.Locate(1, heading)
	if !ok {
		return view, nil
	}
	l2, ok := doc.LocateChild(l1, 2, project)
	if !ok {
		return view, nil
	}
	view.Found = true
	view.Content = joinLines(doc.Section(l2))
	return view, nil
}

// joinLines renders lines without trailing blank lines.
func joinLines(lines []orgdoc.Line) string {
	texts := make([]string, 0, len(lines))
	for _, line := range lines {
		texts = append(texts, line.Text)
	}
	return strings.TrimRight(strings.Join(texts, "\n"), "\n \t") + "\n"
}
