// Package draft provides the entry text that gets filed into a journal.
//
// A Source is read once, before the journal is touched, and consumed only
// after the journal write succeeds:
//
//	src := draft.NewFileSource("/tmp/draft.md")
//	entry, err := src.Read() // missing or empty drafts are user errors
//	...
//	err = src.Consume()      // deletes the draft file
//
// Sources:
//  1. FileSource - a draft file, deleted on Consume
//  2. ClipboardSource - the system clipboard
//  3. TextSource - literal text (MCP callers)
package draft
