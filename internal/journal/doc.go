// Package journal stores one Org outline per day and files entries into it.
//
// Each run is a single load, transform, store cycle: the journal for a date
// is read whole, passed through orgdoc.AppendEntry, and written back whole.
// Nothing is cached between calls.
//
//	store := journal.NewStore(cfg.JournalsDir, cfg.Extension)
//	appender := journal.NewAppender(store, cfg.Heading, orgdoc.Template{OptionsLine: cfg.OptionsLine}, logger)
//	result, err := appender.Append(ctx, journal.Request{Date: "2026-02-05", Project: "worklog", Entry: "did X"})
//
// Concurrent runs against the same journal are not coordinated; the last
// writer wins.
package journal
