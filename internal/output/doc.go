// Package output provides printing and exit-code handling for the worklog CLI.
//
// # Printer
//
// Commands write through a Printer, which switches between human-readable
// and JSON output:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Successfully appended to " + path})
//
// Human output is styled with lipgloss when the writer is a terminal; JSON
// output is one indented object per call.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: usage, missing or empty draft, bad date
//	output.ExitSystemError // 2: I/O failures
//
// Errors built with NewUserError and NewSystemError carry their code up to
// main, where GetExitCode turns them into the process status.
package output
