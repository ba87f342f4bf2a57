package draft

import (
	"strings"
)

// TrimEntry removes trailing newlines. Everything else, including leading
// blank lines and trailing spaces on the last line, is kept.
func TrimEntry(content string) string {
	return strings.TrimRight(content, "\n")
}

// chatterPrefixes are assistant framing lines that sometimes end up at the
// top of a draft written by an agent. Matched case-insensitively.
var chatterPrefixes = []string{
	"here is",
	"here's",
	"sure,",
	"sure!",
	"certainly",
	"i'll ",
	"i've ",
	"let me ",
	"以下",
}

// signoffPrefixes are assistant sign-offs at the bottom of a draft.
var signoffPrefixes = []string{
	"let me know",
	"hope this helps",
	"would you like",
	"feel free to",
	"if you need",
}

// StripChatter removes assistant framing lines from the top and bottom of
// an agent-written draft. At most two leading lines are stripped so real
// content that happens to start with a prefix survives.
func StripChatter(content string) string {
	lines := strings.Split(TrimEntry(content), "\n")

	start := 0
	for start < len(lines) && start < 2 {
		line := strings.TrimSpace(lines[start])
		if line != "" && !hasAnyPrefix(line, chatterPrefixes) {
			break
		}
		start++
	}

	end := len(lines)
	for end > start {
		line := strings.TrimSpace(lines[end-1])
		if line != "" && !hasAnyPrefix(line, signoffPrefixes) {
			break
		}
		end--
	}

	return strings.Join(lines[start:end], "\n")
}

// hasAnyPrefix checks line against prefixes, ignoring case.
func hasAnyPrefix(line string, prefixes []string) bool {
	lower := strings.ToLower(line)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}
