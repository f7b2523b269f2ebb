package insight

import (
	"regexp"
	"strings"
)

// Model replies wrap JSON in prose or Markdown fences. Extraction tries a
// greedy first-brace-to-last-brace match, then code fences (json-tagged
// first, then any fence).
var jsonObjectRx = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON pulls a candidate JSON object out of a free-form reply.
// The second return is false when no candidate was found.
func ExtractJSON(text string) (string, bool) {
	if m := jsonObjectRx.FindString(text); m != "" {
		return m, true
	}
	if strings.Contains(text, "```json") {
		body := strings.SplitN(text, "```json", 2)[1]
		if i := strings.Index(body, "```"); i >= 0 {
			return strings.TrimSpace(body[:i]), true
		}
		return strings.TrimSpace(body), true
	}
	if strings.Contains(text, "```") {
		segs := strings.Split(text, "```")
		if len(segs) >= 2 && strings.TrimSpace(segs[1]) != "" {
			return strings.TrimSpace(segs[1]), true
		}
	}
	return "", false
}
