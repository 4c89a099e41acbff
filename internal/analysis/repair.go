package analysis

import "strings"

// stripFence removes at most one leading and one trailing Markdown code
// fence from a completion. Models frequently wrap their JSON answer in a
// ```json block despite being told not to. This is a thin tolerance
// layer, not a repair engine: anything beyond the outermost fence pair is
// left for the parser to reject.
func stripFence(raw string) string {
	out := strings.TrimSpace(raw)

	if strings.HasPrefix(out, "```") {
		rest := out[3:]
		if i := strings.IndexByte(rest, '\n'); i >= 0 && isLanguageTag(rest[:i]) {
			rest = rest[i+1:]
		}
		out = rest
	}

	out = strings.TrimSpace(out)
	if strings.HasSuffix(out, "```") {
		out = out[:len(out)-3]
	}

	return strings.TrimSpace(out)
}

// isLanguageTag reports whether the remainder of a fence line looks like a
// language tag ("json", "JSON", "") rather than actual content.
func isLanguageTag(s string) bool {
	s = strings.TrimSpace(s)
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
