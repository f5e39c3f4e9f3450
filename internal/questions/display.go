package questions

import "strings"

// DisplayText strips the bookkeeping that some question banks embed in the
// text: a leading "[Tag]" prefix and a trailing "(Source)" suffix.
//
//	"[Ownership] Tell me about a time you ... (Amazon LP)" -> "Tell me about a time you ..."
func DisplayText(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "[") {
		if end := strings.Index(s, "]"); end > 0 {
			s = strings.TrimSpace(s[end+1:])
		}
	}
	if strings.HasSuffix(s, ")") {
		if start := strings.LastIndex(s, "("); start > 0 {
			s = strings.TrimSpace(s[:start])
		}
	}
	if s == "" {
		return strings.TrimSpace(text)
	}
	return s
}
