package markdown

import (
	"regexp"
	"strings"
)

// Span is a run of inline text with its emphasis flags.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	Link   string
}

var (
	inlineSimple = regexp.MustCompile("(\\*\\*[^*]+\\*\\*|\\*[^*]+\\*|`[^`]+`)")
	inlineFull   = regexp.MustCompile("(\\[[^\\]]+\\]\\([^)]+\\)|\\*\\*[^*]+\\*\\*|__[^_]+__|`[^`]+`|\\*[^*]+\\*|_[^_]+_)")
	inlineLink   = regexp.MustCompile(`^\[([^\]]+)\]\(([^)]+)\)$`)
)

// SplitInline splits text into spans. Marker characters are removed from
// formatted spans; plain text between them is kept as is.
func SplitInline(text string, d Dialect) []Span {
	re := inlineFull
	if d == Simple {
		re = inlineSimple
	}

	var spans []Span
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			spans = append(spans, Span{Text: text[last:loc[0]]})
		}
		spans = append(spans, formatted(text[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}

func formatted(m string) Span {
	switch {
	case strings.HasPrefix(m, "["):
		if sub := inlineLink.FindStringSubmatch(m); sub != nil {
			return Span{Text: sub[1], Link: sub[2]}
		}
	case strings.HasPrefix(m, "**"), strings.HasPrefix(m, "__"):
		return Span{Text: m[2 : len(m)-2], Bold: true}
	case strings.HasPrefix(m, "`"):
		return Span{Text: m[1 : len(m)-1], Code: true}
	case strings.HasPrefix(m, "*"), strings.HasPrefix(m, "_"):
		return Span{Text: m[1 : len(m)-1], Italic: true}
	}
	return Span{Text: m}
}

// PlainText concatenates the text of spans.
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
