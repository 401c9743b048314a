// Package markup renders the model's semi-structured result text.
//
// The model is prompted to use exactly three conventions: lines starting
// with "-" are list items, "**text**" marks emphasis, and "→" separates a
// symptom from its explanation. Only these three are transformed; all
// other text is escaped verbatim, so provider-returned content can never
// smuggle markup into the output.
package markup

import (
	"html"
	"regexp"
	"strings"
)

type SpanKind int

const (
	SpanText SpanKind = iota
	SpanStrong
	SpanArrow
)

// Span is a run of text with a single rendering style.
type Span struct {
	Kind SpanKind
	Text string
}

// Line is one rendered line; Bullet lines had their leading "-" consumed.
type Line struct {
	Bullet bool
	Spans  []Span
}

var boldRe = regexp.MustCompile(`\*\*(.*?)\*\*`)

const arrow = "→"

// Parse splits text into lines and spans. It is pure and never fails;
// empty input yields no lines.
func Parse(text string) []Line {
	if text == "" {
		return nil
	}

	rawLines := strings.Split(text, "\n")
	lines := make([]Line, 0, len(rawLines))

	for _, raw := range rawLines {
		var line Line
		content := raw

		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, "-") {
			line.Bullet = true
			content = strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
		}

		line.Spans = parseSpans(content)
		lines = append(lines, line)
	}

	return lines
}

func parseSpans(s string) []Span {
	var spans []Span

	for {
		loc := boldRe.FindStringSubmatchIndex(s)
		if loc == nil {
			return append(spans, textSpans(s)...)
		}

		spans = append(spans, textSpans(s[:loc[0]])...)
		spans = append(spans, Span{Kind: SpanStrong, Text: s[loc[2]:loc[3]]})
		s = s[loc[1]:]
	}
}

// textSpans splits plain text around arrow glyphs.
func textSpans(s string) []Span {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, arrow)
	spans := make([]Span, 0, len(parts))
	for i, part := range parts {
		if i > 0 {
			spans = append(spans, Span{Kind: SpanArrow, Text: arrow})
		}
		if part != "" {
			spans = append(spans, Span{Kind: SpanText, Text: part})
		}
	}

	return spans
}

// RenderHTML renders parsed lines as paragraphs. Text content is
// HTML-escaped; only the three documented substitutions introduce tags.
func RenderHTML(lines []Line) string {
	var b strings.Builder

	for _, line := range lines {
		b.WriteString("<p>")
		if line.Bullet {
			b.WriteString(`<span class="bullet">•</span> `)
		}
		for _, span := range line.Spans {
			switch span.Kind {
			case SpanStrong:
				b.WriteString("<strong>")
				b.WriteString(html.EscapeString(span.Text))
				b.WriteString("</strong>")
			case SpanArrow:
				b.WriteString(`<span class="arrow">→</span>`)
			default:
				b.WriteString(html.EscapeString(span.Text))
			}
		}
		b.WriteString("</p>\n")
	}

	return b.String()
}

// RenderPlain renders parsed lines back to plain text, with bullets as
// "• " and emphasis markers stripped. Plain input round-trips unchanged.
func RenderPlain(lines []Line) string {
	rendered := make([]string, 0, len(lines))

	for _, line := range lines {
		var b strings.Builder
		if line.Bullet {
			b.WriteString("• ")
		}
		for _, span := range line.Spans {
			b.WriteString(span.Text)
		}
		rendered = append(rendered, b.String())
	}

	return strings.Join(rendered, "\n")
}
