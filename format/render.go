package format

import (
	"strconv"
	"strings"
)

func (t Text) Markdown() string {
	return string(t)
}

func (s Strong) Markdown() string {
	return "**" + string(s) + "**"
}

func (s Spans) Markdown() string {
	switch len(s) {
	case 0:
		return ""
	case 1:
		return s[0].Markdown()
	}

	var b strings.Builder
	for _, span := range s {
		b.WriteString(span.Markdown())
	}
	return b.String()
}

func (h Heading) Markdown() string {
	switch h.Level {
	case 2:
		return "__**" + h.Text.Plain() + "**__"
	case 3:
		return "__" + h.Text.Plain() + "__"
	}
	return h.Text.Plain()
}

func (p Paragraph) Markdown() string {
	return Spans(p).Markdown()
}

const bullet = "• "

func (l List) prefix(n int) string {
	if l.Ordered {
		return strconv.Itoa(n) + ". "
	}
	return bullet
}

func (l List) Markdown() string {
	switch len(l.Items) {
	case 0:
		return ""
	case 1:
		return l.prefix(1) + l.Items[0].Markdown()
	}

	var b strings.Builder
	b.WriteString(l.prefix(1))
	b.WriteString(l.Items[0].Markdown())

	for i, item := range l.Items[1:] {
		b.WriteRune('\n')
		b.WriteString(l.prefix(i + 2))
		b.WriteString(item.Markdown())
	}
	return b.String()
}

// Render converts nodes to Discord markdown, stopping once the output
// exceeds limit bytes. The second return reports whether content was
// omitted.
func Render(nodes []Node, limit int) (string, bool) {
	var more bool

	var b strings.Builder
	for _, n := range nodes {
		if b.Len() > limit {
			more = true
			break
		}
		b.WriteString(n.Markdown())
		b.WriteRune('\n')
	}

	if more {
		b.WriteString("*More advice omitted*")
	}
	return b.String(), more
}
