// Package format converts loosely formatted model output into typed
// display nodes. Generated advice tends to arrive as a soup of
// markdown-ish markers; Format repairs the common artifacts and
// produces an ordered node sequence ready for embed rendering.
package format

import (
	"regexp"
	"strings"
)

// Span is a run of inline text within a node.
type Span interface {
	Markdown() string
}

type (
	// Text is a plain inline run.
	Text string
	// Strong is an emphasized inline run.
	Strong string
)

// Spans is the inline content of a single node or list item.
type Spans []Span

// Node is one structured display unit derived from a line or a group
// of consecutive lines.
type Node interface {
	Markdown() string
}

// Heading is a level 2 or level 3 section header.
type Heading struct {
	Level int
	Text  Spans
}

// Paragraph is a single line of prose.
type Paragraph Spans

// List is a group of consecutive list lines. Ordered selects numbered
// rendering over bullets.
type List struct {
	Ordered bool
	Items   []Spans
}

// Pre-cleaning patterns, applied to the whole block in order before
// any line handling.
var (
	leadStar   = regexp.MustCompile(`(?m)^\*[ \t]+([^*\s])`)
	ruleLine   = regexp.MustCompile(`(?m)^[ \t]*[*_-]{3,}[ \t]*$`)
	spacedRule = regexp.MustCompile(`(?m)^[ \t]*\*(?:[ \t]+\*){2,}[ \t]*$`)
	wideSpace  = regexp.MustCompile(`[^\S\n]{3,}`)
	starColon  = regexp.MustCompile(`\*+[ \t]*:[ \t]*\*+`)
)

// Line classifiers, tried in order. First match wins.
var (
	h2Line     = regexp.MustCompile(`^##[ \t]+(.+)$`)
	h3Line     = regexp.MustCompile(`^###[ \t]+(.+)$`)
	strongLine = regexp.MustCompile(`^\*\*([^*]+?):?\*\*:?[ \t]*$`)
	bulletLine = regexp.MustCompile(`^[-•*][ \t]+(.+)$`)
	numLine    = regexp.MustCompile(`^\d+[.)][ \t]+(.+)$`)
)

// Inline patterns.
var (
	manyStars = regexp.MustCompile(`\*{3,}`)
	strongRun = regexp.MustCompile(`\*\*(.+?)\*\*`)
	starRuns  = regexp.MustCompile(`\*+`)
)

func clean(s string) string {
	s = leadStar.ReplaceAllString(s, "- $1")
	s = ruleLine.ReplaceAllString(s, "")
	s = spacedRule.ReplaceAllString(s, "")
	s = wideSpace.ReplaceAllString(s, "  ")
	s = starColon.ReplaceAllString(s, ":")
	return s
}

// Format converts a block of text into display nodes. It is total:
// every input yields a valid, possibly empty, sequence. Node order
// follows line order; consecutive list lines of the same kind group
// into one List, and a blank line, a header, a differently typed list
// line, or end of input closes the group.
func Format(content string) []Node {
	var (
		nodes   []Node
		items   []Spans
		ordered bool
		open    bool
	)

	flush := func() {
		if !open {
			return
		}
		nodes = append(nodes, List{Ordered: ordered, Items: items})
		items = nil
		open = false
	}

	item := func(text string, ord bool) {
		if open && ordered != ord {
			flush()
		}
		spans := inline(text)
		if len(spans) == 0 {
			return
		}
		items = append(items, spans)
		ordered = ord
		open = true
	}

	heading := func(level int, text string) {
		flush()
		spans := inline(text)
		if len(spans) == 0 {
			return
		}
		nodes = append(nodes, Heading{Level: level, Text: spans})
	}

	for _, line := range strings.Split(clean(content), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case h2Line.MatchString(line):
			heading(2, h2Line.FindStringSubmatch(line)[1])
		case h3Line.MatchString(line):
			heading(3, h3Line.FindStringSubmatch(line)[1])
		case strongLine.MatchString(line):
			// A fully emphasis-wrapped line acts as a header even
			// without hash markers. Trailing content beyond the
			// wrapped run (plus an optional colon) disqualifies it.
			heading(3, strongLine.FindStringSubmatch(line)[1])
		case bulletLine.MatchString(line):
			item(bulletLine.FindStringSubmatch(line)[1], false)
		case numLine.MatchString(line):
			item(numLine.FindStringSubmatch(line)[1], true)
		default:
			flush()
			if spans := inline(line); len(spans) > 0 {
				nodes = append(nodes, Paragraph(spans))
			}
		}
	}
	flush()
	return nodes
}

// inline splits node text into plain and strong spans. Runs of three
// or more markers collapse to a strong pair first, then non-greedy
// **...** runs become Strong spans. A strong run ending in a colon
// gives the colon up to the following plain span. Marker runs left
// outside strong pairs are generator residue and are dropped.
func inline(s string) Spans {
	s = manyStars.ReplaceAllString(s, "**")

	matches := strongRun.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		if t := starRuns.ReplaceAllString(s, ""); t != "" {
			return Spans{Text(t)}
		}
		return nil
	}

	var spans Spans
	last := 0
	carry := ""
	for _, m := range matches {
		plain := carry + starRuns.ReplaceAllString(s[last:m[0]], "")
		carry = ""
		if plain != "" {
			spans = append(spans, Text(plain))
		}

		strong := s[m[2]:m[3]]
		for strings.HasSuffix(strong, ":") {
			strong = strings.TrimSuffix(strong, ":")
			carry += ":"
		}
		if strong != "" {
			spans = append(spans, Strong(strong))
		}
		last = m[1]
	}
	if tail := carry + starRuns.ReplaceAllString(s[last:], ""); tail != "" {
		spans = append(spans, Text(tail))
	}
	return spans
}

// Plain reconstructs the cleaned text of the spans, without any
// styling distinction.
func (s Spans) Plain() string {
	var b strings.Builder
	for _, span := range s {
		switch v := span.(type) {
		case Text:
			b.WriteString(string(v))
		case Strong:
			b.WriteString(string(v))
		default:
			b.WriteString(span.Markdown())
		}
	}
	return b.String()
}
