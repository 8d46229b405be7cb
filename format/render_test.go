package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeMarkdown(t *testing.T) {
	cases := []struct {
		name string
		node Node
		md   string
	}{
		{
			name: "heading level 2",
			node: Heading{2, Spans{Text("Soil Health")}},
			md:   "__**Soil Health**__",
		},
		{
			name: "heading level 3",
			node: Heading{3, Spans{Text("Warning")}},
			md:   "__Warning__",
		},
		{
			name: "paragraph with emphasis",
			node: Paragraph{Text("pH is "), Strong("optimal")},
			md:   "pH is **optimal**",
		},
		{
			name: "bullet list",
			node: List{Items: []Spans{{Text("compost")}, {Text("mulch")}}},
			md:   "• compost\n• mulch",
		},
		{
			name: "numbered list",
			node: List{Ordered: true, Items: []Spans{{Text("sow")}, {Text("water")}}},
			md:   "1. sow\n2. water",
		},
		{
			name: "empty list",
			node: List{},
			md:   "",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.md, c.node.Markdown())
		})
	}
}

func TestRender(t *testing.T) {
	nodes := Format("## Advice\n- irrigate at dawn\n- mulch beds")

	md, more := Render(nodes, 1000)
	assert.False(t, more)
	assert.Equal(t, "__**Advice**__\n• irrigate at dawn\n• mulch beds\n", md)
}

func TestRenderLimit(t *testing.T) {
	long := strings.Repeat("All work and no play makes a dull crop rotation. ", 10)
	nodes := Format(long + "\n\n" + long + "\n\n" + long)

	md, more := Render(nodes, 600)
	assert.True(t, more)
	assert.True(t, strings.HasSuffix(md, "*More advice omitted*"))
	assert.Less(t, len(md), 3*len(long))
}
