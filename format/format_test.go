package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEmpty(t *testing.T) {
	assert.Empty(t, Format(""))
	assert.Empty(t, Format("   "))
	assert.Empty(t, Format("\n\n\n"))
	assert.Empty(t, Format("**"))
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name  string
		input string
		nodes []Node
	}{
		{
			name:  "heading level 2",
			input: "## Soil Health",
			nodes: []Node{Heading{2, Spans{Text("Soil Health")}}},
		},
		{
			name:  "heading level 3",
			input: "### Irrigation",
			nodes: []Node{Heading{3, Spans{Text("Irrigation")}}},
		},
		{
			name:  "bullet list",
			input: "- Apply nitrogen\n- Check pH",
			nodes: []Node{List{Items: []Spans{
				{Text("Apply nitrogen")},
				{Text("Check pH")},
			}}},
		},
		{
			name:  "numbered list",
			input: "1. First step\n2. Second step",
			nodes: []Node{List{Ordered: true, Items: []Spans{
				{Text("First step")},
				{Text("Second step")},
			}}},
		},
		{
			name:  "numbered list with parens",
			input: "1) Sow seeds\n2) Water daily",
			nodes: []Node{List{Ordered: true, Items: []Spans{
				{Text("Sow seeds")},
				{Text("Water daily")},
			}}},
		},
		{
			name:  "star bullets",
			input: "* Mulch beds\n* Rotate crops",
			nodes: []Node{List{Items: []Spans{
				{Text("Mulch beds")},
				{Text("Rotate crops")},
			}}},
		},
		{
			name:  "dot bullets",
			input: "• Drain the field",
			nodes: []Node{List{Items: []Spans{{Text("Drain the field")}}}},
		},
		{
			name:  "strong line is a pseudo header",
			input: "**Warning:**",
			nodes: []Node{Heading{3, Spans{Text("Warning")}}},
		},
		{
			name:  "strong line with outer colon",
			input: "**Key Takeaways**:",
			nodes: []Node{Heading{3, Spans{Text("Key Takeaways")}}},
		},
		{
			name:  "strong prefix with trailing text stays a paragraph",
			input: "**Warning:** Use less water",
			nodes: []Node{Paragraph{Strong("Warning"), Text(": Use less water")}},
		},
		{
			name:  "triple markers normalize to strong",
			input: "Plant health is ***excellent***",
			nodes: []Node{Paragraph{Text("Plant health is "), Strong("excellent")}},
		},
		{
			name:  "stray single markers are dropped",
			input: "yield up by 12%*",
			nodes: []Node{Paragraph{Text("yield up by 12%")}},
		},
		{
			name:  "unpaired double markers are dropped",
			input: "**half open emphasis",
			nodes: []Node{Paragraph{Text("half open emphasis")}},
		},
		{
			name:  "blank line splits lists",
			input: "- one\n- two\n\n- three",
			nodes: []Node{
				List{Items: []Spans{{Text("one")}, {Text("two")}}},
				List{Items: []Spans{{Text("three")}}},
			},
		},
		{
			name:  "list type switch flushes",
			input: "- bullet\n1. numbered",
			nodes: []Node{
				List{Items: []Spans{{Text("bullet")}}},
				List{Ordered: true, Items: []Spans{{Text("numbered")}}},
			},
		},
		{
			name:  "heading flushes an open list",
			input: "- mulch\n## Next Season",
			nodes: []Node{
				List{Items: []Spans{{Text("mulch")}}},
				Heading{2, Spans{Text("Next Season")}},
			},
		},
		{
			name:  "separator lines are removed",
			input: "before\n---\n*****\n* * *\nafter",
			nodes: []Node{
				Paragraph{Text("before")},
				Paragraph{Text("after")},
			},
		},
		{
			name:  "wrapped colon collapses",
			input: "Dose**:**20kg per acre",
			nodes: []Node{Paragraph{Text("Dose:20kg per acre")}},
		},
		{
			name:  "wide whitespace collapses to two spaces",
			input: "npk    ratio",
			nodes: []Node{Paragraph{Text("npk  ratio")}},
		},
		{
			name:  "emphasis inside list items",
			input: "- apply **urea** early\n- keep soil **moist**",
			nodes: []Node{List{Items: []Spans{
				{Text("apply "), Strong("urea"), Text(" early")},
				{Text("keep soil "), Strong("moist")},
			}}},
		},
		{
			name:  "mixed document",
			input: "## Soil Health\nYour pH is **optimal**.\n\n- Add compost\n- Test again in 30 days\n\n**Note:**\n1. Irrigate at dawn",
			nodes: []Node{
				Heading{2, Spans{Text("Soil Health")}},
				Paragraph{Text("Your pH is "), Strong("optimal"), Text(".")},
				List{Items: []Spans{
					{Text("Add compost")},
					{Text("Test again in 30 days")},
				}},
				Heading{3, Spans{Text("Note")}},
				List{Ordered: true, Items: []Spans{{Text("Irrigate at dawn")}}},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.nodes, Format(c.input))
		})
	}
}

func TestFormatTotal(t *testing.T) {
	inputs := []string{
		"", "*", "**", "***", "****:****", ":", "##", "###", "- ", "1. ",
		"* * * * *", "____", "a\x00b", strings.Repeat("*", 100),
		strings.Repeat("- item\n", 50),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Format(in) }, "input %q", in)
	}
}

// Re-formatting the plain reconstruction of unmarked text must not
// drift: plain prose stays a single identical paragraph.
func TestFormatPlainRoundTrip(t *testing.T) {
	input := "Sorghum tolerates drought better than maize."

	nodes := Format(input)
	require.Len(t, nodes, 1)

	p, ok := nodes[0].(Paragraph)
	require.True(t, ok)

	again := Format(Spans(p).Plain())
	assert.Equal(t, nodes, again)
}

func TestSpansPlain(t *testing.T) {
	s := Spans{Strong("Warning"), Text(": irrigate less")}
	assert.Equal(t, "Warning: irrigate less", s.Plain())
}
