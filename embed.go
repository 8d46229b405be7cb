package main

import (
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/AgriGophers/dr-agro/format"
)

const (
	adviceLimit    = 2800
	collapsedLimit = 1000

	accentColor = 0x2E7D32
	errorColor  = 0xEE0000
)

// adviceEmbed renders model output through the formatter into an
// embed. The second return reports whether advice was truncated.
func adviceEmbed(title, advice string, full bool) (discord.Embed, bool) {
	limit := collapsedLimit
	if full {
		limit = adviceLimit
	}

	desc, more := format.Render(format.Format(advice), limit)
	return discord.Embed{
		Title:       title,
		Description: desc,
		Color:       accentColor,
	}, more
}

func failEmbed(title, description string) discord.Embed {
	return discord.Embed{
		Title:       title,
		Description: description,
		Color:       errorColor,
	}
}
