// Package bulletins indexes public crop advisory bulletins so the bot
// can answer keyword searches without a gateway round trip.
package bulletins

import (
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
)

type Bulletin struct {
	Title      string
	titleLower string

	URL    string
	Date   string
	Region string

	Summary      string
	summaryLower string

	Slug string
}

type MatchType uint8

const (
	NoMatch MatchType = iota
	MatchTitle
	MatchSummary
	MatchExact
)

// MatchAll collects bulletins matching the keyword, title matches
// first. An exact slug match short-circuits to a single result.
func MatchAll(bulletins []Bulletin, keyword string) (title []Bulletin, summary []Bulletin, total int) {
	for _, b := range bulletins {
		switch b.Match(keyword) {
		case NoMatch:
			continue
		case MatchExact:
			return []Bulletin{b}, nil, 1
		case MatchTitle:
			title = append(title, b)
		case MatchSummary:
			summary = append(summary, b)
		}
		total++
	}
	return
}

// Match reports how the keyword applies to this bulletin. Every field
// of the keyword must appear in the title or summary.
func (b Bulletin) Match(keyword string) MatchType {
	if b.Slug == keyword {
		return MatchExact
	}

	match := MatchSummary
	for _, s := range strings.Fields(strings.ToLower(keyword)) {
		if strings.Contains(b.titleLower, s) {
			match = MatchTitle
			continue
		}
		if strings.Contains(b.summaryLower, s) {
			continue
		}
		return NoMatch
	}
	return match
}

func (b Bulletin) Display() discord.Embed {
	footer := b.Date
	if b.Region != "" {
		footer = b.Region + "\n" + b.Date
	}
	return discord.Embed{
		Title:       b.Title,
		URL:         b.URL,
		Description: b.Summary,
		Footer: &discord.EmbedFooter{
			Text: footer,
		},
		Color: 0x43A047,
	}
}
