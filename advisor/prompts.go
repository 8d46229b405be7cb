package advisor

import (
	"fmt"
	"strings"

	"github.com/AgriGophers/dr-agro/weather"
)

// The display layer understands headings, bullets, numbered steps and
// bold runs, so every prompt pins the model to that subset.
const stylePreamble = `You are an agricultural advisor for smallholder farmers.
Answer in short plain language. Use only this formatting: "##" section
headings, "-" bullet points, numbered steps, and **bold** for key terms.
No tables, no links, no code blocks.`

func chatPrompt(question string) string {
	var b strings.Builder
	b.WriteString(stylePreamble)
	b.WriteString("\n\nQuestion from the farmer:\n")
	b.WriteString(question)
	return b.String()
}

func soilPrompt(r SoilReport) string {
	var b strings.Builder
	b.WriteString(stylePreamble)
	b.WriteString("\n\nA farmer growing ")
	b.WriteString(r.Crop)
	b.WriteString(" shares a soil test:\n")
	fmt.Fprintf(&b, "- pH: %.1f\n", r.PH)
	fmt.Fprintf(&b, "- Nitrogen: %.0f kg/ha\n", r.Nitrogen)
	fmt.Fprintf(&b, "- Phosphorus: %.0f kg/ha\n", r.Phosphorus)
	fmt.Fprintf(&b, "- Potassium: %.0f kg/ha\n", r.Potassium)
	fmt.Fprintf(&b, "- Moisture: %.0f%%\n", r.Moisture)
	b.WriteString("\nAssess the soil for this crop and recommend amendments with doses.")
	return b.String()
}

func pestPrompt(note string) string {
	var b strings.Builder
	b.WriteString(stylePreamble)
	b.WriteString("\n\nThe attached photo shows a possibly affected crop.")
	if note = strings.TrimSpace(note); note != "" {
		b.WriteString(" The farmer adds: ")
		b.WriteString(note)
	}
	b.WriteString("\nIdentify the pest or disease, how confident you are, and organic and chemical treatment options.")
	return b.String()
}

func marketPrompt(q MarketQuery) string {
	var b strings.Builder
	b.WriteString(stylePreamble)
	fmt.Fprintf(&b, "\n\nEstimate the current price range for %s in %s", q.Crop, q.Region)
	if q.Market != "" {
		fmt.Fprintf(&b, " on a %s basis", q.Market)
	}
	b.WriteString(`.
Give a per-quintal range, the trend over the last month, and whether to
sell now or hold. State clearly that figures are estimates.`)
	return b.String()
}

func weatherPrompt(r weather.Report) string {
	var b strings.Builder
	b.WriteString(stylePreamble)
	fmt.Fprintf(&b, "\n\nCurrent weather in %s: %s, %.0f°C, wind %.0f km/h, humidity %.0f%%.\n",
		r.Place, r.Condition, r.TempC, r.WindKPH, r.Humidity)
	for _, d := range r.Days {
		fmt.Fprintf(&b, "- %s: %s, %.0f to %.0f°C, %.0f mm rain\n",
			d.Date, d.Condition, d.MinC, d.MaxC, d.RainMM)
	}
	b.WriteString("\nGive field-work recommendations for the next few days: irrigation, spraying windows, harvesting risk.")
	return b.String()
}
