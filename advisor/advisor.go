// Package advisor talks to the hosted model gateway. Every command
// surface funnels through here: free-form questions, soil reports,
// pest photos, market estimates and weather narration.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/AgriGophers/dr-agro/weather"
)

// Advisor wraps the gateway client with the two configured models:
// a text model for advice and a vision model for photo diagnosis.
type Advisor struct {
	client *genai.Client
	model  string
	vision string
}

// New dials the gateway. Model names fall back to sensible defaults
// when the config leaves them empty.
func New(ctx context.Context, apiKey, model, vision string) (*Advisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gateway API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if vision == "" {
		vision = model
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create gateway client: %w", err)
	}

	return &Advisor{
		client: client,
		model:  model,
		vision: vision,
	}, nil
}

func (a *Advisor) generate(ctx context.Context, model string, contents []*genai.Content) (string, error) {
	res, err := a.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gateway request failed: %w", err)
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", fmt.Errorf("gateway returned no content")
	}
	return text, nil
}

func (a *Advisor) ask(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	return a.generate(ctx, a.model, contents)
}

// Chat answers a free-form farming question.
func (a *Advisor) Chat(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is required")
	}
	return a.ask(ctx, chatPrompt(question))
}

// Soil turns a validated soil report into fertilizer and crop advice.
func (a *Advisor) Soil(ctx context.Context, r SoilReport) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	return a.ask(ctx, soilPrompt(r))
}

// Pest sends a pest photo to the vision model for diagnosis.
func (a *Advisor) Pest(ctx context.Context, p PestPhoto) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(pestPrompt(p.Note)),
			genai.NewPartFromBytes(p.Image, p.MIME),
		}, genai.RoleUser),
	}
	return a.generate(ctx, a.vision, contents)
}

// Market asks the model for a synthesized price estimate.
func (a *Advisor) Market(ctx context.Context, q MarketQuery) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}
	return a.ask(ctx, marketPrompt(q))
}

// Narrate turns a weather report into spoken-style recommendations.
func (a *Advisor) Narrate(ctx context.Context, r weather.Report) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	return a.ask(ctx, weatherPrompt(r))
}
