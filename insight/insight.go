// Package insight asks a Gemini model for personalized financial tips.
package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/renderer"
	"google.golang.org/genai"
)

// Config holds the assistant settings, read from the environment.
type Config struct {
	Model string `env:"FINCALC_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// LoadConfig parses the assistant settings from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Generator generates content from a model. *genai.Models implements it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ErrNoAnswer is returned when the model answers with no text.
var ErrNoAnswer = errors.New("no answer from the model")

const instruction = `You are a financial planning assistant for Indian households.
You receive the user's net worth statement and, sometimes, a SIP projection, both in markdown.
Amounts are in Indian Rupees.

Give between 3 and 5 concise, actionable tips in a markdown list, based only on the figures given.
Refer to the figures when it helps. Never recommend a specific security, fund or institution.
If the statement is empty, explain what to fill in first.`

// Advisor asks a model for tips about a net worth sheet and a SIP plan.
type Advisor struct {
	gen   Generator
	model string
	log   *slog.Logger
}

// NewAdvisor returns an advisor using the given model.
func NewAdvisor(gen Generator, model string, logger *slog.Logger) *Advisor {
	return &Advisor{gen: gen, model: model, log: logger}
}

// Prompt builds the user prompt from the reports of the calculators. sip is optional.
func Prompt(s *fincalc.NetWorthSheet, monthlyExpenses float64, sip *fincalc.SIPResult) string {
	var b strings.Builder
	b.WriteString(renderer.RenderNetWorth(renderer.NewNetWorth(s, monthlyExpenses)))
	if monthlyExpenses > 0 {
		fmt.Fprintf(&b, "\nMonthly expenses: %s\n", fincalc.INR(monthlyExpenses).Format(0))
	}
	if sip != nil {
		b.WriteString("\n")
		b.WriteString(renderer.RenderSIP(renderer.NewSIP(*sip)))
	}
	return b.String()
}

// Tips returns the model's tips, in markdown.
func (a *Advisor) Tips(ctx context.Context, s *fincalc.NetWorthSheet, monthlyExpenses float64, sip *fincalc.SIPResult) (string, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: Prompt(s, monthlyExpenses, sip)}},
	}}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}

	a.log.DebugContext(ctx, "Asking for tips", "model", a.model)
	resp, err := a.gen.GenerateContent(ctx, a.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("cannot generate tips with %s: %w", a.model, err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrNoAnswer
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrNoAnswer
	}
	a.log.DebugContext(ctx, "Tips received", "model", a.model, "length", b.Len())
	return b.String(), nil
}
