package insight

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/etnz/fincalc"
	"google.golang.org/genai"
)

// fakeGenerator records the request and answers with parts.
type fakeGenerator struct {
	parts []string
	err   error

	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.contents, f.config = model, contents, config
	if f.err != nil {
		return nil, f.err
	}
	resp := &genai.GenerateContentResponse{}
	if f.parts != nil {
		c := &genai.Content{Role: "model"}
		for _, p := range f.parts {
			c.Parts = append(c.Parts, &genai.Part{Text: p})
		}
		resp.Candidates = []*genai.Candidate{{Content: c}}
	}
	return resp, nil
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestPrompt(t *testing.T) {
	s := fincalc.NewNetWorthSheet()
	s.SetAsset(fincalc.Home, "250000")
	s.SetLiability(fincalc.CarLoans, "15000")

	got := Prompt(s, 0, nil)
	if !strings.Contains(got, "# Net Worth") || !strings.Contains(got, "Car Loans") {
		t.Errorf("Prompt() misses the net worth report:\n%s", got)
	}
	if strings.Contains(got, "SIP Projection") || strings.Contains(got, "Monthly expenses") {
		t.Errorf("Prompt() mentions data that was not given:\n%s", got)
	}

	r := fincalc.Project(fincalc.DefaultSIPParameters)
	got = Prompt(s, 20000, &r)
	if !strings.Contains(got, "# SIP Projection") || !strings.Contains(got, "Monthly expenses: ₹20,000") {
		t.Errorf("Prompt() misses the SIP projection or the expenses:\n%s", got)
	}
}

func TestAdvisor_Tips(t *testing.T) {
	gen := &fakeGenerator{parts: []string{"- Build an emergency fund\n", "- Pay the car loan\n"}}
	a := NewAdvisor(gen, "gemini-test", discard)

	got, err := a.Tips(context.Background(), fincalc.NewNetWorthSheet(), 0, nil)
	if err != nil {
		t.Fatalf("Tips() error = %v", err)
	}
	if want := "- Build an emergency fund\n- Pay the car loan\n"; got != want {
		t.Errorf("Tips() = %q, want %q", got, want)
	}
	if gen.model != "gemini-test" {
		t.Errorf("model = %q, want gemini-test", gen.model)
	}
	if len(gen.contents) != 1 || gen.contents[0].Role != "user" {
		t.Fatalf("contents = %+v, want a single user content", gen.contents)
	}
	if !strings.Contains(gen.contents[0].Parts[0].Text, "No assets entered.") {
		t.Errorf("prompt = %q, want the net worth report", gen.contents[0].Parts[0].Text)
	}
	if gen.config == nil || gen.config.SystemInstruction == nil {
		t.Error("the system instruction is missing")
	}
}

func TestAdvisor_TipsErrors(t *testing.T) {
	boom := errors.New("quota exceeded")
	tests := []struct {
		name string
		gen  *fakeGenerator
		want error
	}{
		{"generator failure", &fakeGenerator{err: boom}, boom},
		{"no candidate", &fakeGenerator{}, ErrNoAnswer},
		{"blank answer", &fakeGenerator{parts: []string{" ", "\n"}}, ErrNoAnswer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAdvisor(tt.gen, "m", discard).Tips(context.Background(), fincalc.NewNetWorthSheet(), 0, nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("Tips() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q, want gemini-2.5-flash", c.Model)
	}
	t.Setenv("FINCALC_GEMINI_MODEL", "gemini-2.5-pro")
	if c, _ := LoadConfig(); c.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q, want gemini-2.5-pro", c.Model)
	}
}
