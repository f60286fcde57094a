package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"homematch/internal/model"
)

func TestPreferenceBuilder_Build_Empty(t *testing.T) {
	builder := NewPreferenceBuilder(nil, zerolog.Nop())

	tests := []struct {
		name  string
		input model.PreferenceInput
	}{
		{name: "nothing at all", input: model.PreferenceInput{}},
		{name: "whitespace statements", input: model.PreferenceInput{Statements: []string{" ", "\t"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.Build(context.Background(), tt.input)
			if !errors.Is(err, ErrNoPreferences) {
				t.Errorf("Build() error = %v, want ErrNoPreferences", err)
			}
		})
	}
}

func TestPreferenceBuilder_Build_InvalidValues(t *testing.T) {
	builder := NewPreferenceBuilder(nil, zerolog.Nop())

	tests := []struct {
		name  string
		input model.PreferenceInput
	}{
		{name: "negative budget", input: model.PreferenceInput{Budget: intPtr(-1)}},
		{name: "negative bedrooms", input: model.PreferenceInput{MinBedrooms: intPtr(-2)}},
		{name: "negative sqft", input: model.PreferenceInput{MinSqft: intPtr(-100)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.Build(context.Background(), tt.input)
			if !errors.Is(err, ErrInvalidPreference) {
				t.Errorf("Build() error = %v, want ErrInvalidPreference", err)
			}
		})
	}
}

func TestPreferenceBuilder_Build_SummaryFallback(t *testing.T) {
	gen := &stubGen{err: errors.New("provider down")}
	builder := NewPreferenceBuilder(gen, zerolog.Nop())

	input := model.PreferenceInput{Statements: []string{"quiet street", "big backyard"}}
	p, err := builder.Build(context.Background(), input)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.SummaryText != "quiet street big backyard" {
		t.Errorf("SummaryText = %q, want the joined raw statements", p.SummaryText)
	}
}

func TestPreferenceBuilder_Build_SummaryFromGenerator(t *testing.T) {
	gen := &stubGen{text: "A quiet home with a large backyard."}
	builder := NewPreferenceBuilder(gen, zerolog.Nop())

	input := model.PreferenceInput{Statements: []string{"quiet street", "big backyard"}}
	p, err := builder.Build(context.Background(), input)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.SummaryText != "A quiet home with a large backyard." {
		t.Errorf("SummaryText = %q, want the generated summary", p.SummaryText)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want exactly 1", gen.calls)
	}
}

func TestPreferenceBuilder_Build_StructuredSummary(t *testing.T) {
	// No statements means no generation call; the summary is assembled
	// deterministically from the structured fields.
	gen := &stubGen{text: "should not be used"}
	builder := NewPreferenceBuilder(gen, zerolog.Nop())

	input := model.PreferenceInput{
		Budget:          intPtr(800000),
		MinBedrooms:     intPtr(3),
		DesiredFeatures: []string{"garage"},
	}
	p, err := builder.Build(context.Background(), input)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times, want 0 for structured-only input", gen.calls)
	}
	for _, want := range []string{"at least 3 bedrooms", "under $800000", "garage"} {
		if !strings.Contains(p.SummaryText, want) {
			t.Errorf("SummaryText = %q, missing %q", p.SummaryText, want)
		}
	}
}

func TestPreferenceModel_HasStructured(t *testing.T) {
	tests := []struct {
		name string
		p    model.PreferenceModel
		want bool
	}{
		{name: "empty", p: model.PreferenceModel{}, want: false},
		{name: "statements only", p: model.PreferenceModel{Statements: []string{"x"}}, want: false},
		{name: "budget", p: model.PreferenceModel{Budget: intPtr(1)}, want: true},
		{name: "must haves", p: model.PreferenceModel{MustHaves: []string{"garage"}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.HasStructured(); got != tt.want {
				t.Errorf("HasStructured() = %v, want %v", got, tt.want)
			}
		})
	}
}
