package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"homematch/internal/model"
)

const summarizerSystemRole = "You are a real estate assistant who distills buyer wishes " +
	"into a concise description of their ideal home."

// PreferenceBuilder normalizes raw buyer input into a PreferenceModel.
// It makes at most one summarization call; on generator failure it falls
// back to concatenating the raw statements, so it always produces a usable
// model unless the input is empty or invalid.
type PreferenceBuilder struct {
	gen TextGenerator
	log zerolog.Logger
}

// NewPreferenceBuilder creates a preference builder.
func NewPreferenceBuilder(gen TextGenerator, log zerolog.Logger) *PreferenceBuilder {
	return &PreferenceBuilder{
		gen: gen,
		log: log.With().Str("component", "preferences").Logger(),
	}
}

// Build validates the input and derives the semantic summary text.
func (b *PreferenceBuilder) Build(ctx context.Context, input model.PreferenceInput) (*model.PreferenceModel, error) {
	statements := make([]string, 0, len(input.Statements))
	for _, s := range input.Statements {
		if t := strings.TrimSpace(s); t != "" {
			statements = append(statements, t)
		}
	}

	if err := validateStructured(input); err != nil {
		return nil, err
	}

	p := &model.PreferenceModel{
		Budget:               input.Budget,
		MinBedrooms:          input.MinBedrooms,
		MinSqft:              input.MinSqft,
		PreferredLocation:    input.PreferredLocation,
		DesiredFeatures:      input.DesiredFeatures,
		MustHaves:            input.MustHaves,
		LocationPreferences:  input.LocationPreferences,
		LifestylePreferences: input.LifestylePreferences,
		Statements:           statements,
	}

	if p.IsEmpty() {
		return nil, ErrNoPreferences
	}

	p.SummaryText = b.summarize(ctx, p)
	return p, nil
}

func validateStructured(input model.PreferenceInput) error {
	if input.Budget != nil && *input.Budget < 0 {
		return fmt.Errorf("budget must be non-negative, got %d: %w", *input.Budget, ErrInvalidPreference)
	}
	if input.MinBedrooms != nil && *input.MinBedrooms < 0 {
		return fmt.Errorf("min_bedrooms must be non-negative, got %d: %w", *input.MinBedrooms, ErrInvalidPreference)
	}
	if input.MinSqft != nil && *input.MinSqft < 0 {
		return fmt.Errorf("min_sqft must be non-negative, got %d: %w", *input.MinSqft, ErrInvalidPreference)
	}
	return nil
}

// summarize synthesizes the semantic query text. One generator call when
// free-text statements exist; deterministic assembly otherwise.
func (b *PreferenceBuilder) summarize(ctx context.Context, p *model.PreferenceModel) string {
	if len(p.Statements) == 0 {
		return structuredSummary(p)
	}

	joined := strings.Join(p.Statements, " ")
	if len(p.LifestylePreferences) > 0 {
		joined += " Lifestyle: " + strings.Join(p.LifestylePreferences, ", ") + "."
	}
	if b.gen == nil {
		return joined
	}
	prompt := "Summarize the ideal home given: " + joined

	summary, err := b.gen.Generate(ctx, summarizerSystemRole, prompt, 0.7)
	if err != nil {
		b.log.Warn().Err(err).Msg("summary generation failed, using raw statements")
		return joined
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return joined
	}
	return summary
}

// structuredSummary builds a plain-language query from structured fields
// alone, so a statement-free run still has a semantic query.
func structuredSummary(p *model.PreferenceModel) string {
	var parts []string
	if p.MinBedrooms != nil {
		parts = append(parts, fmt.Sprintf("at least %d bedrooms", *p.MinBedrooms))
	}
	if p.MinSqft != nil {
		parts = append(parts, fmt.Sprintf("at least %d sqft", *p.MinSqft))
	}
	if p.Budget != nil {
		parts = append(parts, fmt.Sprintf("under $%d", *p.Budget))
	}
	if p.PreferredLocation != nil {
		parts = append(parts, "in "+*p.PreferredLocation)
	}
	if len(p.DesiredFeatures) > 0 {
		parts = append(parts, "with "+strings.Join(p.DesiredFeatures, ", "))
	}
	if len(p.MustHaves) > 0 {
		parts = append(parts, "must have "+strings.Join(p.MustHaves, ", "))
	}
	if len(p.LocationPreferences) > 0 {
		parts = append(parts, strings.Join(p.LocationPreferences, ", "))
	}
	if len(p.LifestylePreferences) > 0 {
		parts = append(parts, "suited to "+strings.Join(p.LifestylePreferences, ", "))
	}
	return "A home " + strings.Join(parts, ", ")
}
