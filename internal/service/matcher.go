package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"homematch/internal/config"
	"homematch/internal/model"
	"homematch/internal/store"
)

const personalizerSystemRole = "You are an expert real estate agent who excels at " +
	"matching properties to buyer preferences while maintaining strict factual accuracy."

// runState tracks the stages of a single matching run. Transitions are
// strictly sequential; skipping a stage is a programming error.
type runState int

const (
	stateIdle runState = iota
	statePreferencesBuilt
	stateScored
	statePersonalized
	stateDone
)

func (s runState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case statePreferencesBuilt:
		return "preferences_built"
	case stateScored:
		return "scored"
	case statePersonalized:
		return "personalized"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// matchRun holds per-run state. One run per buyer interaction; never shared.
type matchRun struct {
	state runState
}

func (r *matchRun) transition(to runState) error {
	if to != r.state+1 {
		return fmt.Errorf("illegal run transition %s -> %s", r.state, to)
	}
	r.state = to
	return nil
}

// Matcher drives the full matching pipeline: preference normalization,
// attribute scoring, semantic retrieval, rank fusion, and personalization.
// The store and index are read-shared; each run keeps its own preference
// model and result set.
type Matcher struct {
	store     *store.Store
	scorer    *Scorer
	retriever *Retriever
	prefs     *PreferenceBuilder
	gen       TextGenerator
	cfg       config.MatchConfig
	delay     time.Duration
	log       zerolog.Logger
}

// NewMatcher creates a matcher.
func NewMatcher(
	st *store.Store,
	scorer *Scorer,
	retriever *Retriever,
	prefs *PreferenceBuilder,
	gen TextGenerator,
	cfg config.MatchConfig,
	delay time.Duration,
	log zerolog.Logger,
) *Matcher {
	return &Matcher{
		store:     st,
		scorer:    scorer,
		retriever: retriever,
		prefs:     prefs,
		gen:       gen,
		cfg:       cfg,
		delay:     delay,
		log:       log.With().Str("component", "matcher").Logger(),
	}
}

// fusedCandidate carries both scoring signals for one listing during fusion.
type fusedCandidate struct {
	listing   model.Listing
	attribute float64
	hasAttr   bool
	semantic  float64
	order     int // original store order, tie stability
}

// Match runs the complete pipeline for one buyer. Only a preference error
// (nothing supplied, or an invalid field) is terminal; every other failure
// degrades to partial results.
func (m *Matcher) Match(ctx context.Context, input model.PreferenceInput, opts *model.MatchOptions) (*model.MatchResponse, error) {
	startTime := time.Now()
	run := &matchRun{state: stateIdle}

	limit := m.cfg.ResultLimit
	k := m.cfg.RetrievalK
	if opts != nil {
		if opts.Limit > 0 {
			limit = opts.Limit
		}
		if opts.TopK > 0 {
			k = opts.TopK
		}
	}

	prefs, err := m.prefs.Build(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := run.transition(statePreferencesBuilt); err != nil {
		return nil, err
	}

	candidates := m.score(ctx, prefs, k)
	if err := run.transition(stateScored); err != nil {
		return nil, err
	}

	fused := m.fuse(candidates, limit)

	results := m.personalize(ctx, fused, prefs)
	if err := run.transition(statePersonalized); err != nil {
		return nil, err
	}

	if err := run.transition(stateDone); err != nil {
		return nil, err
	}

	m.log.Info().
		Int("results", len(results)).
		Dur("took", time.Since(startTime)).
		Msg("matching run complete")

	return &model.MatchResponse{
		Results:     results,
		Preferences: prefs,
		Took:        time.Since(startTime).Milliseconds(),
	}, nil
}

// score runs both scorer paths. Both are always attempted: the attribute
// path over the full store, the semantic path through the retriever. A
// failed semantic path degrades to attribute-only results.
func (m *Matcher) score(ctx context.Context, prefs *model.PreferenceModel, k int) map[string]*fusedCandidate {
	candidates := make(map[string]*fusedCandidate)

	structured := prefs.HasStructured()
	for i, l := range m.store.All() {
		c := &fusedCandidate{listing: l, order: i}
		if structured {
			c.attribute = m.scorer.Score(l, prefs)
			c.hasAttr = true
		}
		candidates[l.ID] = c
	}

	matches, err := m.retriever.Retrieve(ctx, prefs.SummaryText, k)
	if err != nil {
		m.log.Warn().Err(err).Msg("semantic retrieval failed, continuing with attribute scores only")
	}
	for _, match := range matches {
		if c, ok := candidates[match.Listing.ID]; ok {
			c.semantic = match.Similarity
		} else {
			candidates[match.Listing.ID] = &fusedCandidate{
				listing:  match.Listing,
				semantic: match.Similarity,
				order:    len(candidates),
			}
		}
	}

	return candidates
}

// fuse merges both signals into one ranking. The attribute score is primary
// when structured preferences exist (it encodes explicit constraints), with
// semantic similarity as tie-break; otherwise ranking is purely semantic.
// Candidates below the relevance threshold are dropped before any
// personalization call is spent on them.
func (m *Matcher) fuse(candidates map[string]*fusedCandidate, limit int) []*fusedCandidate {
	kept := make([]*fusedCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.hasAttr && c.attribute < m.cfg.ScoreThreshold {
			continue
		}
		if !c.hasAttr && c.semantic == 0 {
			// Neither signal: nothing to rank on.
			continue
		}
		kept = append(kept, c)
	}

	sort.Slice(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.hasAttr && b.hasAttr && a.attribute != b.attribute {
			return a.attribute > b.attribute
		}
		if a.semantic != b.semantic {
			return a.semantic > b.semantic
		}
		return a.order < b.order
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

// personalize invokes the text generator once per surviving listing,
// serially with the configured inter-call delay. Per-listing failure emits
// the listing without personalized text; it never aborts the batch.
func (m *Matcher) personalize(ctx context.Context, fused []*fusedCandidate, prefs *model.PreferenceModel) []model.ScoredListing {
	results := make([]model.ScoredListing, 0, len(fused))

	for i, c := range fused {
		score := c.attribute
		if !c.hasAttr {
			score = c.semantic
		}

		result := model.ScoredListing{
			Listing:        c.listing,
			MatchScore:     score,
			SemanticScore:  c.semantic,
			MatchedReasons: m.scorer.Reasons(c.listing, prefs, c.semantic),
		}

		if m.gen == nil {
			results = append(results, result)
			continue
		}

		text, err := m.gen.Generate(ctx, personalizerSystemRole,
			personalizationPrompt(c.listing, prefs, score), 0.7)
		if err != nil {
			m.log.Warn().Err(err).Str("listing_id", c.listing.ID).Msg("personalization failed for listing")
		} else if claims := UnsupportedClaims(text, c.listing); len(claims) > 0 {
			m.log.Warn().
				Str("listing_id", c.listing.ID).
				Strs("claims", claims).
				Msg("personalized text makes claims absent from the listing, dropping it")
		} else {
			result.PersonalizedText = strings.TrimSpace(text)
		}

		results = append(results, result)

		if i < len(fused)-1 {
			if err := sleepCtx(ctx, m.delay); err != nil {
				// Cancelled mid-batch: keep what we have.
				break
			}
		}
	}

	return results
}

// personalizationPrompt assembles the rewrite instruction. The factual
// constraint is explicit: reorganize and emphasize, never invent.
func personalizationPrompt(l model.Listing, prefs *model.PreferenceModel, score float64) string {
	listingJSON, _ := json.MarshalIndent(l, "", "  ")
	prefsJSON, _ := json.MarshalIndent(prefs, "", "  ")

	return fmt.Sprintf(`Act as a skilled real estate agent crafting a personalized property description.

Original Property Details:
%s

Buyer Preferences:
%s

Match Score: %.2f out of 1.0

Task: Create a personalized description that:
1. Highlights specific features that match the buyer's preferences
2. Maintains absolute factual accuracy - never add or modify features
3. Organizes information in order of relevance to this buyer
4. Addresses their must-haves explicitly
5. Explains how the property supports their lifestyle preferences
6. Uses engaging, professional language
7. Includes a brief section about value proposition if under budget
8. Maintains a natural, conversational tone

Remember: Focus on EXISTING features that match their preferences. Never invent or assume features.`,
		listingJSON, prefsJSON, score)
}

// UnsupportedClaims scans personalized text for bullet-point claims with no
// support in the source listing. A bullet is supported when at least one of
// its content words appears in the listing's text. This is a coarse guard:
// the real constraint lives in the generation prompt, and prose outside
// bullets is not checked.
func UnsupportedClaims(text string, l model.Listing) []string {
	source := strings.ToLower(l.SearchableText())

	var unsupported []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		var claim string
		switch {
		case strings.HasPrefix(trimmed, "- "):
			claim = trimmed[2:]
		case strings.HasPrefix(trimmed, "* "):
			claim = trimmed[2:]
		default:
			continue
		}

		if !claimSupported(claim, source) {
			unsupported = append(unsupported, claim)
		}
	}
	return unsupported
}

func claimSupported(claim, source string) bool {
	for _, word := range strings.Fields(strings.ToLower(claim)) {
		word = strings.Trim(word, ".,!?:;()\"'")
		if len(word) < 4 {
			continue
		}
		if strings.Contains(source, word) {
			return true
		}
	}
	return false
}
