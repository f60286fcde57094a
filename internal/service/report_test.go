package service

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"homematch/internal/model"
	"homematch/internal/store"
)

func TestWriteReport(t *testing.T) {
	seed := store.Seed()
	resp := &model.MatchResponse{
		Preferences: &model.PreferenceModel{Budget: intPtr(800000)},
		Results: []model.ScoredListing{
			{
				Listing:          seed[0],
				MatchScore:       0.74,
				MatchedReasons:   []string{ReasonWithinBudget},
				PersonalizedText: "A sun-filled home that fits your budget.",
			},
			{
				Listing:    seed[1],
				MatchScore: 0.61,
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, resp); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Home Match Results",
		"## Buyer Preferences",
		"## Match 1: Riverside Heights",
		"## Match 2: Oak Hollow",
		"**Match Score:** 0.74",
		"A sun-filled home that fits your budget.",
		reportSeparator,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// The second result has no personalized text, so only one
	// personalized section should appear.
	if got := strings.Count(out, "### Personalized Description"); got != 1 {
		t.Errorf("found %d personalized sections, want 1", got)
	}
}

func TestSaveReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.md")
	resp := &model.MatchResponse{
		Preferences: &model.PreferenceModel{Budget: intPtr(800000)},
		Results:     []model.ScoredListing{{Listing: store.Seed()[0], MatchScore: 0.7}},
	}

	if err := SaveReport(path, resp); err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.Contains(string(data), "Riverside Heights") {
		t.Error("saved report missing listing content")
	}
}

func TestWriteReport_NoResults(t *testing.T) {
	var buf bytes.Buffer
	resp := &model.MatchResponse{Preferences: &model.PreferenceModel{Budget: intPtr(1)}}
	if err := WriteReport(&buf, resp); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No listings matched") {
		t.Error("report should state that nothing matched")
	}
}
