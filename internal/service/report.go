package service

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"homematch/internal/model"
)

const reportSeparator = "--------------------------------------------------------------------------------"

// WriteReport renders a matching run as a markdown report: the buyer's
// preferences first, then each match in descending score order with its
// facts, score breakdown, and personalized description.
func WriteReport(w io.Writer, resp *model.MatchResponse) error {
	fmt.Fprintf(w, "# Home Match Results\n\n")
	fmt.Fprintf(w, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Fprintf(w, "## Buyer Preferences\n\n")
	prefsJSON, err := json.MarshalIndent(resp.Preferences, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	fmt.Fprintf(w, "```json\n%s\n```\n\n", prefsJSON)
	fmt.Fprintln(w, reportSeparator)

	for i, result := range resp.Results {
		fmt.Fprintf(w, "\n## Match %d: %s\n\n", i+1, result.Listing.Neighborhood)
		fmt.Fprintf(w, "**Match Score:** %.2f\n\n", result.MatchScore)
		if len(result.MatchedReasons) > 0 {
			fmt.Fprintf(w, "**Matched On:** %s\n\n", strings.Join(result.MatchedReasons, ", "))
		}

		fmt.Fprintf(w, "### Property Details\n\n")
		listingJSON, err := json.MarshalIndent(result.Listing, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal listing %s: %w", result.Listing.ID, err)
		}
		fmt.Fprintf(w, "```json\n%s\n```\n\n", listingJSON)

		if result.PersonalizedText != "" {
			fmt.Fprintf(w, "### Personalized Description\n\n")
			fmt.Fprintf(w, "%s\n\n", result.PersonalizedText)
		}

		fmt.Fprintln(w, reportSeparator)
	}

	if len(resp.Results) == 0 {
		fmt.Fprintf(w, "\nNo listings matched the given preferences.\n")
	}

	return nil
}

// SaveReport writes the report to a file, creating or truncating it.
func SaveReport(path string, resp *model.MatchResponse) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := WriteReport(f, resp); err != nil {
		return err
	}
	return f.Sync()
}
