package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"homematch/internal/index"
	"homematch/internal/model"
	"homematch/internal/store"
)

// SemanticMatch pairs a listing with its vector similarity score.
type SemanticMatch struct {
	Listing    model.Listing
	Similarity float64
}

// Retriever answers semantic queries against the vector index, resolving
// hits back to full listings through the store. It holds no query state, so
// index rebuilds between calls are always picked up.
type Retriever struct {
	index index.Index
	store *store.Store
	log   zerolog.Logger
}

// NewRetriever creates a semantic retriever.
func NewRetriever(idx index.Index, st *store.Store, log zerolog.Logger) *Retriever {
	return &Retriever{
		index: idx,
		store: st,
		log:   log.With().Str("component", "retriever").Logger(),
	}
}

// Retrieve returns up to k listings ordered by descending similarity to the
// query text. An unbuilt index yields an empty result, never an error.
func (r *Retriever) Retrieve(ctx context.Context, queryText string, k int) ([]SemanticMatch, error) {
	if r.index == nil || queryText == "" || k <= 0 {
		return nil, nil
	}

	hits, err := r.index.Search(ctx, queryText, k)
	if err != nil {
		if errors.Is(err, index.ErrIndexNotBuilt) {
			r.log.Debug().Msg("index not built, returning no semantic matches")
			return nil, nil
		}
		return nil, fmt.Errorf("semantic search failed: %w", err)
	}

	matches := make([]SemanticMatch, 0, len(hits))
	for _, hit := range hits {
		id := hit.ID
		if id == "" {
			id = hit.Metadata["listing_id"]
		}
		listing, ok := r.store.Get(id)
		if !ok {
			// Index can lag one rebuild behind the store; skip strays.
			r.log.Debug().Str("listing_id", id).Msg("hit references unknown listing")
			continue
		}
		matches = append(matches, SemanticMatch{Listing: listing, Similarity: hit.Score})
	}
	return matches, nil
}

// IndexEntries converts the store contents into index entries, one per
// listing, embedding the combined description text.
func IndexEntries(listings []model.Listing) []index.Entry {
	entries := make([]index.Entry, 0, len(listings))
	for _, l := range listings {
		entries = append(entries, index.Entry{
			ID:   l.ID,
			Text: l.CombinedDescription(),
			Metadata: map[string]string{
				"listing_id":   l.ID,
				"neighborhood": l.Neighborhood,
			},
		})
	}
	return entries
}
