package index

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// MemoryIndex is an in-process vector index using exact cosine similarity.
// Suitable for the small listing sets this system works with; a rebuild
// replaces the entire contents atomically.
type MemoryIndex struct {
	embedder Embedder

	mu      sync.RWMutex
	entries []Entry
	vectors [][]float32
	built   bool
}

// NewMemoryIndex creates an empty in-memory index.
func NewMemoryIndex(embedder Embedder) *MemoryIndex {
	return &MemoryIndex{embedder: embedder}
}

// Build embeds all entry texts and swaps them in as the new index contents.
func (m *MemoryIndex) Build(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("no entries to index")
	}

	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}

	vectors, err := m.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed %d texts: %w", len(texts), err)
	}
	if len(vectors) != len(entries) {
		return fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(entries))
	}

	stored := make([]Entry, len(entries))
	copy(stored, entries)

	m.mu.Lock()
	m.entries = stored
	m.vectors = vectors
	m.built = true
	m.mu.Unlock()

	return nil
}

// Search embeds the query and returns the k most similar entries by cosine
// similarity, descending.
func (m *MemoryIndex) Search(ctx context.Context, query string, k int) ([]Hit, error) {
	m.mu.RLock()
	built := m.built
	entries := m.entries
	vectors := m.vectors
	m.mu.RUnlock()

	if !built {
		return nil, ErrIndexNotBuilt
	}
	if k <= 0 {
		return nil, nil
	}

	qvecs, err := m.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(qvecs) != 1 {
		return nil, fmt.Errorf("embedder returned %d vectors for one query", len(qvecs))
	}

	hits := make([]Hit, 0, len(entries))
	for i, e := range entries {
		hits = append(hits, Hit{
			ID:       e.ID,
			Text:     e.Text,
			Metadata: e.Metadata,
			Score:    cosineSimilarity(qvecs[0], vectors[i]),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// cosineSimilarity returns the cosine of the angle between a and b,
// 0 when either vector is zero or the lengths differ.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
