// Package index provides vector indexes over listing text. An index embeds
// the text it is given at build time and answers nearest-neighbor queries;
// rebuilds are single-writer and happen only between matching runs.
package index

import (
	"context"
	"errors"
)

// ErrIndexNotBuilt is returned by Search before the first successful Build.
// Callers are expected to treat it as "no matches", not a failure.
var ErrIndexNotBuilt = errors.New("vector index not built")

// Entry is one indexable unit of text with retrievable metadata.
type Entry struct {
	ID       string
	Text     string
	Metadata map[string]string
}

// Hit is a search result with its similarity score, higher is closer.
type Hit struct {
	ID       string
	Text     string
	Metadata map[string]string
	Score    float64
}

// Embedder turns texts into embedding vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Index is the vector index contract. Build replaces all prior contents.
type Index interface {
	Build(ctx context.Context, entries []Entry) error
	Search(ctx context.Context, query string, k int) ([]Hit, error)
}
