package intent

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgLog "ess-chatbot/pkg/log"
)

const (
	// DefaultCacheSize bounds the query-embedding cache.
	DefaultCacheSize = 256

	// DefaultCacheTTL expires cached query embeddings.
	DefaultCacheTTL = 10 * time.Minute
)

// SemanticDetector matches queries against precomputed example embeddings.
// The record list is built once in New and read-only afterwards, so concurrent
// Detect calls need no locking; the query cache is internally synchronized.
type SemanticDetector struct {
	l        pkgLog.Logger
	embedder Embedder
	catalog  Catalog
	records  []embeddingRecord
	cache    *expirable.LRU[string, []float32]
}

// Ensure SemanticDetector implements Detector.
var _ Detector = (*SemanticDetector)(nil)

// New validates the catalog and eagerly embeds every example in catalog order.
// This is the dominant one-time cost; query-time work is similarity scans only.
func New(ctx context.Context, l pkgLog.Logger, embedder Embedder, catalog Catalog, cacheSize int, cacheTTL time.Duration) (*SemanticDetector, error) {
	if embedder == nil {
		return nil, ErrEmbedderNil
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	d := &SemanticDetector{
		l:        l,
		embedder: embedder,
		catalog:  catalog,
		cache:    expirable.NewLRU[string, []float32](cacheSize, nil, cacheTTL),
	}

	var texts []string
	for _, it := range catalog.Intents {
		texts = append(texts, it.Examples...)
	}
	if len(texts) == 0 {
		l.Warn(ctx, "intent: empty catalog, every query will miss")
		return d, nil
	}

	vectors, err := embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed intent catalog: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d examples", len(vectors), len(texts))
	}

	d.records = make([]embeddingRecord, 0, len(texts))
	pos := 0
	for i := range catalog.Intents {
		it := &d.catalog.Intents[i]
		for range it.Examples {
			d.records = append(d.records, embeddingRecord{intent: it, vector: vectors[pos]})
			pos++
		}
	}

	l.Infof(ctx, "intent: catalog ready, %d intents, %d example embeddings", len(catalog.Intents), len(d.records))
	return d, nil
}
