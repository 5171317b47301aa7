package intent

import (
	"context"
	"fmt"
	"strings"
)

// Detect embeds the query once and scans every embedding record for the maximum
// cosine similarity. Strict > comparison: on a tie the earliest record in
// catalog order wins. The best score is reported even when below threshold.
func (d *SemanticDetector) Detect(ctx context.Context, query string, threshold float64) (Match, error) {
	if strings.TrimSpace(query) == "" {
		return Match{}, ErrEmptyQuery
	}

	vector, err := d.embedQuery(ctx, query)
	if err != nil {
		return Match{}, fmt.Errorf("failed to embed query: %w", err)
	}

	best := Match{Score: 0.0}
	for i := range d.records {
		score := CosineSimilarity(vector, d.records[i].vector)
		if score > best.Score {
			best.Score = score
			best.Intent = d.records[i].intent
		}
	}

	if best.Intent == nil || best.Score < threshold {
		d.l.Debugf(ctx, "intent: no match for %q (best score %.3f, threshold %.3f)", query, best.Score, threshold)
		return Match{Score: best.Score}, nil
	}

	d.l.Infof(ctx, "intent: %q matched %s (score %.3f)", query, best.Intent.ID, best.Score)
	return best, nil
}

// embedQuery resolves the query vector through the expirable LRU cache.
func (d *SemanticDetector) embedQuery(ctx context.Context, query string) ([]float32, error) {
	if vec, ok := d.cache.Get(query); ok {
		return vec, nil
	}

	vectors, err := d.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedder returned %d vectors for a single query", len(vectors))
	}

	d.cache.Add(query, vectors[0])
	return vectors[0], nil
}

// IsPrivate reports whether the given intent requires authentication.
// Unknown ids are treated as public.
func (d *SemanticDetector) IsPrivate(intentID string) bool {
	for _, it := range d.catalog.Intents {
		if it.ID == intentID {
			return it.IsPrivate
		}
	}
	return false
}

// GeneralIntents returns the intents that need no authentication, catalog order.
func (d *SemanticDetector) GeneralIntents() []Intent {
	var out []Intent
	for _, it := range d.catalog.Intents {
		if !it.IsPrivate {
			out = append(out, it)
		}
	}
	return out
}

// PrivateIntents returns the intents that require authentication, catalog order.
func (d *SemanticDetector) PrivateIntents() []Intent {
	var out []Intent
	for _, it := range d.catalog.Intents {
		if it.IsPrivate {
			out = append(out, it)
		}
	}
	return out
}
