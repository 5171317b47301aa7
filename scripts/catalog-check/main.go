// scripts/catalog-check/main.go
//
// Embeds the intent catalog and reports the most similar example pairs that
// belong to DIFFERENT intents. High cross-intent similarity means the
// detector will confuse those intents near the threshold; reword the
// offending examples before shipping a catalog change.
//
// Usage:
//   VOYAGE_API_KEY=... go run scripts/catalog-check/main.go [path/to/intents.json]

package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"ess-chatbot/internal/intent"
	"ess-chatbot/pkg/log"
	"ess-chatbot/pkg/voyage"
)

const reportTop = 15

type examplePair struct {
	intentA, exampleA string
	intentB, exampleB string
	score             float64
}

func main() {
	catalogPath := "data/intents.json"
	if len(os.Args) > 1 {
		catalogPath = os.Args[1]
	}

	apiKey := os.Getenv("VOYAGE_API_KEY")
	if apiKey == "" {
		fmt.Println("VOYAGE_API_KEY is required")
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})
	ctx := context.Background()

	catalog, err := intent.LoadCatalog(catalogPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load catalog: %v", err)
	}

	embedder, err := voyage.New(apiKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}

	// Flatten catalog order, then embed everything in one batch.
	var owners []intent.Intent
	var texts []string
	for _, it := range catalog.Intents {
		for _, ex := range it.Examples {
			owners = append(owners, it)
			texts = append(texts, ex)
		}
	}
	if len(texts) == 0 {
		logger.Info(ctx, "Catalog is empty, nothing to check")
		return
	}

	logger.Infof(ctx, "Embedding %d examples from %d intents...", len(texts), len(catalog.Intents))
	vectors, err := embedder.Embed(ctx, texts)
	if err != nil {
		logger.Fatalf(ctx, "Failed to embed examples: %v", err)
	}

	var pairs []examplePair
	for i := range vectors {
		for j := i + 1; j < len(vectors); j++ {
			if owners[i].ID == owners[j].ID {
				continue
			}
			pairs = append(pairs, examplePair{
				intentA:  owners[i].ID,
				exampleA: texts[i],
				intentB:  owners[j].ID,
				exampleB: texts[j],
				score:    intent.CosineSimilarity(vectors[i], vectors[j]),
			})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].score > pairs[j].score })

	top := reportTop
	if len(pairs) < top {
		top = len(pairs)
	}

	logger.Infof(ctx, "Top %d cross-intent example pairs:", top)
	for _, p := range pairs[:top] {
		fmt.Printf("%.4f  [%s] %q  <->  [%s] %q\n", p.score, p.intentA, p.exampleA, p.intentB, p.exampleB)
	}
}
