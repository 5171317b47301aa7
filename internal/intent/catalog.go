package intent

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadCatalog reads and validates the intent catalog from a JSON file.
// Schema: {"intents": [{"intent_id", "name", "examples", "is_private"}, ...]}
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read intent catalog %s: %w", path, err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse intent catalog %s: %w", path, err)
	}

	if err := catalog.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid intent catalog %s: %w", path, err)
	}

	return catalog, nil
}

// Validate enforces the catalog contract: unique non-empty ids, a name, and at
// least one non-blank example per intent. An empty catalog is legal.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Intents))
	for i, it := range c.Intents {
		if strings.TrimSpace(it.ID) == "" {
			return fmt.Errorf("intent #%d: %w", i, ErrMissingID)
		}
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("intent %q: %w", it.ID, ErrMissingName)
		}
		if len(it.Examples) == 0 {
			return fmt.Errorf("intent %q: %w", it.ID, ErrNoExamples)
		}
		for _, ex := range it.Examples {
			if strings.TrimSpace(ex) == "" {
				return fmt.Errorf("intent %q: %w", it.ID, ErrEmptyExample)
			}
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("intent %q: %w", it.ID, ErrDuplicateID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}
