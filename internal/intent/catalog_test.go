package intent

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intents.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	t.Run("Valid Catalog", func(t *testing.T) {
		path := writeCatalogFile(t, `{
			"intents": [
				{"intent_id": "GREETING", "name": "Greeting", "examples": ["hello there"], "is_private": false},
				{"intent_id": "LEAVE_BALANCE", "name": "Leave Balance", "examples": ["how many leave days do I have"], "is_private": true}
			]
		}`)
		catalog, err := LoadCatalog(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(catalog.Intents) != 2 {
			t.Errorf("expected 2 intents, got %d", len(catalog.Intents))
		}
	})

	t.Run("Empty Catalog Is Legal", func(t *testing.T) {
		path := writeCatalogFile(t, `{"intents": []}`)
		if _, err := LoadCatalog(path); err != nil {
			t.Errorf("empty catalog should load: %v", err)
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Errorf("expected error for missing file")
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		path := writeCatalogFile(t, `{"intents": [`)
		if _, err := LoadCatalog(path); err == nil {
			t.Errorf("expected error for malformed JSON")
		}
	})

	t.Run("Missing Required Fields", func(t *testing.T) {
		cases := map[string]struct {
			body string
			want error
		}{
			"no id":         {`{"intents": [{"name": "X", "examples": ["a"]}]}`, ErrMissingID},
			"no name":       {`{"intents": [{"intent_id": "X", "examples": ["a"]}]}`, ErrMissingName},
			"no examples":   {`{"intents": [{"intent_id": "X", "name": "X"}]}`, ErrNoExamples},
			"blank example": {`{"intents": [{"intent_id": "X", "name": "X", "examples": ["  "]}]}`, ErrEmptyExample},
			"duplicate id": {`{"intents": [
				{"intent_id": "X", "name": "X", "examples": ["a"]},
				{"intent_id": "X", "name": "Y", "examples": ["b"]}
			]}`, ErrDuplicateID},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				path := writeCatalogFile(t, tc.body)
				_, err := LoadCatalog(path)
				if !errors.Is(err, tc.want) {
					t.Errorf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})
}
