package main

import (
	"testing"

	"zyntax/nlp"
)

func newTestMatcher(t *testing.T, cfg MatcherConfig) (*IntentMatcher, *EntityExtractor, *Catalog) {
	t.Helper()
	catalog, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	engine := nlp.NewEngine()
	return NewIntentMatcher(catalog, engine, cfg), NewEntityExtractor(engine), catalog
}

// Every accepted phrasing, fed back verbatim, must resolve to its own
// intent with confidence at or above the accept threshold.
func TestMatchVerbatimPhrasings(t *testing.T) {
	matcher, extractor, catalog := newTestMatcher(t, DefaultMatcherConfig())

	for _, intent := range catalog.Intents() {
		for _, phrase := range intent.Phrasings {
			utt := extractor.Parse(phrase)
			result := matcher.Match(utt)
			if result.Intent == nil {
				t.Errorf("phrasing %q of %s did not resolve (confidence %.2f)", phrase, intent.ID, result.Confidence)
				continue
			}
			if result.Confidence < DefaultMatcherConfig().AcceptThreshold {
				t.Errorf("phrasing %q confidence %.2f below accept threshold", phrase, result.Confidence)
			}
			if result.Intent.ID != intent.ID {
				t.Errorf("phrasing %q resolved to %s, want %s", phrase, result.Intent.ID, intent.ID)
			}
		}
	}
}

func TestMatchScenarios(t *testing.T) {
	matcher, extractor, _ := newTestMatcher(t, DefaultMatcherConfig())

	tests := []struct {
		name      string
		input     string
		wantID    IntentID
		wantSlots map[string]string
	}{
		{
			name:      "english make directory",
			input:     "make a new directory called MyProject",
			wantID:    IntentMakeDirectory,
			wantSlots: map[string]string{"path": "MyProject"},
		},
		{
			name:      "hinglish make directory",
			input:     "folder banao docs",
			wantID:    IntentMakeDirectory,
			wantSlots: map[string]string{"path": "docs"},
		},
		{
			name:      "commit with quoted message",
			input:     `commit these changes with message "fix bug"`,
			wantID:    IntentGitCommit,
			wantSlots: map[string]string{"message": "fix bug"},
		},
		{
			name:      "bare remove resolves to delete_file with empty slot",
			input:     "remove",
			wantID:    IntentDeleteFile,
			wantSlots: map[string]string{},
		},
		{
			name:      "positional rename",
			input:     "rename draft backup",
			wantID:    IntentMoveRename,
			wantSlots: map[string]string{"source": "draft", "destination": "backup"},
		},
		{
			name:      "go up one level",
			input:     "go up one level",
			wantID:    IntentChangeDirectory,
			wantSlots: map[string]string{"path": ".."},
		},
		{
			name:      "filename flips listing to display",
			input:     "show files notes.txt",
			wantID:    IntentDisplayFile,
			wantSlots: map[string]string{"path": "notes.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matcher.Match(extractor.Parse(tt.input))
			if result.Intent == nil {
				t.Fatalf("input %q did not resolve (confidence %.2f)", tt.input, result.Confidence)
			}
			if result.Intent.ID != tt.wantID {
				t.Fatalf("input %q resolved to %s, want %s", tt.input, result.Intent.ID, tt.wantID)
			}
			for slot, want := range tt.wantSlots {
				if got := result.Slots[slot]; got != want {
					t.Errorf("slot %s = %q, want %q", slot, got, want)
				}
			}
			for slot, got := range result.Slots {
				if _, declared := tt.wantSlots[slot]; !declared && got != "" {
					t.Errorf("unexpected slot %s = %q", slot, got)
				}
			}
		})
	}
}

func TestMatchUnrecognized(t *testing.T) {
	matcher, extractor, _ := newTestMatcher(t, DefaultMatcherConfig())

	result := matcher.Match(extractor.Parse("asdkjashdkj"))
	if result.Intent != nil {
		t.Fatalf("gibberish resolved to %s", result.Intent.ID)
	}
	if len(result.Suggestions) != 0 {
		t.Fatalf("gibberish produced suggestions: %v", result.Suggestions)
	}
}

func TestMatchSuggestions(t *testing.T) {
	// Raising the accept threshold forces near-misses into the
	// suggestion path without depending on fragile mid-range scores.
	cfg := MatcherConfig{AcceptThreshold: 0.99, SuggestThreshold: 0.50, MaxSuggestions: 2}
	matcher, extractor, _ := newTestMatcher(t, cfg)

	result := matcher.Match(extractor.Parse("folder banaoo docs"))
	if result.Intent != nil {
		t.Fatalf("expected suggestion-only result, got intent %s", result.Intent.ID)
	}
	if len(result.Suggestions) == 0 {
		t.Fatal("expected at least one suggestion")
	}
	if len(result.Suggestions) > cfg.MaxSuggestions {
		t.Fatalf("suggestion count %d exceeds cap %d", len(result.Suggestions), cfg.MaxSuggestions)
	}
	if result.Suggestions[0].Intent.ID != IntentMakeDirectory {
		t.Errorf("top suggestion = %s, want %s", result.Suggestions[0].Intent.ID, IntentMakeDirectory)
	}
	for i := 1; i < len(result.Suggestions); i++ {
		if result.Suggestions[i].Score > result.Suggestions[i-1].Score {
			t.Errorf("suggestions not ordered by descending score")
		}
	}
}

// Equal-score suggestions keep catalog order; the missing-slot
// tie-break applies only to outright selection.
func TestSuggestionOrderingByCatalog(t *testing.T) {
	cfg := MatcherConfig{AcceptThreshold: 0.99, SuggestThreshold: 0.50, MaxSuggestions: 3}
	matcher, extractor, _ := newTestMatcher(t, cfg)

	result := matcher.Match(extractor.Parse("show"))
	if result.Intent != nil {
		t.Fatalf("expected suggestion-only result, got intent %s", result.Intent.ID)
	}
	want := []IntentID{IntentListFiles, IntentShowPath, IntentDisplayFile}
	if len(result.Suggestions) != len(want) {
		t.Fatalf("suggestion count = %d, want %d: %v", len(result.Suggestions), len(want), result.Suggestions)
	}
	for i, id := range want {
		if got := result.Suggestions[i].Intent.ID; got != id {
			t.Errorf("suggestion %d = %s, want %s", i, got, id)
		}
	}
}

func TestResolveAsFillsSlots(t *testing.T) {
	matcher, extractor, catalog := newTestMatcher(t, DefaultMatcherConfig())

	intent, _ := catalog.Lookup(IntentMakeDirectory)
	utt := extractor.Parse("folder banaoo docs")
	slots := matcher.ResolveAs(intent, "folder banao", utt)
	if slots["path"] != "docs" {
		t.Errorf("path slot = %q, want docs", slots["path"])
	}
}
