package main

import (
	"sort"
	"strings"

	"zyntax/nlp"
)

// MatcherConfig holds the tunable matching thresholds. The values are
// configuration, not constants: tests and users calibrate them.
type MatcherConfig struct {
	AcceptThreshold  float64 // minimum confidence to resolve an intent
	SuggestThreshold float64 // minimum confidence to offer a suggestion
	MaxSuggestions   int     // cap on "did you mean" candidates
}

// DefaultMatcherConfig returns the calibrated defaults.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		AcceptThreshold:  0.72,
		SuggestThreshold: 0.50,
		MaxSuggestions:   3,
	}
}

// Suggestion is one "did you mean" candidate.
type Suggestion struct {
	Intent *Intent
	Phrase string // the phrasing that produced the score
	Score  float64
}

// MatchResult is the outcome of matching one utterance. When the
// confidence is below the accept threshold, Intent is nil and
// Suggestions carries the nearest candidates (possibly none).
type MatchResult struct {
	Intent      *Intent
	Phrase      string
	Confidence  float64
	Slots       map[string]string
	Suggestions []Suggestion
}

// IntentMatcher scores utterances against the catalog phrasings.
type IntentMatcher struct {
	catalog *Catalog
	engine  *nlp.Engine
	cfg     MatcherConfig
}

// NewIntentMatcher creates a matcher over the given catalog.
func NewIntentMatcher(catalog *Catalog, engine *nlp.Engine, cfg MatcherConfig) *IntentMatcher {
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = 3
	}
	return &IntentMatcher{catalog: catalog, engine: engine, cfg: cfg}
}

type scoredIntent struct {
	intent  *Intent
	phrase  string
	score   float64
	missing int // unfilled required slots, used as a tie-breaker
	order   int // catalog registration order, final tie-breaker
}

// Match scores the utterance against every intent and applies the
// threshold policy: accept the best intent, or fall back to ranked
// suggestions, or report nothing matched.
func (m *IntentMatcher) Match(utt *ParsedUtterance) *MatchResult {
	scored := m.scoreAll(utt)
	if len(scored) == 0 {
		return &MatchResult{}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].missing != scored[j].missing {
			return scored[i].missing < scored[j].missing
		}
		return scored[i].order < scored[j].order
	})

	best := scored[0]
	if best.score >= m.cfg.AcceptThreshold {
		intent, phrase := m.applyHeuristics(best.intent, best.phrase, utt)
		return &MatchResult{
			Intent:     intent,
			Phrase:     phrase,
			Confidence: best.score,
			Slots:      m.fillSlots(intent, phrase, utt),
		}
	}

	// Suggestions rank by score then catalog order; the missing-slot
	// tie-break only applies when selecting an intent outright.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].order < scored[j].order
	})

	var suggestions []Suggestion
	for _, s := range scored {
		if s.score < m.cfg.SuggestThreshold {
			break
		}
		suggestions = append(suggestions, Suggestion{Intent: s.intent, Phrase: s.phrase, Score: s.score})
		if len(suggestions) == m.cfg.MaxSuggestions {
			break
		}
	}
	return &MatchResult{Confidence: best.score, Suggestions: suggestions}
}

// ResolveAs fills slots for an explicitly chosen intent, used when the
// user confirms a suggestion.
func (m *IntentMatcher) ResolveAs(intent *Intent, phrase string, utt *ParsedUtterance) map[string]string {
	return m.fillSlots(intent, phrase, utt)
}

func (m *IntentMatcher) scoreAll(utt *ParsedUtterance) []scoredIntent {
	var scored []scoredIntent
	for order, intent := range m.catalog.Intents() {
		bestScore := 0.0
		bestPhrase := ""
		for _, phrase := range intent.Phrasings {
			if s := m.engine.Similarity(utt.Normalized, phrase); s > bestScore {
				bestScore = s
				bestPhrase = phrase
			}
		}
		if bestScore == 0 {
			continue
		}
		slots := m.fillSlots(intent, bestPhrase, utt)
		missing := 0
		for _, s := range intent.RequiredSlots() {
			if slots[s.Name] == "" {
				missing++
			}
		}
		scored = append(scored, scoredIntent{
			intent:  intent,
			phrase:  bestPhrase,
			score:   bestScore,
			missing: missing,
			order:   order,
		})
	}
	return scored
}

// applyHeuristics adjusts the matched intent using the extracted
// arguments: "show files" with a single filename argument really means
// "display that file".
func (m *IntentMatcher) applyHeuristics(intent *Intent, phrase string, utt *ParsedUtterance) (*Intent, string) {
	if intent.ID == IntentListFiles || intent.ID == IntentShowPath {
		if len(utt.Entities.Path) == 1 {
			cand := utt.Entities.Path[0]
			if looksLikeFilename(cand) {
				if display, ok := m.catalog.Lookup(IntentDisplayFile); ok {
					return display, phrase
				}
			}
		}
	}
	return intent, phrase
}

func looksLikeFilename(s string) bool {
	return s != "." && s != ".." && strings.Contains(s, ".")
}

// fillSlots assigns entity candidates to the intent's slots in order.
// Path slots consume path candidates (falling back to quoted text),
// text slots consume quoted text. Per-intent refinements mirror how
// people actually phrase these commands.
func (m *IntentMatcher) fillSlots(intent *Intent, phrase string, utt *ParsedUtterance) map[string]string {
	slots := make(map[string]string)

	pathCands := utt.Entities.Path
	if len(pathCands) == 0 {
		pathCands = utt.Entities.Text
	}
	textCands := utt.Entities.Text

	pathIdx, textIdx := 0, 0
	for _, slot := range intent.Slots {
		switch slot.Kind {
		case SlotPath:
			if pathIdx < len(pathCands) {
				slots[slot.Name] = pathCands[pathIdx]
				pathIdx++
			}
		case SlotText:
			if textIdx < len(textCands) {
				slots[slot.Name] = textCands[textIdx]
				textIdx++
			}
		}
	}

	m.refineSlots(intent, phrase, utt, slots)
	return slots
}

func (m *IntentMatcher) refineSlots(intent *Intent, phrase string, utt *ParsedUtterance, slots map[string]string) {
	switch intent.ID {
	case IntentChangeDirectory:
		lower := utt.Normalized
		switch {
		case strings.Contains(lower, "up one level") || strings.Contains(lower, "go back"):
			slots["path"] = ".."
		case strings.EqualFold(slots["path"], "home"):
			slots["path"] = "~"
		}
	case IntentGitCommit:
		if msg, ok := CommitMessage(utt.Raw, phrase, utt.Entities); ok {
			slots["message"] = msg
		}
	}
}
