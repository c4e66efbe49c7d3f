package main

import (
	"regexp"
	"strings"

	"zyntax/nlp"
)

// Entities holds argument candidates grouped by slot kind, most likely
// first.
type Entities struct {
	Text []string
	Path []string
}

// ParsedUtterance is one line of user input after tokenization and
// entity extraction. It lives for a single dispatch cycle.
type ParsedUtterance struct {
	Raw        string
	Normalized string
	Tokens     []nlp.Token
	Entities   Entities
}

// EntityExtractor pulls argument candidates (paths, names, quoted
// messages) out of raw input. It fails softly: when nothing looks like
// an entity the candidate lists are simply empty.
type EntityExtractor struct {
	engine *nlp.Engine
}

// NewEntityExtractor creates an extractor backed by the given NLP engine.
func NewEntityExtractor(engine *nlp.Engine) *EntityExtractor {
	return &EntityExtractor{engine: engine}
}

// argPrepositions mark the token that follows them as a likely argument
// ("create a folder called MyProject").
var argPrepositions = map[string]bool{
	"to": true, "into": true, "called": true, "named": true, "as": true,
	"in": true,
}

// actionWords are verbs and nouns that belong to command phrasings.
// They are never argument candidates, no matter where they appear.
var actionWords = map[string]bool{
	"ls": true, "cd": true, "pwd": true, "mkdir": true, "rm": true,
	"cp": true, "mv": true, "ps": true, "df": true, "free": true,
	"git": true, "cat": true, "touch": true, "rmdir": true, "go": true,
	"enter": true, "navigate": true, "display": true, "check": true,
	"initialize": true, "commit": true, "generate": true, "remove": true,
	"get": true, "rid": true, "tell": true, "print": true,
	"duplicate": true, "copy": true, "make": true, "show": true,
	"list": true, "change": true, "move": true, "rename": true,
	"delete": true, "file": true, "files": true, "folder": true,
	"directory": true, "dir": true, "contents": true, "working": true,
	"running": true, "system": true, "location": true, "status": true,
	"init": true, "whoami": true, "back": true, "view": true,
	"banao": true, "hatao": true, "dikhao": true, "badlo": true,
	"saari": true, "nayi": true, "kahan": true, "hoon": true, "main": true,
	"batao": true, "processes": true, "memory": true, "disk": true,
	"space": true, "usage": true,
}

func isCommandVocabulary(word string) bool {
	lower := strings.ToLower(word)
	return actionWords[lower] || nlp.IsStopword(lower)
}

// catalogKeywords are core concept words from the catalog phrasings.
// Candidates too similar to one of these are command vocabulary, not
// arguments, and get filtered out.
var catalogKeywords = []string{
	"folder", "directory", "file", "delete", "create", "rename", "move",
	"process", "memory", "disk", "status", "commit", "list", "show",
	"change", "copy", "git", "banao", "hatao", "dikhao",
}

// entityFilterThreshold is the similarity above which a candidate is
// considered command vocabulary rather than an argument.
const entityFilterThreshold = 0.85

var extensionPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+\.[a-zA-Z0-9_.-]+$`)

// Parse tokenizes raw input and extracts entity candidates.
func (e *EntityExtractor) Parse(raw string) *ParsedUtterance {
	tokens := e.engine.Tokenize(raw)
	utt := &ParsedUtterance{
		Raw:        raw,
		Normalized: nlp.Normalize(raw),
		Tokens:     tokens,
	}

	var paths []string
	for i, tok := range tokens {
		switch tok.Kind {
		case nlp.TokenQuoted:
			utt.Entities.Text = append(utt.Entities.Text, tok.Text)
			continue
		case nlp.TokenFlag:
			continue
		case nlp.TokenPath:
			paths = append(paths, strings.TrimRight(tok.Text, ",;:!?"))
			continue
		}

		// Words on either side of an argument preposition are likely
		// paths even without path syntax: "called MyProject" names a
		// target, "rename draft as final" names a source then a target.
		nextIsPrep := i+1 < len(tokens) && argPrepositions[strings.ToLower(tokens[i+1].Text)]
		prevIsPrep := i > 0 && argPrepositions[strings.ToLower(tokens[i-1].Text)]
		if nextIsPrep || prevIsPrep {
			if word := cleanWord(tok.Text); word != "" && !isCommandVocabulary(word) {
				paths = append(paths, word)
			}
		}
	}

	// Fallback: trailing bare nouns are the best remaining guess for
	// targets, in order ("folder banao docs", "rename draft backup").
	paths = append(paths, trailingWords(tokens)...)

	utt.Entities.Path = e.filterCandidates(dedupe(paths))
	return utt
}

func cleanWord(word string) string {
	return strings.Trim(word, ".,;:!?\"'")
}

// trailingWords collects the run of bare non-vocabulary words at the
// end of the input, oldest first, stopping at the first token that is
// command vocabulary or not a plain word.
func trailingWords(tokens []nlp.Token) []string {
	var words []string
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		if tok.Kind != nlp.TokenWord {
			break
		}
		word := cleanWord(tok.Text)
		if word == "" || isCommandVocabulary(word) {
			break
		}
		words = append([]string{word}, words...)
	}
	return words
}

// filterCandidates drops candidates that are really command vocabulary.
// Path-looking values (separators or an extension) survive the filter
// since "copy.txt" is a filename even though it resembles "copy".
func (e *EntityExtractor) filterCandidates(candidates []string) []string {
	var kept []string
	for _, cand := range candidates {
		lower := strings.ToLower(cand)
		pathLike := strings.ContainsAny(cand, `/\`) || cand == "." || cand == ".." || cand == "~"
		hasExtension := extensionPattern.MatchString(cand)

		vocabulary := false
		if !pathLike && !hasExtension {
			for _, kw := range catalogKeywords {
				if nlp.PairRatio(lower, kw) >= entityFilterThreshold {
					vocabulary = true
					break
				}
			}
		}
		if !vocabulary {
			kept = append(kept, cand)
		}
	}
	return kept
}

func dedupe(values []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

var commitFlagPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:-m|message)\s+"([^"]+)"`),
	regexp.MustCompile(`(?i)(?:-m|message)\s+'([^']+)'`),
}

// CommitMessage recovers a commit message from raw input: an explicit
// -m/"message" flag wins, then any quoted span, then the free text that
// follows the matched phrasing.
func CommitMessage(raw, matchedPhrase string, entities Entities) (string, bool) {
	for _, p := range commitFlagPatterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			return m[1], true
		}
	}
	if len(entities.Text) > 0 {
		return entities.Text[0], true
	}
	if matchedPhrase != "" {
		lowerRaw := strings.ToLower(raw)
		if idx := strings.LastIndex(lowerRaw, matchedPhrase); idx >= 0 {
			tail := strings.TrimSpace(raw[idx+len(matchedPhrase):])
			tail = strings.Trim(tail, "\"'")
			if tail != "" {
				return tail, true
			}
		}
	}
	return "", false
}
