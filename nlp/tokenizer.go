package nlp

import (
	"regexp"
	"strings"
)

// TokenKind classifies a token produced by Tokenize.
type TokenKind string

const (
	TokenWord   TokenKind = "word"
	TokenPath   TokenKind = "path"
	TokenQuoted TokenKind = "quoted"
	TokenFlag   TokenKind = "flag"
	TokenNumber TokenKind = "number"
)

// Token is a single token of user input with its position in the
// original text.
type Token struct {
	Text     string
	Kind     TokenKind
	Position int
}

var (
	quotedPattern = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)
	flagPattern   = regexp.MustCompile(`^-{1,2}[a-zA-Z0-9][a-zA-Z0-9_-]*$`)
	numberPattern = regexp.MustCompile(`^[0-9]+$`)
	pathPattern   = regexp.MustCompile(`^(?:~|\.{1,2})$|[/\\]|^\.?[a-zA-Z0-9_-]+\.[a-zA-Z0-9_.-]+$`)
)

// Tokenize splits raw input into classified tokens. Quoted substrings
// become a single TokenQuoted token with the quotes stripped.
func Tokenize(text string) []Token {
	var tokens []Token

	// Pull out quoted spans first so their contents survive as one token.
	consumed := make([]bool, len(text))
	for _, loc := range quotedPattern.FindAllStringSubmatchIndex(text, -1) {
		inner := ""
		if loc[2] >= 0 {
			inner = text[loc[2]:loc[3]]
		} else if loc[4] >= 0 {
			inner = text[loc[4]:loc[5]]
		}
		tokens = append(tokens, Token{Text: inner, Kind: TokenQuoted, Position: loc[0]})
		for i := loc[0]; i < loc[1] && i < len(text); i++ {
			consumed[i] = true
		}
	}

	// Walk the remaining text field by field.
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := text[start:end]
		tokens = append(tokens, Token{Text: word, Kind: classify(word), Position: start})
		start = -1
	}
	for i, r := range text {
		if consumed[i] || r == ' ' || r == '\t' {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(text))

	// Restore positional order after the two passes.
	for i := 1; i < len(tokens); i++ {
		for j := i; j > 0 && tokens[j].Position < tokens[j-1].Position; j-- {
			tokens[j], tokens[j-1] = tokens[j-1], tokens[j]
		}
	}
	return tokens
}

func classify(word string) TokenKind {
	switch {
	case flagPattern.MatchString(word):
		return TokenFlag
	case pathPattern.MatchString(word):
		return TokenPath
	case numberPattern.MatchString(strings.Trim(word, ".,;:!?")):
		return TokenNumber
	default:
		return TokenWord
	}
}

// Normalize lowercases text and collapses runs of whitespace so that
// similarity scores are stable across spacing and casing.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// stopwords are function words that never carry an argument. The list
// follows the filler vocabulary seen in conversational command requests.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "to": true, "from": true,
	"in": true, "on": true, "at": true, "of": true, "for": true,
	"me": true, "my": true, "please": true, "using": true, "via": true,
	"with": true, "is": true, "are": true, "this": true, "that": true,
	"here": true, "now": true, "all": true, "everything": true,
	"named": true, "called": true, "name": true, "as": true, "into": true,
	"and": true, "it": true, "up": true, "one": true, "level": true,
	"current": true, "new": true, "empty": true, "these": true,
	"message": true, "kar": true, "karo": true, "do": true,
	"what": true, "where": true, "who": true, "how": true,
	"much": true, "am": true,
}

// IsStopword reports whether the lowercased word is filler that should
// never be treated as an argument candidate.
func IsStopword(word string) bool {
	return stopwords[strings.ToLower(word)]
}
