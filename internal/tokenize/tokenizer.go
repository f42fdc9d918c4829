// Package tokenize splits prose into word tokens.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// DefaultJoiners are the runes that glue neighbouring segments into one token.
const DefaultJoiners = "=-"

// WordTokenizer segments text on Unicode word boundaries (UAX #29).
//
// Whitespace is dropped and every other segment becomes a token, except that
// joiner runes stick to the segments touching them: "==History==",
// "1999-2001" and "well-known" each stay a single token while "3.5%" becomes
// "3.5" and "%".
type WordTokenizer struct {
	joiners string
}

// NewWordTokenizer creates a tokenizer with the default joiners.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{joiners: DefaultJoiners}
}

// NewWordTokenizerWithJoiners creates a tokenizer with custom joiner runes.
// An empty string disables joining.
func NewWordTokenizerWithJoiners(joiners string) *WordTokenizer {
	return &WordTokenizer{joiners: joiners}
}

// Tokenize returns the tokens of text in order.
func (w *WordTokenizer) Tokenize(text string) []string {
	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	segments := words.FromString(text)
	for segments.Next() {
		segment := segments.Value()

		if isSpace(segment) {
			flush()
			continue
		}

		if current.Len() > 0 && !w.joinable(current.String(), segment) {
			flush()
		}

		current.WriteString(segment)
	}

	flush()

	return tokens
}

// joinable reports whether segment continues the token built so far.
func (w *WordTokenizer) joinable(token, segment string) bool {
	if w.joiners == "" {
		return false
	}

	if w.isJoiner(segment) {
		return true
	}

	last, _ := utf8.DecodeLastRuneInString(token)

	return strings.ContainsRune(w.joiners, last)
}

func (w *WordTokenizer) isJoiner(segment string) bool {
	for _, r := range segment {
		if !strings.ContainsRune(w.joiners, r) {
			return false
		}
	}

	return segment != ""
}

func isSpace(segment string) bool {
	for _, r := range segment {
		if !unicode.IsSpace(r) {
			return false
		}
	}

	return segment != ""
}
