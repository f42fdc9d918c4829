// Package lemma provides dictionary based lemmatizers.
package lemma

import (
	"errors"
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// ErrDictionaryUnavailable is returned when the lemma dictionary cannot be loaded.
var ErrDictionaryUnavailable = errors.New("lemma dictionary unavailable")

// Dictionary looks tokens up in a preloaded base-form dictionary.
type Dictionary struct {
	lemmatizer *golem.Lemmatizer
}

// NewEnglish loads the embedded English dictionary.
func NewEnglish() (*Dictionary, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictionaryUnavailable, err)
	}

	return &Dictionary{lemmatizer: l}, nil
}

// Lemmatize returns the base form of token, or token itself when the
// dictionary has no entry for it.
func (d *Dictionary) Lemmatize(token string) string {
	if !d.lemmatizer.InDict(token) {
		return token
	}

	return d.lemmatizer.Lemma(token)
}

// Known reports whether token has a dictionary entry.
func (d *Dictionary) Known(token string) bool {
	return d.lemmatizer.InDict(token)
}

// Identity returns every token unchanged.
type Identity struct{}

// Lemmatize returns token.
func (Identity) Lemmatize(token string) string {
	return token
}

// Map is a fixed lookup table, mostly useful in tests and for small
// domain-specific overrides.
type Map map[string]string

// Lemmatize returns the mapped base form of token, or token itself.
func (m Map) Lemmatize(token string) string {
	if base, ok := m[token]; ok {
		return base
	}

	return token
}
