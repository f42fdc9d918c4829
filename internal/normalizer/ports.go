package normalizer

// MarkupCleaner turns raw wiki markup into plain prose.
type MarkupCleaner interface {
	Clean(raw string) string
}

// Tokenizer splits text into word-like tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Lemmatizer reduces an inflected word to its dictionary form. Words it does
// not know are returned unchanged.
type Lemmatizer interface {
	Lemmatize(token string) string
}
