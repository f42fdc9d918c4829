package normalizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iryzhkov/nlp-pipeline/internal/models"
)

var (
	// wikiLinkPattern keeps the target of [[target]] and [[target|display]].
	wikiLinkPattern = regexp.MustCompile(`\[{2}(.*?)(\|[\p{L}\p{N}\p{M}_\s|]*)?\]{2}`)
)

// Transformer applies the per-article cleaning pass.
type Transformer struct {
	cleaner    MarkupCleaner
	tokenizer  Tokenizer
	lemmatizer Lemmatizer
	lower      cases.Caser
}

// NewTransformer creates a new transformer instance.
func NewTransformer(cleaner MarkupCleaner, tokenizer Tokenizer, lemmatizer Lemmatizer) *Transformer {
	return &Transformer{
		cleaner:    cleaner,
		tokenizer:  tokenizer,
		lemmatizer: lemmatizer,
		lower:      cases.Lower(language.Und),
	}
}

// Transform cleans one article fragment and wraps the result in article
// sentinels. An empty fragment still yields a wrapped (empty) article.
func (t *Transformer) Transform(index int, fragment string) models.Article {
	body := strings.ReplaceAll(fragment, ArticleStart, "")
	body = t.cleaner.Clean(body)
	body = strings.ReplaceAll(body, ">", "")
	body = ExpandLinks(body)
	body = strings.ReplaceAll(body, "|", " ")

	tokens := t.tokenizer.Tokenize(body)
	for i, token := range tokens {
		tokens[i] = t.lemmatizer.Lemmatize(t.lower.String(token))
	}

	return models.Article{
		Index:  index,
		Text:   ArticleStart + " " + strings.Join(tokens, " ") + " " + ArticleEnd,
		Tokens: len(tokens),
	}
}

// ExpandLinks replaces wiki links with their target text, dropping the
// display segment and the brackets.
func ExpandLinks(text string) string {
	return wikiLinkPattern.ReplaceAllString(text, "${1}")
}
