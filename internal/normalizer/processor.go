// Package normalizer turns raw scraped article text into a cleaned,
// tokenized corpus annotated with placeholder markers.
package normalizer

import (
	"strings"

	"github.com/iryzhkov/nlp-pipeline/internal/logger"
	"github.com/iryzhkov/nlp-pipeline/internal/models"
	"github.com/iryzhkov/nlp-pipeline/pkg/utils"
)

// DefaultPreviewWidth is the display width of article previews in debug logs.
const DefaultPreviewWidth = 80

// Processor runs the full normalization pipeline over a corpus.
type Processor struct {
	transformer  *Transformer
	log          *logger.Logger
	helper       *utils.StringHelper
	previewWidth int
}

// NewProcessor creates a new processor instance.
func NewProcessor(cleaner MarkupCleaner, tokenizer Tokenizer, lemmatizer Lemmatizer, log *logger.Logger) *Processor {
	return &Processor{
		transformer:  NewTransformer(cleaner, tokenizer, lemmatizer),
		log:          log,
		helper:       utils.NewStringHelper(),
		previewWidth: DefaultPreviewWidth,
	}
}

// SetPreviewWidth sets the width of article previews logged at debug level.
func (p *Processor) SetPreviewWidth(width int) {
	if width > 0 {
		p.previewWidth = width
	}
}

// Normalize transforms raw corpus text into its cleaned form.
func (p *Processor) Normalize(raw string) string {
	text, _ := p.NormalizeWithStats(raw)

	return text
}

// NormalizeWithStats is Normalize plus statistics about the produced corpus.
func (p *Processor) NormalizeWithStats(raw string) (string, models.CorpusStats) {
	text := RemoveEntities(raw)

	p.log.Info("Cleaning the markup and applying token-wise operations")

	fragments := strings.Split(text, ArticleEnd)
	articles := make([]string, len(fragments))
	wordTokens := 0

	for i, fragment := range fragments {
		article := p.transformer.Transform(i, fragment)
		articles[i] = article.Text
		wordTokens += article.Tokens

		p.log.Debug("Article cleaned",
			"index", article.Index,
			"tokens", article.Tokens,
			"preview", p.helper.Preview(article.Text, p.previewWidth),
		)
	}

	text = strings.Join(articles, " ")

	p.log.Info("Changing years to " + YearMarker)
	text = ReplaceYears(text)

	p.log.Info("Changing numbers to " + NumberMarker)
	text = ReplaceNumbers(text)

	p.log.Info("Section title formatting")
	text = FormatSectionTitles(text)

	p.log.Info("Removing extra white-spaces")
	text = CollapseWhitespace(text)

	stats := models.CorpusStats{
		Articles:      len(articles),
		WordTokens:    wordTokens,
		Tokens:        p.helper.CountTokens(text),
		Bytes:         len(text),
		Years:         strings.Count(text, YearMarker),
		Numbers:       strings.Count(text, NumberMarker),
		SectionTitles: strings.Count(text, SectionTitleStart),
	}

	return text, stats
}
