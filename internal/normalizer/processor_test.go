package normalizer

import (
	"strings"
	"testing"

	"github.com/iryzhkov/nlp-pipeline/internal/lemma"
	"github.com/iryzhkov/nlp-pipeline/internal/logger"
	"github.com/iryzhkov/nlp-pipeline/internal/markup"
	"github.com/iryzhkov/nlp-pipeline/internal/tokenize"
)

func newTestProcessor() *Processor {
	return NewProcessor(
		markup.NewWikiCleaner(),
		tokenize.NewWordTokenizer(),
		lemma.Map{"had": "have"},
		logger.Discard(),
	)
}

func TestNewProcessor(t *testing.T) {
	p := newTestProcessor()
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_Normalize_EndToEnd(t *testing.T) {
	p := newTestProcessor()

	input := "<<article_start>>In [[1990]], he had 3.5%.<<article_end>>"
	want := "<<article_start>> in <<year>> , he have <<number>> . <<article_end>> <<article_start>> <<article_end>>"

	if got := p.Normalize(input); got != want {
		t.Errorf("Normalize(%q)\n got: %q\nwant: %q", input, got, want)
	}
}

func TestProcessor_NormalizeWithStats(t *testing.T) {
	p := newTestProcessor()

	input := "<<article_start>>==History==\nFounded in 1850s, it had 12 rooms.<<article_end>>" +
		"<<article_start>>Second&nbsp;article, 1999-2001.<<article_end>>"

	text, stats := p.NormalizeWithStats(input)

	want := "<<article_start>> <<section_title_start>> history <<section_title_end>> founded in <<year>> , it have <<number>> rooms . <<article_end>>" +
		" <<article_start>> second ; article , <<year>> . <<article_end>>" +
		" <<article_start>> <<article_end>>"

	if text != want {
		t.Fatalf("NormalizeWithStats text\n got: %q\nwant: %q", text, want)
	}

	if stats.Articles != 3 {
		t.Errorf("Articles = %d, want 3", stats.Articles)
	}

	if stats.Years != 2 {
		t.Errorf("Years = %d, want 2", stats.Years)
	}

	if stats.Numbers != 1 {
		t.Errorf("Numbers = %d, want 1", stats.Numbers)
	}

	if stats.SectionTitles != 1 {
		t.Errorf("SectionTitles = %d, want 1", stats.SectionTitles)
	}

	if stats.Tokens != len(strings.Split(text, " ")) {
		t.Errorf("Tokens = %d, want %d", stats.Tokens, len(strings.Split(text, " ")))
	}

	if stats.Bytes != len(text) {
		t.Errorf("Bytes = %d, want %d", stats.Bytes, len(text))
	}
}

func TestProcessor_Normalize_Properties(t *testing.T) {
	p := newTestProcessor()

	inputs := []string{
		"",
		"no sentinels at all",
		"<<article_start>>A&nbsp;B<<article_end>>",
		"<<article_start>>One<<article_end>><<article_start>>Two<<article_end>><<article_start>>Three<<article_end>>",
		"<<article_start>>Unbalanced start only",
		"<<article_end>><<article_end>>",
	}

	for _, input := range inputs {
		out := p.Normalize(input)

		if strings.Contains(out, "&nbsp") {
			t.Errorf("Normalize(%q) kept &nbsp: %q", input, out)
		}

		fragments := len(strings.Split(input, ArticleEnd))
		if n := strings.Count(out, ArticleStart); n != fragments {
			t.Errorf("Normalize(%q) has %d article starts, want %d", input, n, fragments)
		}

		if n := strings.Count(out, ArticleEnd); n != fragments {
			t.Errorf("Normalize(%q) has %d article ends, want %d", input, n, fragments)
		}

		if CollapseWhitespace(out) != out {
			t.Errorf("Normalize(%q) left whitespace runs: %q", input, out)
		}
	}
}

func TestProcessor_SetPreviewWidth(t *testing.T) {
	p := newTestProcessor()

	p.SetPreviewWidth(0)
	if p.previewWidth != DefaultPreviewWidth {
		t.Errorf("previewWidth = %d, want %d", p.previewWidth, DefaultPreviewWidth)
	}

	p.SetPreviewWidth(20)
	if p.previewWidth != 20 {
		t.Errorf("previewWidth = %d, want 20", p.previewWidth)
	}
}
