package normalizer

import (
	"testing"

	"github.com/iryzhkov/nlp-pipeline/internal/lemma"
	"github.com/iryzhkov/nlp-pipeline/internal/markup"
	"github.com/iryzhkov/nlp-pipeline/internal/tokenize"
)

func newTestTransformer() *Transformer {
	return NewTransformer(
		markup.NewWikiCleaner(),
		tokenize.NewWordTokenizer(),
		lemma.Map{"had": "have", "was": "be", "cities": "city"},
	)
}

func TestExpandLinks(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "[[Albert Einstein|Einstein]]", want: "Albert Einstein"},
		{input: "[[Berlin]] and [[Paris]]", want: "Berlin and Paris"},
		{input: "[[A|b|c d]]", want: "A"},
		{input: "no links", want: "no links"},
	}

	for _, tt := range tests {
		if got := ExpandLinks(tt.input); got != tt.want {
			t.Errorf("ExpandLinks(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransformer_Transform(t *testing.T) {
	tr := newTestTransformer()

	tests := []struct {
		name       string
		fragment   string
		wantText   string
		wantTokens int
	}{
		{
			name:       "Sentence",
			fragment:   "<<article_start>>In [[1990]], he had 3.5%.",
			wantText:   "<<article_start>> in 1990 , he have 3.5 % . <<article_end>>",
			wantTokens: 8,
		},
		{
			name:       "Link display text dropped",
			fragment:   "[[Albert Einstein|Einstein]] was there",
			wantText:   "<<article_start>> albert einstein be there <<article_end>>",
			wantTokens: 4,
		},
		{
			name:       "Pipes and angle brackets",
			fragment:   "Cities|Towns > Villages",
			wantText:   "<<article_start>> city towns villages <<article_end>>",
			wantTokens: 3,
		},
		{
			name:       "Heading kept whole",
			fragment:   "==History==\nText",
			wantText:   "<<article_start>> ==history== text <<article_end>>",
			wantTokens: 2,
		},
		{
			name:       "Empty fragment",
			fragment:   "",
			wantText:   "<<article_start>>  <<article_end>>",
			wantTokens: 0,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article := tr.Transform(i, tt.fragment)

			if article.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", article.Text, tt.wantText)
			}

			if article.Tokens != tt.wantTokens {
				t.Errorf("Tokens = %d, want %d", article.Tokens, tt.wantTokens)
			}

			if article.Index != i {
				t.Errorf("Index = %d, want %d", article.Index, i)
			}
		})
	}
}
