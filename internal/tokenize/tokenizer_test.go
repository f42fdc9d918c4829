package tokenize

import (
	"reflect"
	"testing"
)

func TestWordTokenizer_Tokenize(t *testing.T) {
	tok := NewWordTokenizer()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "Sentence with punctuation",
			input: "In 1990, he had 3.5%.",
			want:  []string{"In", "1990", ",", "he", "had", "3.5", "%", "."},
		},
		{
			name:  "Section heading stays whole",
			input: "==History==",
			want:  []string{"==History=="},
		},
		{
			name:  "Hyphenated words and ranges",
			input: "1999-2001 well-known",
			want:  []string{"1999-2001", "well-known"},
		},
		{
			name:  "Detached hyphen",
			input: "a - b",
			want:  []string{"a", "-", "b"},
		},
		{
			name:  "Newlines and tabs",
			input: "one\n\ttwo\r\nthree",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "Empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWordTokenizer_NoJoiners(t *testing.T) {
	tok := NewWordTokenizerWithJoiners("")

	got := tok.Tokenize("==x==")
	want := []string{"=", "=", "x", "=", "="}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}
}
