package models

import "fmt"

// CorpusStats describes a cleaned corpus.
type CorpusStats struct {
	Articles int `json:"articles"`
	// WordTokens counts tokenizer output before placeholder substitution.
	WordTokens int `json:"wordTokens"`
	// Tokens counts space-separated segments of the final text.
	Tokens        int `json:"tokens"`
	Bytes         int `json:"bytes"`
	Years         int `json:"years"`
	Numbers       int `json:"numbers"`
	SectionTitles int `json:"sectionTitles"`
}

// String returns a string representation of the stats.
func (s CorpusStats) String() string {
	return fmt.Sprintf(
		"CorpusStats{Articles: %d, Tokens: %d, Years: %d, Numbers: %d, SectionTitles: %d}",
		s.Articles, s.Tokens, s.Years, s.Numbers, s.SectionTitles,
	)
}
