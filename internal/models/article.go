// Package models defines data structures shared by the cleaning stage.
package models

// Article is one cleaned article fragment of a corpus.
type Article struct {
	// Text is the cleaned body wrapped in article sentinels.
	Text   string `json:"text"`
	Index  int    `json:"index"`
	Tokens int    `json:"tokens"`
}
