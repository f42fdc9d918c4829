// Package validator checks cleaned corpora for structural problems.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iryzhkov/nlp-pipeline/internal/models"
	"github.com/iryzhkov/nlp-pipeline/internal/normalizer"
	"github.com/iryzhkov/nlp-pipeline/pkg/utils"
)

// Rule names reported in ValidationError.Rule.
const (
	RuleEntity         = "entity"
	RuleSentinels      = "sentinels"
	RuleWhitespace     = "whitespace"
	RulePlaceholder    = "placeholder"
	RuleSectionMarkers = "section_markers"
)

// maxErrorsPerRule caps how many occurrences of one rule are reported.
const maxErrorsPerRule = 10

var (
	doubleWhitespace = regexp.MustCompile(`[\s\v\p{Z}]{2,}`)
	gluedPlaceholder = regexp.MustCompile(`(\d<<(?:year|number)>>|<<(?:year|number)>>\d)`)
	sentinelPattern  = regexp.MustCompile(`<<article_(?:start|end)>>`)
)

// ValidationError represents a validation error with context.
type ValidationError struct {
	Rule    string
	Message string
	Offset  int
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Rule, e.Offset, e.Message)
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
	Stats    models.CorpusStats
	IsValid  bool
}

// CorpusValidator validates cleaned corpus text.
type CorpusValidator struct {
	helper *utils.StringHelper
}

// NewCorpusValidator creates a new validator.
func NewCorpusValidator() *CorpusValidator {
	return &CorpusValidator{helper: utils.NewStringHelper()}
}

// Validate runs every rule over text.
func (v *CorpusValidator) Validate(text string) *ValidationResult {
	result := &ValidationResult{
		IsValid:  true,
		Errors:   []ValidationError{},
		Warnings: []string{},
	}

	v.checkEntities(text, result)
	v.checkSentinels(text, result)
	v.checkWhitespace(text, result)
	v.checkPlaceholders(text, result)
	v.checkSectionMarkers(text, result)

	result.Stats = models.CorpusStats{
		Articles:      strings.Count(text, normalizer.ArticleStart),
		Tokens:        v.helper.CountTokens(text),
		Bytes:         len(text),
		Years:         strings.Count(text, normalizer.YearMarker),
		Numbers:       strings.Count(text, normalizer.NumberMarker),
		SectionTitles: strings.Count(text, normalizer.SectionTitleStart),
	}

	if result.Stats.Articles > 0 && strings.HasSuffix(text, normalizer.ArticleStart+" "+normalizer.ArticleEnd) {
		result.Warnings = append(result.Warnings, "corpus ends with an empty article")
	}

	return result
}

func (v *CorpusValidator) fail(result *ValidationResult, rule string, offset int, msg string) {
	result.IsValid = false
	result.Errors = append(result.Errors, ValidationError{Rule: rule, Offset: offset, Message: msg})
}

func (v *CorpusValidator) checkEntities(text string, result *ValidationResult) {
	if i := strings.Index(text, "&nbsp"); i >= 0 {
		v.fail(result, RuleEntity, i, "&nbsp entity left in text")
	}
}

// checkSentinels requires article markers to alternate start, end, start...
func (v *CorpusValidator) checkSentinels(text string, result *ValidationResult) {
	open := false
	reported := 0

	for _, loc := range sentinelPattern.FindAllStringIndex(text, -1) {
		isStart := text[loc[0]:loc[1]] == normalizer.ArticleStart
		if isStart == open {
			if reported < maxErrorsPerRule {
				v.fail(result, RuleSentinels, loc[0], fmt.Sprintf("unexpected %s", text[loc[0]:loc[1]]))
			}

			reported++
		}

		open = isStart
	}

	if open {
		v.fail(result, RuleSentinels, len(text), "last article is not closed")
	}
}

func (v *CorpusValidator) checkWhitespace(text string, result *ValidationResult) {
	for i, loc := range doubleWhitespace.FindAllStringIndex(text, maxErrorsPerRule) {
		v.fail(result, RuleWhitespace, loc[0], fmt.Sprintf("whitespace run #%d of %d bytes", i+1, loc[1]-loc[0]))
	}
}

func (v *CorpusValidator) checkPlaceholders(text string, result *ValidationResult) {
	for _, loc := range gluedPlaceholder.FindAllStringIndex(text, maxErrorsPerRule) {
		v.fail(result, RulePlaceholder, loc[0], fmt.Sprintf("placeholder touches a digit: %q", text[loc[0]:loc[1]]))
	}
}

func (v *CorpusValidator) checkSectionMarkers(text string, result *ValidationResult) {
	starts := strings.Count(text, normalizer.SectionTitleStart)
	ends := strings.Count(text, normalizer.SectionTitleEnd)

	if starts != ends {
		v.fail(result, RuleSectionMarkers, 0,
			fmt.Sprintf("%d section title starts but %d ends", starts, ends))
	}
}
