package normalizer

import (
	"regexp"
	"strings"
)

// Structural markers shared with downstream consumers. Their spelling is part
// of the output format and must not change.
const (
	ArticleStart      = "<<article_start>>"
	ArticleEnd        = "<<article_end>>"
	YearMarker        = "<<year>>"
	NumberMarker      = "<<number>>"
	SectionTitleStart = "<<section_title_start>>"
	SectionTitleEnd   = "<<section_title_end>>"
)

// nbspEntity is removed verbatim; it is not decoded into a space.
const nbspEntity = "&nbsp"

var (
	yearPattern         = regexp.MustCompile(` \d{4}(-\d+|s)?`)
	numberPattern       = regexp.MustCompile(` \d[\d.,%]*(st|nd|rd|th| %)?`)
	numberRangePattern  = regexp.MustCompile(regexp.QuoteMeta(NumberMarker) + `-[\d.,%]+`)
	sectionTitlePattern = regexp.MustCompile(`==+(.*?)==+`)
	whitespaceRun       = regexp.MustCompile(`[\s\v\p{Z}]{2,}`)
)

// RemoveEntities drops every literal "&nbsp" from text.
func RemoveEntities(text string) string {
	return strings.ReplaceAll(text, nbspEntity, "")
}

// ReplaceYears replaces a space followed by four digits, with an optional
// "-N" range or "s" decade suffix, by " <<year>>".
func ReplaceYears(text string) string {
	return yearPattern.ReplaceAllLiteralString(text, " "+YearMarker)
}

// ReplaceNumbers replaces numeric runs (with optional ordinal or " %" suffix)
// by " <<number>>" and then folds "<<number>>-N" ranges into one marker.
func ReplaceNumbers(text string) string {
	text = numberPattern.ReplaceAllLiteralString(text, " "+NumberMarker)

	return numberRangePattern.ReplaceAllLiteralString(text, NumberMarker)
}

// FormatSectionTitles rewrites "==Title==" headings into section title markers.
func FormatSectionTitles(text string) string {
	return sectionTitlePattern.ReplaceAllString(text, SectionTitleStart+" ${1} "+SectionTitleEnd)
}

// CollapseWhitespace squeezes every run of two or more whitespace characters
// into a single space.
func CollapseWhitespace(text string) string {
	return whitespaceRun.ReplaceAllLiteralString(text, " ")
}
