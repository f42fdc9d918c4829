// Package markup strips wiki markup from article text.
package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// DefaultNamespaces are the link namespaces whose links are dropped entirely
// rather than expanded into text.
var DefaultNamespaces = []string{"file", "image", "media", "category"}

var (
	commentPattern      = regexp.MustCompile(`(?s)<!--.*?-->`)
	selfClosingRef      = regexp.MustCompile(`(?i)<ref[^>]*/>`)
	refPattern          = regexp.MustCompile(`(?is)<ref[^>]*>.*?</ref\s*>`)
	externalLinkPattern = regexp.MustCompile(`\[(?:https?|ftp)://[^\s\]]*(?:\s+([^\]]*))?\]`)
	emphasisPattern     = regexp.MustCompile(`'{2,5}`)
	listMarkerPattern   = regexp.MustCompile(`(?m)^[*#:;]+[ \t]*`)
	blankLinesPattern   = regexp.MustCompile(`\n{3,}`)
)

// skippedElements are HTML elements whose text content is not prose.
var skippedElements = map[string]bool{
	"gallery":         true,
	"math":            true,
	"score":           true,
	"script":          true,
	"style":           true,
	"syntaxhighlight": true,
	"timeline":        true,
}

// WikiCleaner removes MediaWiki markup and leaves plain prose. Internal links
// ([[target|label]]) and section headings (== Title ==) are kept as is.
type WikiCleaner struct {
	namespaces []string
}

// NewWikiCleaner creates a cleaner that drops links in DefaultNamespaces.
func NewWikiCleaner() *WikiCleaner {
	return &WikiCleaner{namespaces: DefaultNamespaces}
}

// Clean returns raw with markup removed.
func (c *WikiCleaner) Clean(raw string) string {
	text := commentPattern.ReplaceAllString(raw, "")
	text = selfClosingRef.ReplaceAllString(text, "")
	text = refPattern.ReplaceAllString(text, "")
	text = removeBalanced(text, "{{", "}}")
	text = removeBalanced(text, "{|", "|}")
	text = c.removeNamespacedLinks(text)
	text = externalLinkPattern.ReplaceAllString(text, "${1}")
	text = emphasisPattern.ReplaceAllString(text, "")
	text = stripTags(text)
	text = listMarkerPattern.ReplaceAllString(text, "")
	text = blankLinesPattern.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// removeBalanced drops every outermost open...close region, nesting
// included. An unterminated region is kept verbatim.
func removeBalanced(text, open, closing string) string {
	var b strings.Builder

	depth, start := 0, 0

	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], open):
			if depth == 0 {
				start = i
			}

			depth++
			i += len(open)
		case depth > 0 && strings.HasPrefix(text[i:], closing):
			depth--
			i += len(closing)
		default:
			if depth == 0 {
				b.WriteByte(text[i])
			}

			i++
		}
	}

	if depth > 0 {
		b.WriteString(text[start:])
	}

	return b.String()
}

// removeNamespacedLinks drops [[Namespace:...]] links, including nested links
// inside their captions.
func (c *WikiCleaner) removeNamespacedLinks(text string) string {
	var b strings.Builder

	for {
		i := c.indexNamespacedLink(text)
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}

		end := matchingClose(text[i:], "[[", "]]")
		if end < 0 {
			b.WriteString(text)
			return b.String()
		}

		b.WriteString(text[:i])
		text = text[i+end:]
	}
}

func (c *WikiCleaner) indexNamespacedLink(text string) int {
	offset := 0

	for {
		i := strings.Index(text[offset:], "[[")
		if i < 0 {
			return -1
		}

		pos := offset + i
		target := strings.ToLower(strings.TrimLeft(text[pos+2:], " :"))

		for _, ns := range c.namespaces {
			if strings.HasPrefix(target, ns+":") {
				return pos
			}
		}

		offset = pos + 2
	}
}

// matchingClose returns the index just past the closing delimiter that
// balances the opener at the start of text, or -1.
func matchingClose(text, open, closing string) int {
	depth := 0

	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], open):
			depth++
			i += len(open)
		case strings.HasPrefix(text[i:], closing):
			depth--
			i += len(closing)

			if depth == 0 {
				return i
			}
		default:
			i++
		}
	}

	return -1
}

// stripTags removes HTML tags, keeping their text content except for
// elements listed in skippedElements. Character entities are decoded.
func stripTags(text string) string {
	var b strings.Builder

	z := html.NewTokenizer(strings.NewReader(text))
	skipDepth := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if skippedElements[string(name)] {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if skippedElements[string(name)] && skipDepth > 0 {
				skipDepth--
			}
		}
	}
}
