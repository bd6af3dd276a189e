package utils

import (
	"regexp"
	"strings"
)

const PreviewMaxLen = 280

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// StripHTML reduces stored rich-text content to plain text. Block tags are
// replaced with spaces first so adjacent paragraphs do not run together.
func StripHTML(html string) string {
	text := tagRe.ReplaceAllString(html, " ")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	text = strings.ReplaceAll(text, "&#39;", "'")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Preview derives the short plain-text excerpt shown in document lists.
// Truncation is rune-based so multibyte text is never cut mid-character.
func Preview(html string) string {
	text := StripHTML(html)
	runes := []rune(text)
	if len(runes) <= PreviewMaxLen {
		return text
	}
	return string(runes[:PreviewMaxLen])
}
