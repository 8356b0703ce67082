package exporter

import (
	"regexp"
	"strings"
)

// Checkbox glyphs as Keep renders list items in plain text.
const (
	uncheckedGlyph = "☐"
	checkedGlyph   = "☑"
)

// urlPattern matches the maximal URL tokens found in note bodies. The
// character class mirrors the grammar Keep itself produces, including
// percent-encoded octets.
var urlPattern = regexp.MustCompile(`https?://(?:[a-zA-Z]|[0-9]|[~#$-_@.&+]|[!*(),]|%[0-9a-fA-F][0-9a-fA-F])+`)

// markdownLinkPattern matches an already-rendered markdown link, so that a
// second conversion pass leaves converted documents unchanged.
var markdownLinkPattern = regexp.MustCompile(`!?\[[^\]\n]*\]\([^)\n]*\)`)

// urlSentinel temporarily replaces the second character of each matched URL
// while links are being built. Notes can repeat the same URL, and the link
// syntax embeds the URL text verbatim; masking breaks the self-similarity so
// no occurrence is wrapped twice. One global pass restores it at the end.
const urlSentinel = "%%%"

// rewriteBody applies the markdown rewrites to a note body. URL conversion
// runs first; checkbox glyphs never occur inside URLs, so the glyph pass
// cannot disturb the links.
func rewriteBody(text string) string {
	return formatCheckBoxes(convertURLs(text))
}

// convertURLs wraps every bare URL in the text as a markdown link [X](X).
// Each occurrence is wrapped at most once, and URLs that are already part of
// a markdown link are left alone, so the function is idempotent.
func convertURLs(text string) string {
	matches := urlPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	links := markdownLinkPattern.FindAllStringIndex(text, -1)

	var b strings.Builder
	last := 0
	for _, m := range matches {
		if m[0] < last || overlapsAny(m, links) {
			continue
		}
		url := text[m[0]:m[1]]
		masked := url[:1] + urlSentinel + url[2:]
		b.WriteString(text[last:m[0]])
		b.WriteString("[")
		b.WriteString(masked)
		b.WriteString("](")
		b.WriteString(masked)
		b.WriteString(")")
		last = m[1]
	}
	b.WriteString(text[last:])

	return strings.ReplaceAll(b.String(), "h"+urlSentinel+"tp", "http")
}

// formatCheckBoxes substitutes Keep's checkbox glyphs with markdown task
// list markers.
func formatCheckBoxes(text string) string {
	text = strings.ReplaceAll(text, uncheckedGlyph, "- [ ]")
	return strings.ReplaceAll(text, checkedGlyph, "- [x]")
}

// formatMediaLink renders the markdown embed for a staged attachment path.
func formatMediaLink(relPath string) string {
	return "![" + relPath + "](" + relPath + ")"
}

func overlapsAny(span []int, spans [][]int) bool {
	for _, s := range spans {
		if span[0] < s[1] && s[0] < span[1] {
			return true
		}
	}
	return false
}
