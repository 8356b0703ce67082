package exporter

import (
	"strings"
	"time"
	"unicode"
)

// titleTimestampLayout renders a creation time as the 12-digit prefix of a
// fragment title, and as the suffix used to break filename collisions. The
// layout sorts chronologically as a string.
const titleTimestampLayout = "060102150405"

// maxInferredTitleLen caps titles inferred from the note body.
const maxInferredTitleLen = 64

// phraseBreaks end the leading phrase of a body line when a title is
// inferred from it.
const phraseBreaks = ".,:;?!"

// resolveTitle derives a display title for a note. It prefers the raw title,
// then the first phrase of the body, then the type of the first attachment.
// Fragment titles are prefixed with the creation timestamp so they sort
// chronologically; a timestamp-only title is valid. The result may be empty
// only for a non-fragment note with no usable title source at all, which the
// caller skips.
func resolveTitle(rawTitle, body string, mediaExts []string, fragment bool, created time.Time) string {
	title := keepAlnumAndSpace(rawTitle)

	if strings.TrimSpace(title) == "" && strings.TrimSpace(body) == "" {
		if len(mediaExts) > 0 {
			switch mediaExts[0] {
			case ".png", ".jpg":
				title = "Image"
			default:
				title = "File"
			}
		}
	} else if strings.TrimSpace(title) == "" {
		firstLine, _, _ := strings.Cut(body, "\n")
		firstPhrase := firstLine
		if idx := strings.IndexAny(firstLine, phraseBreaks); idx >= 0 {
			firstPhrase = firstLine[:idx]
		}
		title = truncateRunes(strings.TrimSpace(keepAlnumAndSpace(firstPhrase)), maxInferredTitleLen)
	}

	if fragment {
		stamp := created.Format(titleTimestampLayout)
		if len(title) > 0 {
			return stamp + " " + title
		}
		return stamp
	}

	return title
}

// keepAlnumAndSpace drops every rune that is not a letter, digit or
// whitespace, making the result safe as a file name.
func keepAlnumAndSpace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
