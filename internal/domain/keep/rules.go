package keep

import (
	"strings"
	"unicode"
)

// Labels whose first character is uppercase are treated as folders, those
// starting with a lowercase letter as tags. A note carrying more than one
// folder label keeps only the first; the rest are silently ignored (first
// match wins, in the note's original label order).

// IsFolderLabel reports whether a label names a destination folder.
func IsFolderLabel(label string) bool {
	for _, r := range label {
		return unicode.IsUpper(r)
	}
	return false
}

// FolderLabel returns the first folder-style label of the note, if any.
func FolderLabel(labels []string) (string, bool) {
	for _, label := range labels {
		if IsFolderLabel(label) {
			return label, true
		}
	}
	return "", false
}

// Tags returns the lowercase-led labels in their original order. Labels that
// start with neither an upper- nor a lowercase letter are not tags.
func Tags(labels []string) []string {
	var tags []string
	for _, label := range labels {
		for _, r := range label {
			if unicode.IsLower(r) {
				tags = append(tags, label)
			}
			break
		}
	}
	return tags
}

// IsFragment reports whether the note carries no folder-style label. An
// unlabeled note is a fragment.
func (n Note) IsFragment() bool {
	_, ok := FolderLabel(n.Labels)
	return !ok
}

// IsEmpty reports whether the note has neither title nor body text.
func (n Note) IsEmpty() bool {
	return strings.TrimSpace(n.Title) == "" && strings.TrimSpace(n.Text) == ""
}
