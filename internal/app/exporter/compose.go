package exporter

import (
	"bytes"
	"path"

	"github.com/keepmark/keep-to-markdown/internal/domain/keep"
)

// noteSourceURL links a rendered document back to the note it came from.
const noteSourceURL = "https://keep.google.com/#NOTE/"

// frontMatterTimeLayout truncates note timestamps to minute precision.
const frontMatterTimeLayout = "2006-01-02T15:04"

// renderedNote is the final output identity and content for one note. It is
// derived, never stored, and owned by the composeDocument call that built it.
type renderedNote struct {
	Folder   string
	Title    string
	Tags     []string
	Document string
}

func (d renderedNote) Filename() string {
	return d.Title + ".md"
}

// RelPath is the document path relative to the export root, slash-separated.
func (d renderedNote) RelPath() string {
	return path.Join(d.Folder, d.Filename())
}

// composeDocument assembles the full document for one note: fixed-order
// front matter (created, updated, source, then tags when present), the
// rewritten body, and one embed line per staged attachment.
func composeDocument(note keep.Note, title, folder string, tags []string, body string, media []keep.MediaAsset) renderedNote {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	buf.WriteString("created: " + note.Created.Format(frontMatterTimeLayout) + "\n")
	buf.WriteString("updated: " + note.Updated.Format(frontMatterTimeLayout) + "\n")
	buf.WriteString("source: " + noteSourceURL + note.ID + "\n")
	if len(tags) > 0 {
		buf.WriteString("tags:\n")
		for _, tag := range tags {
			buf.WriteString("  - " + tag + "\n")
		}
	}
	buf.WriteString("---\n")

	if body != "" {
		buf.WriteString(body)
		buf.WriteString("\n\n")
	}
	for _, asset := range media {
		buf.WriteString(formatMediaLink(asset.RelPath))
		buf.WriteString("\n")
	}
	buf.WriteString("\n")

	return renderedNote{
		Folder:   folder,
		Title:    title,
		Tags:     tags,
		Document: buf.String(),
	}
}
