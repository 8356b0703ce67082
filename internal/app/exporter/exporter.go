// Package exporter turns raw Keep note records into markdown documents with
// deterministic, collision-free file names.
package exporter

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/keepmark/keep-to-markdown/internal/domain/keep"
	"github.com/keepmark/keep-to-markdown/internal/infra/exportfs"
	"github.com/keepmark/keep-to-markdown/internal/infra/keepjson"
)

// ErrMissingDirs is returned when the exporter is run without its input or
// output directory.
var ErrMissingDirs = errors.New("input and output directories are required")

// Exporter converts one Keep dump into a tree of markdown notes. The zero
// value is not usable; InputDir and OutputDir are required, the remaining
// fields have defaults.
type Exporter struct {
	InputDir  string
	OutputDir string

	// MediaDir and FragmentsDir are subdirectory names under OutputDir,
	// defaulting to "media" and "fragments".
	MediaDir     string
	FragmentsDir string

	// Labels restricts the export to notes carrying at least one of the
	// given labels. Empty means all notes.
	Labels []string

	// IncludeArchived exports archived notes too. Trashed notes are never
	// exported.
	IncludeArchived bool

	// Now is the record-construction clock for notes missing timestamps.
	// Defaults to time.Now.
	Now func() time.Time
}

// Stats summarizes one export run.
type Stats struct {
	Notes   int
	Media   int
	Skipped int
}

// Run processes the whole dump sequentially, one note at a time. Per-note
// failures are reported and skipped; only configuration and input errors
// abort the batch.
func (e Exporter) Run() (Stats, error) {
	if e.InputDir == "" || e.OutputDir == "" {
		return Stats{}, ErrMissingDirs
	}

	mediaDirName, err := resolveSubdirName(e.MediaDir, "media")
	if err != nil {
		return Stats{}, err
	}
	fragmentsDirName, err := resolveSubdirName(e.FragmentsDir, "fragments")
	if err != nil {
		return Stats{}, err
	}

	now := e.Now
	if now == nil {
		now = time.Now
	}

	notes, err := keepjson.ReadDump(e.InputDir, now())
	if err != nil {
		return Stats{}, err
	}
	notes = filterByLabels(notes, e.Labels)

	if err := os.MkdirAll(filepath.Join(e.OutputDir, mediaDirName), 0o755); err != nil {
		return Stats{}, fmt.Errorf("create media dir: %w", err)
	}

	progressBar := newExportProgressBar(len(notes))
	defer progressBar.Close()

	registry := NewNameRegistry()
	var stats Stats
	for _, note := range notes {
		progressBar.Advance("exporting notes")
		if note.Trashed || (note.Archived && !e.IncludeArchived) {
			continue
		}
		if err := e.exportNote(note, mediaDirName, fragmentsDirName, registry, &stats); err != nil {
			fmt.Fprintf(os.Stderr, "warning: note %s skipped: %v\n", note.ID, err)
			stats.Skipped++
		}
	}
	progressBar.Finish("done")

	return stats, nil
}

// exportNote runs the full pipeline for a single note: stage media, resolve
// title and folder, rewrite the body, claim a unique name, compose and write
// the document.
func (e Exporter) exportNote(note keep.Note, mediaDirName, fragmentsDirName string, registry *NameRegistry, stats *Stats) error {
	assets := e.stageNoteMedia(note, mediaDirName)
	exts := make([]string, len(assets))
	for i, asset := range assets {
		exts[i] = asset.Ext
	}

	fragment := note.IsFragment()
	title := resolveTitle(note.Title, note.Text, exts, fragment, note.Created)
	if title == "" {
		// Nothing to name the note by: no title, no body, no media.
		stats.Skipped++
		return nil
	}

	folder := "."
	if label, ok := keep.FolderLabel(note.Labels); ok {
		folder = label
	} else if fragment {
		folder = fragmentsDirName
	}

	unique, err := registry.Claim(title, note.Created, func(candidate string) bool {
		return exportfs.FileExists(filepath.Join(e.OutputDir, folder, candidate+".md"))
	})
	if err != nil {
		return err
	}

	doc := composeDocument(note, unique, folder, keep.Tags(note.Labels), rewriteBody(note.Text), assets)
	target := filepath.Join(e.OutputDir, filepath.FromSlash(doc.RelPath()))
	if err := exportfs.WriteDocument(target, doc.Document); err != nil {
		return err
	}

	stats.Notes++
	stats.Media += len(assets)
	return nil
}

// resolveSubdirName validates a configured subdirectory of the export root.
// A path escaping the root is a configuration error and fatal before any
// note is processed.
func resolveSubdirName(name, fallback string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback, nil
	}
	clean := path.Clean(filepath.ToSlash(name))
	if strings.HasPrefix(clean, "/") || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("invalid export subdirectory %q: must be a relative path inside the export root", name)
	}
	return clean, nil
}

func filterByLabels(notes []keep.Note, labels []string) []keep.Note {
	if len(labels) == 0 {
		return notes
	}
	out := make([]keep.Note, 0, len(notes))
	for _, note := range notes {
		for _, label := range labels {
			if note.HasLabel(label) {
				out = append(out, note)
				break
			}
		}
	}
	return out
}
