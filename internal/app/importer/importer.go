// Package importer turns markdown files back into new note records.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/keepmark/keep-to-markdown/internal/domain/keep"
)

// ErrMissingDir is returned when the importer is run without an input
// directory.
var ErrMissingDir = errors.New("import directory is required")

// NoteSink accepts the notes an import run creates. The shipped
// implementation is keepjson.Store; the real note service sits behind the
// same boundary.
type NoteSink interface {
	CreateNote(note keep.Note) error
}

// Importer creates one new note per markdown file found under InputDir.
type Importer struct {
	InputDir string

	// Labels are attached to every imported note, on top of any tags found
	// in the file's front matter.
	Labels []string

	// NewID mints identifiers for created notes. Defaults to uuid.NewString.
	NewID func() string
}

// Stats summarizes one import run.
type Stats struct {
	Notes   int
	Skipped int
}

// Run imports every markdown file below the input directory, recursively.
// Per-file failures are reported and skipped; they never abort the batch.
func (i Importer) Run(sink NoteSink) (Stats, error) {
	if i.InputDir == "" {
		return Stats{}, ErrMissingDir
	}
	newID := i.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	matches, err := doublestar.Glob(os.DirFS(i.InputDir), "**/*.md")
	if err != nil {
		return Stats{}, fmt.Errorf("scan import dir: %w", err)
	}
	sort.Strings(matches)

	var stats Stats
	for _, rel := range matches {
		note, err := i.readNote(rel, newID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s skipped: %v\n", rel, err)
			stats.Skipped++
			continue
		}
		if err := sink.CreateNote(note); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s not created: %v\n", rel, err)
			stats.Skipped++
			continue
		}
		stats.Notes++
	}
	return stats, nil
}

// readNote builds one note from a markdown file. The note is titled after
// the file name and its body carries a trailing line recording the file
// times, so the provenance survives even when the source file is deleted.
func (i Importer) readNote(rel string, newID func() string) (keep.Note, error) {
	path := filepath.Join(i.InputDir, filepath.FromSlash(rel))
	data, err := os.ReadFile(path)
	if err != nil {
		return keep.Note{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return keep.Note{}, err
	}

	meta, content, err := splitFrontMatter(data)
	if err != nil {
		return keep.Note{}, err
	}

	updated := info.ModTime()
	created := updated
	if t, ok := metaTime(meta, "created"); ok {
		created = t
	}

	body := strings.TrimRight(content, "\n")
	body += "\n\nCreated: " + created.Format("2006-01-02 15:04:05") +
		"   -   Updated: " + updated.Format("2006-01-02 15:04:05")

	labels := append([]string(nil), i.Labels...)
	labels = append(labels, metaTags(meta)...)

	return keep.Note{
		ID:      newID(),
		Title:   strings.TrimSuffix(filepath.Base(rel), ".md"),
		Text:    body,
		Created: created,
		Updated: updated,
		Labels:  dedupe(labels),
	}, nil
}

// splitFrontMatter separates an optional leading YAML block from the body.
// A file without the --- delimiter is all body.
func splitFrontMatter(data []byte) (map[string]any, string, error) {
	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return nil, string(data), nil
	}

	rest := data[4:]
	if bytes.HasPrefix(data, []byte("---\r\n")) {
		rest = data[5:]
	}
	idx := bytes.Index(rest, []byte("\n---"))
	if idx < 0 {
		return nil, "", errors.New("front matter started but no closing delimiter found")
	}

	var meta map[string]any
	if err := yaml.Unmarshal(rest[:idx+1], &meta); err != nil {
		return nil, "", fmt.Errorf("parse front matter: %w", err)
	}

	content := string(rest[idx+4:])
	content = strings.TrimPrefix(content, "\r")
	content = strings.TrimPrefix(content, "\n")
	return meta, content, nil
}

func metaTime(meta map[string]any, key string) (time.Time, bool) {
	raw, ok := meta[key]
	if !ok {
		return time.Time{}, false
	}
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func metaTags(meta map[string]any) []string {
	raw, ok := meta["tags"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

func dedupe(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}
