// Package keepjson reads and writes Keep Takeout-style note dumps: one JSON
// file per note next to its attachment files.
package keepjson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/keepmark/keep-to-markdown/internal/domain/keep"
)

// dumpNote is the on-disk JSON shape of one note. Takeout writes either
// textContent or listContent, never both with content.
type dumpNote struct {
	ID                      string          `json:"id,omitempty"`
	Title                   string          `json:"title"`
	TextContent             string          `json:"textContent,omitempty"`
	ListContent             []listItem      `json:"listContent,omitempty"`
	IsArchived              bool            `json:"isArchived"`
	IsTrashed               bool            `json:"isTrashed"`
	Labels                  []labelRef      `json:"labels,omitempty"`
	Attachments             []attachmentRef `json:"attachments,omitempty"`
	CreatedTimestampUsec    int64           `json:"createdTimestampUsec,omitempty"`
	UserEditedTimestampUsec int64           `json:"userEditedTimestampUsec,omitempty"`
}

type listItem struct {
	Text      string `json:"text"`
	IsChecked bool   `json:"isChecked"`
}

type labelRef struct {
	Name string `json:"name"`
}

type attachmentRef struct {
	FilePath string `json:"filePath"`
	Mimetype string `json:"mimetype,omitempty"`
}

// ReadDump loads every note file in dir, in deterministic ID order. Notes
// missing timestamps get now, captured once per run at record construction.
func ReadDump(dir string, now time.Time) ([]keep.Note, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dump dir: %w", err)
	}

	var notes []keep.Note
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".json") {
			continue
		}
		note, err := readNote(filepath.Join(dir, ent.Name()), now)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes, nil
}

func readNote(path string, now time.Time) (keep.Note, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return keep.Note{}, fmt.Errorf("read %s: %w", path, err)
	}
	var raw dumpNote
	if err := json.Unmarshal(b, &raw); err != nil {
		return keep.Note{}, fmt.Errorf("decode %s: %w", path, err)
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), ".json")
	}

	labels := make([]string, 0, len(raw.Labels))
	for _, l := range raw.Labels {
		if l.Name != "" {
			labels = append(labels, l.Name)
		}
	}

	blobs := make([]keep.BlobRef, 0, len(raw.Attachments))
	for _, a := range raw.Attachments {
		if a.FilePath == "" {
			continue
		}
		blobs = append(blobs, keep.BlobRef{Path: filepath.ToSlash(a.FilePath), Mimetype: a.Mimetype})
	}

	return keep.Note{
		ID:       id,
		Title:    raw.Title,
		Text:     noteText(raw),
		Archived: raw.IsArchived,
		Trashed:  raw.IsTrashed,
		Created:  usecToTime(raw.CreatedTimestampUsec, now),
		Updated:  usecToTime(raw.UserEditedTimestampUsec, now),
		Labels:   labels,
		Blobs:    blobs,
	}, nil
}

// noteText renders the note body as plain text. List notes become one glyph
// line per item, the same ☐/☑ form Keep itself renders lists in, so the
// exporter's checkbox rewrite applies uniformly.
func noteText(raw dumpNote) string {
	if len(raw.ListContent) == 0 {
		return raw.TextContent
	}
	lines := make([]string, 0, len(raw.ListContent))
	for _, item := range raw.ListContent {
		glyph := "☐"
		if item.IsChecked {
			glyph = "☑"
		}
		lines = append(lines, glyph+" "+item.Text)
	}
	return strings.Join(lines, "\n")
}

func usecToTime(usec int64, fallback time.Time) time.Time {
	if usec <= 0 {
		return fallback
	}
	return time.UnixMicro(usec).UTC()
}
