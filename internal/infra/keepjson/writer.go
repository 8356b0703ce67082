package keepjson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/keepmark/keep-to-markdown/internal/domain/keep"
)

// Store persists created notes as Takeout-style JSON files, one per note,
// named after the note ID. It round-trips with ReadDump.
type Store struct {
	Dir string
}

// CreateNote writes one note into the store directory.
func (s Store) CreateNote(note keep.Note) error {
	if note.ID == "" {
		return fmt.Errorf("note has no identifier")
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	labels := make([]labelRef, 0, len(note.Labels))
	for _, name := range note.Labels {
		labels = append(labels, labelRef{Name: name})
	}
	attachments := make([]attachmentRef, 0, len(note.Blobs))
	for _, blob := range note.Blobs {
		attachments = append(attachments, attachmentRef{FilePath: blob.Path, Mimetype: blob.Mimetype})
	}

	payload := dumpNote{
		ID:                      note.ID,
		Title:                   note.Title,
		TextContent:             note.Text,
		IsArchived:              note.Archived,
		IsTrashed:               note.Trashed,
		Labels:                  labels,
		Attachments:             attachments,
		CreatedTimestampUsec:    timeToUsec(note.Created),
		UserEditedTimestampUsec: timeToUsec(note.Updated),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	target := filepath.Join(s.Dir, note.ID+".json")
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

func timeToUsec(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro()
}
