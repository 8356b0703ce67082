package exporter

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/keepmark/keep-to-markdown/internal/domain/keep"
	"github.com/keepmark/keep-to-markdown/internal/infra/exportfs"
)

// fallbackMediaExt is assigned to attachments with no recognized image
// signature. Unrecognized binary attachments are assumed to be voice
// recordings, the dominant non-image attachment type in Keep.
const fallbackMediaExt = ".m4a"

// mediaSniffLen is how much of an attachment is read for signature checks.
const mediaSniffLen = 512

// mediaSignatures lists the recognized content signatures in the fixed
// priority order they are checked.
var mediaSignatures = []struct {
	ext   string
	match func([]byte) bool
}{
	{".png", func(b []byte) bool { return bytes.HasPrefix(b, []byte("\x89PNG\r\n\x1a\n")) }},
	{".jpg", func(b []byte) bool { return bytes.HasPrefix(b, []byte{0xFF, 0xD8, 0xFF}) }},
	{".gif", func(b []byte) bool {
		return bytes.HasPrefix(b, []byte("GIF87a")) || bytes.HasPrefix(b, []byte("GIF89a"))
	}},
	{".webp", func(b []byte) bool {
		return len(b) >= 12 && bytes.HasPrefix(b, []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP"))
	}},
}

// resolveMediaExt picks the canonical extension for attachment content.
// It never fails; unrecognized content gets the fallback extension.
func resolveMediaExt(data []byte) string {
	for _, sig := range mediaSignatures {
		if sig.match(data) {
			return sig.ext
		}
	}
	return fallbackMediaExt
}

// mediaBaseName builds the stable attachment name {note id}_{index}.
func mediaBaseName(noteID string, index int) string {
	return noteID + "_" + strconv.Itoa(index)
}

// stageNoteMedia copies every attachment of a note into the media directory
// under its final name and returns the resulting assets. A failed attachment
// is reported and omitted; it never fails the note.
func (e Exporter) stageNoteMedia(note keep.Note, mediaDirName string) []keep.MediaAsset {
	if len(note.Blobs) == 0 {
		return nil
	}
	assets := make([]keep.MediaAsset, 0, len(note.Blobs))
	for idx, blob := range note.Blobs {
		asset, err := e.stageBlob(note.ID, idx, blob, mediaDirName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: attachment %d of note %s skipped: %v\n", idx, note.ID, err)
			continue
		}
		assets = append(assets, asset)
	}
	return assets
}

// stageBlob fetches one attachment into the media directory. The bytes land
// in a temporary .dat file first, get sniffed for their real type, and are
// then renamed to the final {base}{ext} name. Cleanup of the temporary file
// is idempotent: a temp file already moved away is not an error.
func (e Exporter) stageBlob(noteID string, idx int, blob keep.BlobRef, mediaDirName string) (keep.MediaAsset, error) {
	base := mediaBaseName(noteID, idx)
	mediaDir := filepath.Join(e.OutputDir, mediaDirName)
	tmpPath := filepath.Join(mediaDir, base+".dat")

	srcPath := filepath.Join(e.InputDir, filepath.FromSlash(blob.Path))
	if err := exportfs.CopyFile(srcPath, tmpPath); err != nil {
		return keep.MediaAsset{}, err
	}

	head, err := exportfs.ReadHead(tmpPath, mediaSniffLen)
	if err != nil {
		return keep.MediaAsset{}, err
	}
	ext := resolveMediaExt(head)

	finalPath := filepath.Join(mediaDir, base+ext)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return keep.MediaAsset{}, fmt.Errorf("rename staged attachment: %w", err)
	}
	if err := exportfs.RemoveIfExists(tmpPath); err != nil {
		return keep.MediaAsset{}, err
	}

	return keep.MediaAsset{
		Blob:     blob,
		BaseName: base,
		Ext:      ext,
		RelPath:  path.Join(mediaDirName, base+ext),
	}, nil
}
