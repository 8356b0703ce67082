// Package keep defines the domain types for notes pulled out of a Keep dump.
package keep

import "time"

// Note is one raw note record as delivered by the note source. A Note is
// immutable once constructed; derived state (resolved title, folder, staged
// media) lives with the exporter, not here.
type Note struct {
	ID       string
	Title    string
	Text     string
	Archived bool
	Trashed  bool
	Created  time.Time
	Updated  time.Time
	Labels   []string
	Blobs    []BlobRef
}

// BlobRef points at one attachment of a note, in attachment order.
type BlobRef struct {
	// Path of the attachment relative to the dump root.
	Path string
	// Mimetype as recorded by the source. Advisory only: the exporter
	// resolves the real extension from the attachment content.
	Mimetype string
}

// MediaAsset is one attachment after staging: named, typed and placed
// relative to the export root. Never mutated after creation.
type MediaAsset struct {
	Blob     BlobRef
	BaseName string // {note id}_{attachment index}
	Ext      string
	RelPath  string // e.g. media/{BaseName}{Ext}
}

// HasLabel reports whether the note carries the given label.
func (n Note) HasLabel(label string) bool {
	for _, l := range n.Labels {
		if l == label {
			return true
		}
	}
	return false
}
