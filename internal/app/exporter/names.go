package exporter

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrNamingExhausted is returned when no unique title can be found for a
// note within the attempt ceiling. Reaching it takes a batch of notes that
// share both a title and a creation second.
var ErrNamingExhausted = errors.New("could not find a unique note title")

// maxNameAttempts bounds the collision-suffix loop.
const maxNameAttempts = 1000

// NameRegistry tracks every title claimed during one export run. Uniqueness
// is run-scoped: the registry starts empty, only grows, and is discarded
// with the run. It is not safe for concurrent use; the exporter processes
// notes sequentially, and a parallel caller must serialize Claim.
type NameRegistry struct {
	claimed map[string]struct{}
}

// NewNameRegistry returns an empty registry for one export run.
func NewNameRegistry() *NameRegistry {
	return &NameRegistry{claimed: make(map[string]struct{})}
}

// Claim returns a title unique against every previously claimed title and
// against taken, which reports names already occupied outside the run
// (typically files on disk from an earlier export). Collisions are broken by
// appending the note's creation timestamp, then a numeric counter. The
// check and the claim are a single step, so a returned title can never be
// handed out twice.
func (r *NameRegistry) Claim(title string, created time.Time, taken func(string) bool) (string, error) {
	stamped := title + " " + created.Format(titleTimestampLayout)
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		candidate := title
		switch {
		case attempt == 1:
			candidate = stamped
		case attempt > 1:
			candidate = stamped + " " + strconv.Itoa(attempt)
		}
		if _, ok := r.claimed[candidate]; ok {
			continue
		}
		if taken != nil && taken(candidate) {
			continue
		}
		r.claimed[candidate] = struct{}{}
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrNamingExhausted, title)
}

// Claimed reports whether a title has been handed out during this run.
func (r *NameRegistry) Claimed(title string) bool {
	_, ok := r.claimed[title]
	return ok
}

// Len returns the number of titles claimed so far.
func (r *NameRegistry) Len() int {
	return len(r.claimed)
}
