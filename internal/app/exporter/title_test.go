package exporter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var titleCreated = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func TestResolveTitleStripsSymbols(t *testing.T) {
	got := resolveTitle("Groceries! (weekly)", "body", nil, false, titleCreated)
	assert.Equal(t, "Groceries weekly", got)
}

func TestResolveTitleInfersFirstPhrase(t *testing.T) {
	got := resolveTitle("", "Buy milk. And bread too.\nsecond line", nil, false, titleCreated)
	assert.Equal(t, "Buy milk", got)

	got = resolveTitle("!!!", "Call mom, then dad", nil, false, titleCreated)
	assert.Equal(t, "Call mom", got)
}

func TestResolveTitleTruncatesInferredTitle(t *testing.T) {
	body := strings.Repeat("a", 80)
	got := resolveTitle("", body, nil, false, titleCreated)
	assert.Len(t, []rune(got), maxInferredTitleLen)
}

func TestResolveTitleFallsBackToMediaType(t *testing.T) {
	assert.Equal(t, "Image", resolveTitle("", "", []string{".png"}, false, titleCreated))
	assert.Equal(t, "Image", resolveTitle("", "", []string{".jpg", ".m4a"}, false, titleCreated))
	assert.Equal(t, "File", resolveTitle("", "", []string{".m4a"}, false, titleCreated))
	assert.Equal(t, "File", resolveTitle("", "", []string{".gif"}, false, titleCreated))
}

func TestResolveTitlePrefixesFragments(t *testing.T) {
	got := resolveTitle("Idea", "", nil, true, titleCreated)
	assert.Equal(t, "240301103000 Idea", got)
}

func TestResolveTitleTimestampOnlyFragment(t *testing.T) {
	got := resolveTitle("", "", nil, true, titleCreated)
	assert.Equal(t, "240301103000", got)
}

func TestResolveTitleEmptyWhenNothingUsable(t *testing.T) {
	assert.Equal(t, "", resolveTitle("", "", nil, false, titleCreated))
	assert.Equal(t, "", resolveTitle("  ", "\n\n", nil, false, titleCreated))
}

func TestResolveTitleIsIdempotentOnCleanTitles(t *testing.T) {
	once := resolveTitle("Meeting notes 2024", "", nil, false, titleCreated)
	twice := resolveTitle(once, "", nil, false, titleCreated)
	assert.Equal(t, once, twice)
}
