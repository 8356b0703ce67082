package exporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nameCreated = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func TestClaimDistinctTitlesPassThrough(t *testing.T) {
	r := NewNameRegistry()

	a, err := r.Claim("Alpha", nameCreated, nil)
	require.NoError(t, err)
	b, err := r.Claim("Beta", nameCreated, nil)
	require.NoError(t, err)

	assert.Equal(t, "Alpha", a)
	assert.Equal(t, "Beta", b)
	assert.Equal(t, 2, r.Len())
}

func TestClaimBreaksCollisionsWithTimestampThenCounter(t *testing.T) {
	r := NewNameRegistry()

	first, err := r.Claim("Dup", nameCreated, nil)
	require.NoError(t, err)
	second, err := r.Claim("Dup", nameCreated, nil)
	require.NoError(t, err)
	third, err := r.Claim("Dup", nameCreated, nil)
	require.NoError(t, err)

	assert.Equal(t, "Dup", first)
	assert.Equal(t, "Dup 240301103000", second)
	assert.Equal(t, "Dup 240301103000 2", third)
	assert.True(t, r.Claimed(second))
}

func TestClaimConsultsTakenNames(t *testing.T) {
	r := NewNameRegistry()

	onDisk := map[string]bool{"Dup": true}
	got, err := r.Claim("Dup", nameCreated, func(name string) bool { return onDisk[name] })
	require.NoError(t, err)
	assert.Equal(t, "Dup 240301103000", got)
}

func TestClaimReturnsErrNamingExhausted(t *testing.T) {
	r := NewNameRegistry()

	_, err := r.Claim("Dup", nameCreated, func(string) bool { return true })
	assert.ErrorIs(t, err, ErrNamingExhausted)
	assert.Equal(t, 0, r.Len())
}

func TestClaimNeverHandsOutTheSameName(t *testing.T) {
	r := NewNameRegistry()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		name, err := r.Claim("Same", nameCreated, nil)
		require.NoError(t, err)
		if _, dup := seen[name]; dup {
			t.Fatalf("name %q handed out twice", name)
		}
		seen[name] = struct{}{}
	}
}
