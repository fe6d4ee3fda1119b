package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/flashpack/internal/packet"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
name = "World Capitals"
author = "geo club"
tags = ["geography"]
card_ext = ".card"
format_version = 2
`)

	m, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "World Capitals", m.DisplayName())
	assert.Equal(t, []string{"geography"}, m.Tags)

	opts := m.Apply(packet.DefaultOptions())
	assert.Equal(t, ".card", opts.CardExtension)
	assert.Equal(t, uint16(2), opts.FormatVersion)
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	assert.True(t, errors.Is(err, ErrNoManifest))

	m, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), m.DisplayName())
	assert.Equal(t, packet.DefaultOptions().CardExtension, m.Apply(packet.DefaultOptions()).CardExtension)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `card_ext = "txt"`)

	_, err := LoadOptional(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card_ext")

	writeManifest(t, dir, `name = `)
	_, err = Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing")
}

func TestManifestIsNotACard(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `name = "x"`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("q"), 0644))

	cards, err := packet.Collect(dir, packet.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}
