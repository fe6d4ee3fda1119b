package validator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/flashpack/internal/packet"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestValidateCleanTree(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt":   "question",
		"b/c.txt": "question\ntip",
	})

	results, err := NewValidator(root, packet.DefaultOptions()).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
	assert.Equal(t, 2, results.Cards)

	cards, err := packet.Collect(root, packet.DefaultOptions())
	require.NoError(t, err)
	encoded, err := packet.Encode(cards, packet.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, len(encoded), results.Bytes)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"empty.txt":    "",
		"bad/utf8.txt": "\xff",
		"big/tip.txt":  "q\n" + strings.Repeat("x", 1<<24),
		"ok.txt":       "fine",
	})

	results, err := NewValidator(root, packet.DefaultOptions()).Validate()
	require.NoError(t, err)
	require.Len(t, results.Errors, 3)
	assert.Equal(t, 1, results.Cards)

	joined := strings.Join(results.Errors, "\n")
	assert.Contains(t, joined, "empty card file")
	assert.Contains(t, joined, "not valid UTF-8")
	assert.Contains(t, joined, "field too large")
}

func TestValidateWarnings(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"x/dup.txt": "one",
		"y/dup.txt": "two",
		"blank.txt": "   \ntip",
	})

	results, err := NewValidator(root, packet.DefaultOptions()).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	require.Len(t, results.Warnings, 2)
	assert.Contains(t, results.Warnings[0], "blank question")
	assert.Contains(t, results.Warnings[1], `duplicate card name "dup"`)
}

func TestValidateNoCards(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"notes.md": "nope"})

	results, err := NewValidator(root, packet.DefaultOptions()).Validate()
	require.NoError(t, err)
	require.Len(t, results.Warnings, 1)
	assert.Contains(t, results.Warnings[0], "no .txt cards found")
}

func TestValidateMissingSource(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "gone"), packet.DefaultOptions()).Validate()
	assert.True(t, errors.Is(err, packet.ErrPathNotFound))
}
