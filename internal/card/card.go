package card

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyInput  = errors.New("card: empty input")
	ErrInvalidUTF8 = errors.New("card: invalid UTF-8")
)

// Card represents one flashcard
type Card struct {
	Name     string   `json:"name"`     // File base name without extension
	Question string   `json:"question"` // First line of the file
	Tips     []string `json:"tips"`     // Remaining lines, in file order
}

// EmptyInputError reports a card file with no lines.
type EmptyInputError struct {
	Path string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s file is empty", e.Path)
}

func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// ReadCard reads and parses the card file at path
func ReadCard(path string) (Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return Card{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Card{}, fmt.Errorf("error reading card %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return Card{}, fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}

	name, _ := SplitExt(filepath.Base(path))
	c, err := Parse(name, data)
	if errors.Is(err, ErrEmptyInput) {
		return Card{}, &EmptyInputError{Path: path}
	}
	return c, err
}

// Parse builds a card from the text of a card file.
func Parse(name string, data []byte) (Card, error) {
	lines := splitLines(string(data))
	if len(lines) == 0 {
		return Card{}, &EmptyInputError{Path: name}
	}
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return Card{
		Name:     name,
		Question: lines[0],
		Tips:     lines[1:],
	}, nil
}

// splitLines splits text on \n, \r\n and \r. A trailing line break ends the
// last line rather than starting an empty one.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// SplitExt splits a base name into stem and extension. Leading dots belong to
// the stem, so ".txt" has no extension.
func SplitExt(base string) (string, string) {
	trimmed := strings.TrimLeft(base, ".")
	i := strings.LastIndex(trimmed, ".")
	if i < 0 {
		return base, ""
	}
	i += len(base) - len(trimmed)
	return base[:i], base[i:]
}
