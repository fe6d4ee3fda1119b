package validator

import (
	"errors"
	"fmt"
	"os"

	"github.com/arcanaland/flashpack/internal/card"
	"github.com/arcanaland/flashpack/internal/packet"
	"github.com/arcanaland/flashpack/internal/wire"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
	Cards    int
	Bytes    int
}

// Validator checks a packet source tree without stopping at the first bad card
type Validator struct {
	SourcePath string
	Options    packet.Options
	Results    ValidationResults

	seen map[string]string
}

func NewValidator(sourcePath string, opts packet.Options) *Validator {
	return &Validator{
		SourcePath: sourcePath,
		Options:    opts,
		Results:    ValidationResults{},
		seen:       make(map[string]string),
	}
}

// Validate walks the source tree. The returned error is set only when the
// tree itself cannot be walked; problems with individual cards are recorded
// in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.SourcePath); os.IsNotExist(err) {
		return v.Results, &packet.PathNotFoundError{Path: v.SourcePath}
	}

	err := packet.Walk(v.SourcePath, v.Options.CardExtension, func(path string) error {
		v.validateCard(path)
		return nil
	})
	if err != nil {
		return v.Results, err
	}

	if v.Results.Cards == 0 && len(v.Results.Errors) == 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("no %s cards found in %s", v.Options.CardExtension, v.SourcePath))
	}

	v.validatePacketSize()
	return v.Results, nil
}

// validateCard parses and encodes a single card file
func (v *Validator) validateCard(path string) {
	c, err := card.ReadCard(path)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, describe(path, err))
		return
	}

	encoded, err := card.Encode(c, v.Options.FormatVersion)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, describe(path, err))
		return
	}

	v.Options.Logger.Debug().Str("path", path).Int("bytes", len(encoded)).Msg("card valid")

	if first, ok := v.seen[c.Name]; ok {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("duplicate card name %q: %s and %s", c.Name, first, path))
	} else {
		v.seen[c.Name] = path
	}
	if c.Question == "" {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("card %s has a blank question", path))
	}

	v.Results.Cards++
	v.Results.Bytes += wire.CardLenWidth + len(encoded)
}

// validatePacketSize checks the packet-level card count field
func (v *Validator) validatePacketSize() {
	if _, err := wire.PutUint(uint64(v.Results.Cards), wire.CardCountWidth); err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("too many cards: %v", err))
		return
	}
	v.Results.Bytes += wire.CardCountWidth
}

func describe(path string, err error) string {
	switch {
	case errors.Is(err, card.ErrEmptyInput):
		return fmt.Sprintf("empty card file: %s", path)
	case errors.Is(err, card.ErrInvalidUTF8):
		return fmt.Sprintf("card file is not valid UTF-8: %s", path)
	case errors.Is(err, wire.ErrOverflow):
		return fmt.Sprintf("field too large in %s: %v", path, err)
	default:
		return fmt.Sprintf("error reading %s: %v", path, err)
	}
}
