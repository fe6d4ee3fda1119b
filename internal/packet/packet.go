// Package packet collects cards from a source tree and serializes them into
// a packet.
//
// Packet layout (big-endian):
//
//	card_count:3 card_len:5*card_count card...
//
// Each card carries its own format version; the packet has none.
package packet

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/arcanaland/flashpack/internal/card"
)

// DefaultCardExtension is the extension of card source files.
const DefaultCardExtension = ".txt"

var ErrPathNotFound = errors.New("packet: path not found")

// PathNotFoundError reports a missing packet source directory.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%s doesn't exist", e.Path)
}

func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// Options configures collection and encoding.
type Options struct {
	CardExtension string
	FormatVersion uint16
	Logger        zerolog.Logger
}

// DefaultOptions returns the options the encoder ships with.
func DefaultOptions() Options {
	return Options{
		CardExtension: DefaultCardExtension,
		FormatVersion: card.DefaultFormatVersion,
		Logger:        zerolog.Nop(),
	}
}

// Collect reads every card file under root in traversal order.
// It stops at the first file that fails to parse.
func Collect(root string, opts Options) ([]card.Card, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, &PathNotFoundError{Path: root}
		}
		return nil, err
	}

	var cards []card.Card
	err := Walk(root, opts.CardExtension, func(path string) error {
		c, err := card.ReadCard(path)
		if err != nil {
			return err
		}
		opts.Logger.Debug().Str("path", path).Str("card", c.Name).Int("tips", len(c.Tips)).Msg("card collected")
		cards = append(cards, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cards, nil
}
