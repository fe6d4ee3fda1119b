package packet

import (
	"fmt"
	"io"

	"github.com/arcanaland/flashpack/internal/card"
	"github.com/arcanaland/flashpack/internal/wire"
)

// Encode serializes cards into a packet.
func Encode(cards []card.Card, opts Options) ([]byte, error) {
	encoded := make([][]byte, len(cards))
	size := wire.CardCountWidth + wire.CardLenWidth*len(cards)
	for i, c := range cards {
		b, err := card.Encode(c, opts.FormatVersion)
		if err != nil {
			return nil, err
		}
		encoded[i] = b
		size += len(b)
	}

	buf := make([]byte, 0, size)
	buf, err := wire.AppendUint(buf, uint64(len(cards)), wire.CardCountWidth)
	if err != nil {
		return nil, fmt.Errorf("card count: %w", err)
	}
	for i, b := range encoded {
		if buf, err = wire.AppendUint(buf, uint64(len(b)), wire.CardLenWidth); err != nil {
			return nil, fmt.Errorf("card %q length: %w", cards[i].Name, err)
		}
	}
	for _, b := range encoded {
		buf = append(buf, b...)
	}

	opts.Logger.Debug().Int("cards", len(cards)).Int("bytes", len(buf)).Msg("packet encoded")
	return buf, nil
}

// Write encodes cards and writes the packet to w. Nothing is written when
// encoding fails.
func Write(w io.Writer, cards []card.Card, opts Options) error {
	b, err := Encode(cards, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
