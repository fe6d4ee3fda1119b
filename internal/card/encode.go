package card

import (
	"fmt"

	"github.com/arcanaland/flashpack/internal/wire"
)

// DefaultFormatVersion is the card format version written by this encoder.
const DefaultFormatVersion uint16 = 1

// Encode serializes c. Layout:
//
//	version:2 name_len:2 question_len:2 tip_count:2 tip_len:3*tip_count
//	name question tips...
func Encode(c Card, version uint16) ([]byte, error) {
	name := []byte(c.Name)
	question := []byte(c.Question)

	size := wire.VersionWidth + wire.NameLenWidth + wire.QuestionLenWidth + wire.TipCountWidth +
		wire.TipLenWidth*len(c.Tips) + len(name) + len(question)
	for _, tip := range c.Tips {
		size += len(tip)
	}
	buf := make([]byte, 0, size)

	var err error
	if buf, err = wire.AppendUint(buf, uint64(version), wire.VersionWidth); err != nil {
		return nil, fmt.Errorf("card %q version: %w", c.Name, err)
	}
	if buf, err = wire.AppendUint(buf, uint64(len(name)), wire.NameLenWidth); err != nil {
		return nil, fmt.Errorf("card %q name length: %w", c.Name, err)
	}
	if buf, err = wire.AppendUint(buf, uint64(len(question)), wire.QuestionLenWidth); err != nil {
		return nil, fmt.Errorf("card %q question length: %w", c.Name, err)
	}
	if buf, err = wire.AppendUint(buf, uint64(len(c.Tips)), wire.TipCountWidth); err != nil {
		return nil, fmt.Errorf("card %q tip count: %w", c.Name, err)
	}
	for i, tip := range c.Tips {
		if buf, err = wire.AppendUint(buf, uint64(len(tip)), wire.TipLenWidth); err != nil {
			return nil, fmt.Errorf("card %q tip %d length: %w", c.Name, i, err)
		}
	}

	buf = append(buf, name...)
	buf = append(buf, question...)
	for _, tip := range c.Tips {
		buf = append(buf, tip...)
	}
	return buf, nil
}
