package codec

import (
	"fmt"

	"github.com/unkn0wn-root/romanum"
)

// Roman is a Codec[int] whose wire form is the numeral's ASCII text.
// The zero value is ready to use.
//
// Decode rejects payloads longer than the longest representable numeral
// before the grammar ever sees them, so an untrusted store cannot feed
// the scanner arbitrarily large input.
type Roman struct{}

var _ Codec[int] = Roman{}

func (Roman) Encode(n int) ([]byte, error) {
	s, err := romanum.Encode(n)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (Roman) Decode(b []byte) (int, error) {
	if len(b) > romanum.MaxEncodedLen {
		return 0, fmt.Errorf("roman payload too large: %d > %d", len(b), romanum.MaxEncodedLen)
	}
	return romanum.Decode(string(b))
}
