package romanum

import (
	"encoding"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Numeral is a validated Roman numeral value for struct fields that cross
// serialization boundaries. The zero value is empty and not a valid
// numeral; construct with Parse or FromInt.
//
// All marshal/unmarshal paths validate, so an invalid numeral is refused
// on the way out as well as on the way in.
type Numeral string

var (
	_ encoding.TextMarshaler   = Numeral("")
	_ encoding.TextUnmarshaler = (*Numeral)(nil)
	_ cbor.Marshaler           = Numeral("")
	_ cbor.Unmarshaler         = (*Numeral)(nil)
	_ msgpack.CustomEncoder    = Numeral("")
	_ msgpack.CustomDecoder    = (*Numeral)(nil)
)

// Parse validates s and returns it as a Numeral.
func Parse(s string) (Numeral, error) {
	if !Valid(s) {
		return "", &SyntaxError{Input: s}
	}
	return Numeral(s), nil
}

// FromInt encodes n as a Numeral.
func FromInt(n int) (Numeral, error) {
	s, err := Encode(n)
	if err != nil {
		return "", err
	}
	return Numeral(s), nil
}

// Int returns the integer value of the numeral.
func (n Numeral) Int() (int, error) { return Decode(string(n)) }

// Valid reports whether the numeral is well formed.
func (n Numeral) Valid() bool { return Valid(string(n)) }

func (n Numeral) String() string { return string(n) }

// MarshalText implements encoding.TextMarshaler (and, through it, JSON
// marshaling of struct fields).
func (n Numeral) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, &SyntaxError{Input: string(n)}
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Numeral) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalCBOR encodes the numeral as a CBOR text string.
func (n Numeral) MarshalCBOR() ([]byte, error) {
	if !n.Valid() {
		return nil, &SyntaxError{Input: string(n)}
	}
	return cbor.Marshal(string(n))
}

// UnmarshalCBOR decodes a CBOR text string and validates it.
func (n *Numeral) UnmarshalCBOR(b []byte) error {
	var s string
	if err := cbor.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (n Numeral) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !n.Valid() {
		return &SyntaxError{Input: string(n)}
	}
	return enc.EncodeString(string(n))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (n *Numeral) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
