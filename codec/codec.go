// Package codec adapts romanum to the pluggable byte-codec shape used by
// generic caches and stores: values in, validated wire bytes out.
package codec

// Codec encodes/decodes values V to []byte for storage or transport.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
