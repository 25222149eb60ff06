package romanum

import (
	"math"
	"math/big"
)

// EncodeValue is the dynamically typed front door to Encode. It accepts
// every signed and unsigned machine integer kind plus *big.Int; anything
// else - floats included, even numerically integral ones - returns a
// *KindError. Out-of-range integers return a *RangeError.
func EncodeValue(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return Encode(n)
	case int8:
		return Encode(int(n))
	case int16:
		return Encode(int(n))
	case int32:
		return Encode(int(n))
	case int64:
		if n < MinNumeral || n > MaxNumeral {
			return "", &RangeError{N: n}
		}
		return Encode(int(n))
	case uint:
		return encodeUint(uint64(n))
	case uint8:
		return Encode(int(n))
	case uint16:
		return Encode(int(n))
	case uint32:
		return encodeUint(uint64(n))
	case uint64:
		return encodeUint(n)
	case uintptr:
		return encodeUint(uint64(n))
	case *big.Int:
		if n == nil {
			return "", &KindError{Value: v}
		}
		if !n.IsInt64() {
			lim := int64(math.MaxInt64)
			if n.Sign() < 0 {
				lim = math.MinInt64
			}
			return "", &RangeError{N: lim}
		}
		return EncodeValue(n.Int64())
	default:
		return "", &KindError{Value: v}
	}
}

func encodeUint(n uint64) (string, error) {
	if n > MaxNumeral {
		if n > math.MaxInt64 {
			return "", &RangeError{N: math.MaxInt64}
		}
		return "", &RangeError{N: int64(n)}
	}
	return Encode(int(n))
}

// DecodeValue is the dynamically typed front door to Decode. Only textual
// string values (string or Numeral) are accepted; anything else returns a
// *KindError.
func DecodeValue(v any) (int, error) {
	switch s := v.(type) {
	case string:
		return Decode(s)
	case Numeral:
		return Decode(string(s))
	default:
		return 0, &KindError{Value: v}
	}
}
