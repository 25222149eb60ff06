package romanum

import (
	"errors"
	"fmt"
)

// ErrNumeral is the base kind for conversion failures. Both *RangeError and
// *SyntaxError unwrap to it, so errors.Is(err, ErrNumeral) matches either
// without caring which direction failed.
var ErrNumeral = errors.New("roman numeral conversion failed")

// RangeError reports an integer outside [MinNumeral, MaxNumeral].
type RangeError struct {
	// N is the offending value. Inputs beyond int64 (big.Int) are clamped
	// to the nearest int64 bound; they are far out of range either way.
	N int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("romanum: %d out of range (need 0 < n < 5000)", e.N)
}

func (e *RangeError) Unwrap() error { return ErrNumeral }

// SyntaxError reports a string that does not match the numeral grammar.
type SyntaxError struct {
	Input string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("romanum: invalid roman numeral %q", e.Input)
}

func (e *SyntaxError) Unwrap() error { return ErrNumeral }

// KindError reports a dynamic value of the wrong kind passed to EncodeValue
// or DecodeValue. Wrong-kind input is a caller bug, not a conversion
// failure, so it does not unwrap to ErrNumeral.
type KindError struct {
	Value any
}

func (e *KindError) Error() string {
	return fmt.Sprintf("romanum: cannot convert value of type %T", e.Value)
}
