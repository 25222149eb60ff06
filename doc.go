// Package romanum converts between integers and classical Roman numerals.
// Both directions walk one fixed 13-row digit table (largest value first);
// decoding is gated by an anchored grammar so only canonical uppercase
// forms are accepted. Valid inputs round-trip exactly: Decode(Encode(n)) == n
// for every n in [1, 4999].
//
// Components:
//   - Encode/Decode: the pure conversion pair over [1, 4999].
//   - Numeral: a validated string type with Text/JSON, CBOR and Msgpack
//     marshaling. Invalid numerals never cross a wire boundary in either
//     direction.
//   - EncodeValue/DecodeValue: dynamically typed front doors that accept
//     any integer kind (including *big.Int) and reject everything else
//     with *KindError.
//
// Error kinds:
//
//	errors.Is(err, ErrNumeral) // any conversion failure
//	errors.As(err, &rangeErr)  // *RangeError: integer outside 1..4999
//	errors.As(err, &synErr)    // *SyntaxError: string fails the grammar
//
// Both functions allocate only local state and are safe to call
// concurrently without coordination.
package romanum
