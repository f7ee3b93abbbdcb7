package rlp

import "errors"

// Decode errors. DecodeBytes reports one of these (or io.EOF /
// io.ErrUnexpectedEOF for a short buffer) whenever the input does not
// satisfy canonical RLP; the derivation core treats any of them as "this
// payload does not parse" rather than attempting partial recovery.
var (
	// ErrExpectedString is returned when a struct field expects a byte
	// string or scalar but the wire item is a list.
	ErrExpectedString = errors.New("rlp: list where a string was expected")

	// ErrExpectedList is returned when the decode target is not a
	// pointer to a struct, or when the top-level wire item is a string
	// rather than a list.
	ErrExpectedList = errors.New("rlp: string where a list was expected")

	// ErrCanonSize is returned for a single byte in [0x00, 0x7f] encoded
	// via the short-string form instead of self-encoding.
	ErrCanonSize = errors.New("rlp: single byte below 0x80 not in canonical form")

	// ErrNonCanonicalSize is returned when a long-form (length-of-length)
	// header is used for a payload that fits the short form (<= 55 bytes).
	ErrNonCanonicalSize = errors.New("rlp: long-form size header for a short payload")

	// ErrCanonInt is returned for a leading zero byte in an encoded
	// integer or in a length-of-length field.
	ErrCanonInt = errors.New("rlp: leading zero in integer or length field")

	// ErrEOL is returned when a struct has more fields than the decoded
	// list has items, or when trailing bytes remain after the last
	// field/top-level item is consumed.
	ErrEOL = errors.New("rlp: list item count does not match struct field count")

	// ErrUint64Range is returned when a string item decoded into a
	// uint64 field is longer than 8 bytes, or one decoded into a
	// fixed-size byte array is longer than the array.
	ErrUint64Range = errors.New("rlp: string too long for uint64 field")

	// ErrValueTooLarge is returned by EncodeToBytes for a Go value this
	// codec has no wire representation for.
	ErrValueTooLarge = errors.New("rlp: unsupported value kind for encoding")
)
