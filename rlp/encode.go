package rlp

import (
	"math/big"
	"math/bits"
	"reflect"
)

// RLP frames every item with the same header scheme at one of two offset
// bases: strings at 0x80, lists at 0xc0. Payloads of 55 bytes or fewer get
// a single header byte carrying the length; longer payloads get a
// length-of-length header starting 55 slots above the base.
const (
	strBase  = 0x80
	listBase = 0xc0
)

var bigIntType = reflect.TypeOf(big.Int{})

// EncodeToBytes returns the RLP encoding of val. val must be built from the
// handful of shapes the derivation core's wire structs use: bool, uint64,
// *big.Int, a byte slice or fixed-size byte array (a wire string), a struct
// of exported fields of those kinds (a wire list), or a slice of such
// structs/arrays/interfaces (also a wire list, used for AccessList,
// BlobHashes, and the ad hoc []interface{} lists SigningHash builds for
// legacy L1 envelopes). A nil pointer or interface encodes as the empty
// string, matching an absent optional field (e.g. a contract-creation
// deposit's `to`).
func EncodeToBytes(val interface{}) ([]byte, error) {
	return appendValue(nil, reflect.ValueOf(val))
}

// appendValue appends the encoding of v to dst and returns the extended
// buffer.
func appendValue(dst []byte, v reflect.Value) ([]byte, error) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return append(dst, strBase), nil
		}
		v = v.Elem()
	}

	if v.Type() == bigIntType {
		i := v.Addr().Interface().(*big.Int)
		if i.Sign() == 0 {
			return append(dst, strBase), nil
		}
		return appendString(dst, i.Bytes()), nil
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return append(dst, 0x01), nil
		}
		return append(dst, strBase), nil

	case reflect.Uint64:
		return appendUint(dst, v.Uint()), nil

	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return appendString(dst, byteContent(v)), nil
		}
		return appendItems(dst, v.Len(), v.Index)

	case reflect.Struct:
		t := v.Type()
		fields := make([]int, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				fields = append(fields, i)
			}
		}
		return appendItems(dst, len(fields), func(i int) reflect.Value {
			return v.Field(fields[i])
		})

	case reflect.Invalid:
		// An untyped nil passed directly to EncodeToBytes.
		return append(dst, strBase), nil

	default:
		return nil, ErrValueTooLarge
	}
}

// appendItems encodes the n items produced by item(i) in order and frames
// them as a single list.
func appendItems(dst []byte, n int, item func(int) reflect.Value) ([]byte, error) {
	var body []byte
	var err error
	for i := 0; i < n; i++ {
		if body, err = appendValue(body, item(i)); err != nil {
			return nil, err
		}
	}
	return appendFramed(dst, listBase, body), nil
}

// appendString frames s as a string item. A lone byte below 0x80 is its own
// encoding and takes no header.
func appendString(dst, s []byte) []byte {
	if len(s) == 1 && s[0] < strBase {
		return append(dst, s[0])
	}
	return appendFramed(dst, strBase, s)
}

// appendUint frames u as a string item holding its minimal big-endian form.
func appendUint(dst []byte, u uint64) []byte {
	switch {
	case u == 0:
		return append(dst, strBase)
	case u < strBase:
		return append(dst, byte(u))
	default:
		return appendFramed(dst, strBase, beBytes(u))
	}
}

// appendFramed writes a header for payload at the given offset base
// (strBase or listBase), then the payload itself. Short payloads fold the
// length into the header byte; payloads over 55 bytes carry it in the
// bytes that follow, with the header recording how many.
func appendFramed(dst []byte, base byte, payload []byte) []byte {
	if n := len(payload); n <= 55 {
		dst = append(dst, base+byte(n))
	} else {
		size := beBytes(uint64(n))
		dst = append(dst, base+55+byte(len(size)))
		dst = append(dst, size...)
	}
	return append(dst, payload...)
}

// byteContent extracts the raw bytes of a []byte or [N]byte value.
func byteContent(v reflect.Value) []byte {
	if v.Kind() == reflect.Slice {
		return v.Bytes()
	}
	b := make([]byte, v.Len())
	reflect.Copy(reflect.ValueOf(b), v)
	return b
}

// beBytes returns u in big-endian form with no leading zero bytes. u must
// be non-zero.
func beBytes(u uint64) []byte {
	b := make([]byte, (bits.Len64(u)+7)/8)
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(u)
		u >>= 8
	}
	return b
}
