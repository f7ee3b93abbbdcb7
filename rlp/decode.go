package rlp

import (
	"bytes"
	"io"
	"math/big"
	"reflect"
)

// DecodeBytes decodes an RLP list into the struct pointed to by val. val
// must be a pointer to a struct whose exported fields are, in order, one
// per positional item of the wire list: bool, uint64, *big.Int, a byte
// slice, or a fixed-size byte array (Hash, Address). This is the full
// field-kind surface facetPayloadRLP and depositTxRLP need; there is no
// nested-struct or list-of-struct decode target anywhere in this codec's
// callers, so decodeField does not attempt to support one.
func DecodeBytes(b []byte, val interface{}) error {
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrExpectedList
	}

	isList, contentStart, contentEnd, itemEnd, err := parseHeader(b, 0, len(b))
	if err != nil {
		return err
	}
	if !isList {
		return ErrExpectedList
	}
	if itemEnd != len(b) {
		return ErrEOL
	}

	sv := rv.Elem()
	t := sv.Type()
	pos := contentStart
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		if pos >= contentEnd {
			return ErrEOL
		}
		fieldList, fStart, fEnd, fItemEnd, ferr := parseHeader(b, pos, contentEnd)
		if ferr != nil {
			return ferr
		}
		if fieldList {
			return ErrExpectedString
		}
		if err := decodeField(sv.Field(i), b[fStart:fEnd]); err != nil {
			return err
		}
		pos = fItemEnd
	}
	if pos != contentEnd {
		return ErrEOL
	}
	return nil
}

// parseHeader reads a single RLP item header starting at pos, bounded by
// lim (the end of the enclosing list, or len(data) at the top level). It
// returns whether the item is a list, the start/end of its content, and
// the position immediately following the whole item (header + content).
func parseHeader(data []byte, pos, lim int) (isList bool, contentStart, contentEnd, itemEnd int, err error) {
	if pos >= lim {
		return false, 0, 0, 0, io.EOF
	}
	prefix := data[pos]

	switch {
	case prefix <= 0x7f:
		return false, pos, pos + 1, pos + 1, nil

	case prefix <= 0xb7:
		size := int(prefix - 0x80)
		start := pos + 1
		end := start + size
		if end > lim {
			return false, 0, 0, 0, io.ErrUnexpectedEOF
		}
		if size == 1 && data[start] <= 0x7f {
			return false, 0, 0, 0, ErrCanonSize
		}
		return false, start, end, end, nil

	case prefix <= 0xbf:
		lenOfLen := int(prefix - 0xb7)
		if pos+1+lenOfLen > lim {
			return false, 0, 0, 0, io.ErrUnexpectedEOF
		}
		lenBytes := data[pos+1 : pos+1+lenOfLen]
		if lenBytes[0] == 0 {
			return false, 0, 0, 0, ErrCanonInt
		}
		size := int(readBigEndian(lenBytes))
		if size <= 55 {
			return false, 0, 0, 0, ErrNonCanonicalSize
		}
		start := pos + 1 + lenOfLen
		end := start + size
		if end > lim {
			return false, 0, 0, 0, io.ErrUnexpectedEOF
		}
		return false, start, end, end, nil

	case prefix <= 0xf7:
		size := int(prefix - 0xc0)
		start := pos + 1
		end := start + size
		if end > lim {
			return false, 0, 0, 0, io.ErrUnexpectedEOF
		}
		return true, start, end, end, nil

	default:
		lenOfLen := int(prefix - 0xf7)
		if pos+1+lenOfLen > lim {
			return false, 0, 0, 0, io.ErrUnexpectedEOF
		}
		lenBytes := data[pos+1 : pos+1+lenOfLen]
		if lenBytes[0] == 0 {
			return false, 0, 0, 0, ErrCanonInt
		}
		size := int(readBigEndian(lenBytes))
		if size <= 55 {
			return false, 0, 0, 0, ErrNonCanonicalSize
		}
		start := pos + 1 + lenOfLen
		end := start + size
		if end > lim {
			return false, 0, 0, 0, io.ErrUnexpectedEOF
		}
		return true, start, end, end, nil
	}
}

// decodeField assigns the decoded content of one wire string item to a
// single struct field.
func decodeField(v reflect.Value, content []byte) error {
	if v.Type() == reflect.TypeOf(big.Int{}) {
		return decodeBigIntInto(v, content)
	}
	if v.Kind() == reflect.Ptr && v.Type() == reflect.TypeOf((*big.Int)(nil)) {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return decodeBigIntInto(v.Elem(), content)
	}

	switch v.Kind() {
	case reflect.Bool:
		switch len(content) {
		case 0:
			v.SetBool(false)
		case 1:
			if content[0] == 0x01 {
				v.SetBool(true)
			} else if content[0] == 0x00 {
				v.SetBool(false)
			} else {
				return ErrCanonInt
			}
		default:
			return ErrCanonInt
		}
		return nil

	case reflect.Uint64:
		u, err := decodeUint64(content)
		if err != nil {
			return err
		}
		v.SetUint(u)
		return nil

	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.Uint8 {
			return ErrExpectedString
		}
		v.SetBytes(bytes.Clone(content))
		return nil

	case reflect.Array:
		if v.Type().Elem().Kind() != reflect.Uint8 {
			return ErrExpectedString
		}
		if len(content) > v.Len() {
			return ErrUint64Range
		}
		// Left-pad: a wire value shorter than the array (e.g. an all-zero
		// address encoded as the empty string) fills the low-order bytes.
		off := v.Len() - len(content)
		for i := 0; i < v.Len(); i++ {
			if i < off {
				v.Index(i).SetUint(0)
			} else {
				v.Index(i).SetUint(uint64(content[i-off]))
			}
		}
		return nil

	default:
		return ErrExpectedString
	}
}

func decodeBigIntInto(v reflect.Value, content []byte) error {
	if len(content) > 0 && content[0] == 0 {
		return ErrCanonInt
	}
	i := new(big.Int).SetBytes(content)
	v.Set(reflect.ValueOf(*i))
	return nil
}

func decodeUint64(content []byte) (uint64, error) {
	if len(content) == 0 {
		return 0, nil
	}
	if len(content) > 8 {
		return 0, ErrUint64Range
	}
	if content[0] == 0 {
		return 0, ErrCanonInt
	}
	return readBigEndian(content), nil
}

func readBigEndian(b []byte) uint64 {
	var val uint64
	for _, x := range b {
		val = (val << 8) | uint64(x)
	}
	return val
}
