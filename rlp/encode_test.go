package rlp

import (
	"bytes"
	"math/big"
	"testing"
)

func TestEncodeUint64(t *testing.T) {
	tests := []struct {
		name string
		val  uint64
		want []byte
	}{
		{"zero", 0, []byte{0x80}},
		{"fifteen", 15, []byte{0x0f}},
		{"127", 127, []byte{0x7f}},
		{"128", 128, []byte{0x81, 0x80}},
		{"256", 256, []byte{0x82, 0x01, 0x00}},
		{"1024", 1024, []byte{0x82, 0x04, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToBytes(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("%s: got %x, want %x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeBool(t *testing.T) {
	tests := []struct {
		name string
		val  bool
		want []byte
	}{
		{"false", false, []byte{0x80}},
		{"true", true, []byte{0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToBytes(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("%s: got %x, want %x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeBytes(t *testing.T) {
	tests := []struct {
		name string
		val  []byte
		want []byte
	}{
		{"empty", []byte{}, []byte{0x80}},
		{"single zero", []byte{0x00}, []byte{0x00}},
		{"single 0x7f", []byte{0x7f}, []byte{0x7f}},
		{"single 0x80", []byte{0x80}, []byte{0x81, 0x80}},
		{"three bytes", []byte{0x01, 0x02, 0x03}, []byte{0x83, 0x01, 0x02, 0x03}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToBytes(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("%s: got %x, want %x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeFixedArray(t *testing.T) {
	// A 20-byte array (the shape of core/types.Address) encodes as a
	// string of exactly its length, never stripped or self-encoded even
	// when the low byte is small.
	var addr [20]byte
	addr[19] = 0x01
	got, err := EncodeToBytes(addr)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 21 || got[0] != 0x80+20 {
		t.Fatalf("got %x, want a 20-byte string header", got)
	}
}

func TestEncodeBigInt(t *testing.T) {
	tests := []struct {
		name string
		val  *big.Int
		want []byte
	}{
		{"big.Int(0)", big.NewInt(0), []byte{0x80}},
		{"big.Int(1)", big.NewInt(1), []byte{0x01}},
		{"big.Int(127)", big.NewInt(127), []byte{0x7f}},
		{"big.Int(128)", big.NewInt(128), []byte{0x81, 0x80}},
		{"big.Int(256)", big.NewInt(256), []byte{0x82, 0x01, 0x00}},
		{"nil value", nil, []byte{0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToBytes(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("%s: got %x, want %x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeStruct(t *testing.T) {
	type depositLike struct {
		Gas   uint64
		Final bool
		Data  []byte
	}
	s := depositLike{Gas: 5, Final: true, Data: []byte{0x01}}
	got, err := EncodeToBytes(s)
	if err != nil {
		t.Fatal(err)
	}
	// payload = uint(5)=05, bool(true)=01, bytes{0x01}=01 -> 3 bytes
	want := []byte{0xc3, 0x05, 0x01, 0x01}
	if !bytes.Equal(got, want) {
		t.Fatalf("struct: got %x, want %x", got, want)
	}
}

func TestEncodeSliceOfStruct(t *testing.T) {
	// Mirrors AccessList: a slice of struct, each with an array field and
	// a slice-of-array field.
	type tuple struct {
		Address [20]byte
		Storage [][32]byte
	}
	list := []tuple{
		{Address: [20]byte{0x01}, Storage: [][32]byte{{0x02}}},
	}
	got, err := EncodeToBytes(list)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] < 0xc0 {
		t.Fatalf("got %x, want a list", got)
	}
}

func TestEncodeHeterogeneousList(t *testing.T) {
	// Mirrors the ad hoc []interface{} list SigningHash builds for a
	// legacy L1 envelope's signing preimage.
	got, err := EncodeToBytes([]interface{}{uint64(0), big.NewInt(1), []byte{0xaa}, true})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] < 0xc0 {
		t.Fatalf("got %x, want a list", got)
	}
}

func TestEncodeEmptyList(t *testing.T) {
	got, err := EncodeToBytes([]interface{}{})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xc0}
	if !bytes.Equal(got, want) {
		t.Fatalf("empty list: got %x, want %x", got, want)
	}
}

func TestEncodeNilPointerFields(t *testing.T) {
	// A contract-creation deposit's `To` and an absent `Mint` both encode
	// as the empty string via a nil pointer, not a panic.
	type maybeTo struct {
		To   *[20]byte
		Mint *big.Int
	}
	got, err := EncodeToBytes(maybeTo{})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xc2, 0x80, 0x80}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestEncodeSingleByteSelfEncodes(t *testing.T) {
	got, err := EncodeToBytes([]byte{0x42})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x42}
	if !bytes.Equal(got, want) {
		t.Fatalf("single byte: got %x, want %x", got, want)
	}
}

func TestEncodeUnsupportedKind(t *testing.T) {
	_, err := EncodeToBytes("a string field has no wire representation in this codec")
	if err == nil {
		t.Fatal("expected an error encoding an unsupported kind")
	}
}
