package rlp

import (
	"math/big"
	"testing"
)

// fuzzDecodeTarget mirrors the field-kind shape DecodeBytes actually
// decodes into in this repo (depositTxRLP / facetPayloadRLP): a fixed
// array, a byte string, *big.Int, uint64, and bool.
type fuzzDecodeTarget struct {
	SourceHash [32]byte
	To         []byte
	Mint       *big.Int
	Gas        uint64
	Final      bool
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{0xc0}) // empty list
	f.Add([]byte{0x80}) // bare empty string, not a list
	f.Add([]byte{0x01}) // bare single byte, not a list

	seed := fuzzDecodeTarget{
		SourceHash: [32]byte{0x01},
		To:         []byte{0xaa, 0xbb},
		Mint:       big.NewInt(12345),
		Gas:        21000,
		Final:      true,
	}
	enc, err := EncodeToBytes(seed)
	if err != nil {
		f.Fatalf("seed encode: %v", err)
	}
	f.Add(enc)
	f.Add(enc[:len(enc)-1]) // truncated
	f.Add(append(append([]byte{}, enc...), 0x00)) // trailing byte

	f.Fuzz(func(t *testing.T, data []byte) {
		var target fuzzDecodeTarget
		_ = DecodeBytes(data, &target) // must never panic, error or not
	})
}
