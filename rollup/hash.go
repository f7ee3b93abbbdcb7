package rollup

import (
	"golang.org/x/crypto/sha3"

	"github.com/0xFacet/kona/core/types"
)

func keccak256(data []byte) types.Hash {
	d := sha3.NewLegacyKeccak256()
	d.Write(data)
	var h types.Hash
	copy(h[:], d.Sum(nil))
	return h
}
