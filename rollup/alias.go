package rollup

import (
	"github.com/holiman/uint256"

	"github.com/0xFacet/kona/core/types"
)

// AliasOffset is the standard OP-stack L1->L2 address aliasing constant.
var AliasOffset = types.HexToAddress("0x1111000000000000000000000000000000001111")

var twoTo160 = new(uint256.Int).Lsh(uint256.NewInt(1), 160)

// AliasL1ToL2 applies the standard address-aliasing offset used to derive
// an L2 identity for an L1 log emitter: (addr + AliasOffset) mod 2^160.
// Pure, total, and a bijection on 20-byte addresses (addition modulo a
// power of two is its own inverse under subtraction of the same offset).
func AliasL1ToL2(addr types.Address) types.Address {
	a := new(uint256.Int).SetBytes(addr.Bytes())
	offset := new(uint256.Int).SetBytes(AliasOffset.Bytes())
	sum := new(uint256.Int).Add(a, offset)
	sum.Mod(sum, twoTo160)
	var out types.Address
	b := sum.Bytes32()
	copy(out[:], b[32-types.AddressLength:])
	return out
}

// unalias is the inverse of AliasL1ToL2: (addr - AliasOffset) mod 2^160.
// Not used by the derivation core itself, which only ever aliases forward,
// but kept alongside it since the two are proved together.
func unalias(addr types.Address) types.Address {
	a := new(uint256.Int).SetBytes(addr.Bytes())
	offset := new(uint256.Int).SetBytes(AliasOffset.Bytes())
	diff := new(uint256.Int).Sub(a, offset)
	diff.Mod(diff, twoTo160)
	var out types.Address
	b := diff.Bytes32()
	copy(out[:], b[32-types.AddressLength:])
	return out
}
