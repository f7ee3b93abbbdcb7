package rollup

import (
	"testing"

	"github.com/0xFacet/kona/core/types"
)

func TestAliasL1ToL2Known(t *testing.T) {
	emitter := types.HexToAddress("0xdb8dc4ac38c094746529a14be18d99c18ecaedac")
	want := types.HexToAddress("0xec9ec4ac38c094746529a14be18d99c18ecafebd")
	if got := AliasL1ToL2(emitter); got != want {
		t.Errorf("AliasL1ToL2(%s) = %s, want %s", emitter, got, want)
	}
}

func TestAliasL1ToL2Bijection(t *testing.T) {
	inputs := []types.Address{
		{},
		types.HexToAddress("0x0000000000000000000000000000000000000001"),
		types.HexToAddress("0xffffffffffffffffffffffffffffffffffffffff"),
		types.HexToAddress("0x1111111111111111111111111111111111111111"),
	}
	seen := make(map[types.Address]types.Address, len(inputs))
	for _, in := range inputs {
		out := AliasL1ToL2(in)
		if prior, ok := seen[out]; ok && prior != in {
			t.Fatalf("AliasL1ToL2 collided: %s and %s both map to %s", prior, in, out)
		}
		seen[out] = in
	}
}

func TestAliasL1ToL2Unalias(t *testing.T) {
	in := types.HexToAddress("0x00000000000000000000000000000000000042")
	out := AliasL1ToL2(in)
	back := unalias(out)
	if back != in {
		t.Errorf("unalias(AliasL1ToL2(%s)) = %s, want %s", in, back, in)
	}
}
