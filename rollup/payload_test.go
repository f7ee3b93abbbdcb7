package rollup

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/holiman/uint256"

	"github.com/0xFacet/kona/core/types"
	"github.com/0xFacet/kona/rlp"
)

// scenarioAInput is the known-good calldata payload from the derivation
// core's test vectors: chain_id=16436858, to=0x1111...1111, value=0,
// gas_limit=1_000_000, data=0x1234, mine_boost empty.
const scenarioAInput = "46e283face7a94111111111111111111111111111111111111111180830f424082123480"

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decode hex %q: %v", s, err)
	}
	return b
}

func TestDecodeFacetPayloadKnownGood(t *testing.T) {
	b := mustDecodeHex(t, scenarioAInput)
	p, err := DecodeFacetPayload(b, 16436858, false)
	if err != nil {
		t.Fatalf("DecodeFacetPayload: %v", err)
	}
	wantTo := types.HexToAddress("0x1111111111111111111111111111111111111111")
	if p.To == nil || *p.To != wantTo {
		t.Errorf("To = %v, want %s", p.To, wantTo)
	}
	if p.GasLimit != 1_000_000 {
		t.Errorf("GasLimit = %d, want 1000000", p.GasLimit)
	}
	if !p.Value.IsZero() {
		t.Errorf("Value = %s, want 0", p.Value)
	}
	if !bytes.Equal(p.Data, []byte{0x12, 0x34}) {
		t.Errorf("Data = %x, want 1234", p.Data)
	}
	if p.L1DataGasUsed != 576 {
		t.Errorf("L1DataGasUsed = %d, want 576", p.L1DataGasUsed)
	}
}

func TestDecodeFacetPayloadShort(t *testing.T) {
	if _, err := DecodeFacetPayload(nil, 1, false); err != ErrPayloadShort {
		t.Errorf("err = %v, want ErrPayloadShort", err)
	}
}

func TestDecodeFacetPayloadWrongPrefix(t *testing.T) {
	_, err := DecodeFacetPayload([]byte{0xde, 0xad, 0xbe, 0xef}, 1, false)
	if err == nil {
		t.Fatal("expected an error for wrong prefix")
	}
}

func TestDecodeFacetPayloadBadChainID(t *testing.T) {
	b := mustDecodeHex(t, scenarioAInput)
	_, err := DecodeFacetPayload(b, 1, false)
	if err == nil {
		t.Fatal("expected a chain id mismatch error")
	}
}

func TestDecodeFacetPayloadInvalidToLength(t *testing.T) {
	// A 19-byte `to` field: valid RLP, invalid payload shape.
	payload, err := rlp.EncodeToBytes(facetPayloadRLP{
		ChainID:  16436858,
		To:       make([]byte, 19),
		Value:    big.NewInt(0),
		GasLimit: 0,
	})
	if err != nil {
		t.Fatalf("encode test fixture: %v", err)
	}
	raw := append([]byte{FacetTxType}, payload...)
	if _, err := DecodeFacetPayload(raw, 16436858, false); err == nil {
		t.Fatal("expected a structural error for a 19-byte to field")
	}
}

func TestFacetPayloadRoundTrip(t *testing.T) {
	to := types.HexToAddress("0x00000000000000000000000000000000000abc")
	p := &FacetPayload{
		To:            &to,
		Value:         uint256.NewInt(777),
		GasLimit:      21000,
		Data:          []byte{0xca, 0xfe},
		MineBoost:     []byte{0x01, 0x02, 0x03},
		L1DataGasUsed: 0,
		Mint:          new(uint256.Int),
	}
	enc, err := EncodeFacetPayload(p, 16436858)
	if err != nil {
		t.Fatalf("EncodeFacetPayload: %v", err)
	}
	got, err := DecodeFacetPayload(enc, 16436858, false)
	if err != nil {
		t.Fatalf("DecodeFacetPayload: %v", err)
	}
	if *got.To != *p.To || !got.Value.Eq(p.Value) || got.GasLimit != p.GasLimit ||
		!bytes.Equal(got.Data, p.Data) || !bytes.Equal(got.MineBoost, p.MineBoost) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, p)
	}
}

func TestFacetPayloadRoundTripContractCreation(t *testing.T) {
	p := &FacetPayload{
		Value:    new(uint256.Int),
		GasLimit: 100,
		Data:     []byte{0x01},
		Mint:     new(uint256.Int),
	}
	enc, err := EncodeFacetPayload(p, 7)
	if err != nil {
		t.Fatalf("EncodeFacetPayload: %v", err)
	}
	got, err := DecodeFacetPayload(enc, 7, false)
	if err != nil {
		t.Fatalf("DecodeFacetPayload: %v", err)
	}
	if got.To != nil {
		t.Errorf("To = %v, want nil (contract creation)", got.To)
	}
}
