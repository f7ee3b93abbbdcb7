package rollup

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/0xFacet/kona/core/types"
	"github.com/0xFacet/kona/rlp"
)

// FacetPayload is the decoded, canonical form of a Facet transaction
// envelope, prior to mint assignment. Once Mint is set by the derivation
// function it is never mutated again; it is consumed exactly once when
// converted to a deposit.
type FacetPayload struct {
	To            *types.Address // nil means contract creation
	Value         *uint256.Int
	GasLimit      uint64
	Data          []byte
	MineBoost     []byte
	L1DataGasUsed uint64
	Mint          *uint256.Int
}

// facetPayloadRLP is the positional wire layout of the six-field envelope
// list. To is carried as a raw byte string rather than *types.Address for
// the same reason as depositTxRLP: the generic decoder cannot represent
// "absent" through a pointer field.
type facetPayloadRLP struct {
	ChainID   uint64
	To        []byte
	Value     *big.Int
	GasLimit  uint64
	Data      []byte
	MineBoost []byte
}

// DecodeFacetPayload decodes a Facet payload envelope. contractInitiated
// selects the data-gas accounting rule applied to the raw bytes: true for
// payloads extracted from a log (the emitting contract already paid L1 gas
// to write the log), false for payloads extracted from calldata.
func DecodeFacetPayload(b []byte, expectedChainID uint64, contractInitiated bool) (*FacetPayload, error) {
	if len(b) == 0 {
		return nil, ErrPayloadShort
	}
	if b[0] != FacetTxType {
		return nil, fmt.Errorf("%w: got 0x%x", ErrPayloadWrongPrefix, b[0])
	}

	var dec facetPayloadRLP
	if err := rlp.DecodeBytes(b[1:], &dec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadRLP, err)
	}
	if dec.ChainID != expectedChainID {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrPayloadBadChainID, dec.ChainID, expectedChainID)
	}

	var to *types.Address
	switch len(dec.To) {
	case 0:
		to = nil
	case types.AddressLength:
		addr := types.BytesToAddress(dec.To)
		to = &addr
	default:
		return nil, fmt.Errorf("%w: invalid to length %d", ErrPayloadRLP, len(dec.To))
	}

	value := new(uint256.Int)
	if dec.Value != nil {
		if overflow := value.SetFromBig(dec.Value); overflow {
			return nil, fmt.Errorf("%w: value exceeds 256 bits", ErrPayloadRLP)
		}
	}

	return &FacetPayload{
		To:            to,
		Value:         value,
		GasLimit:      dec.GasLimit,
		Data:          dec.Data,
		MineBoost:     dec.MineBoost,
		L1DataGasUsed: DataGasUsed(b, contractInitiated),
		Mint:          new(uint256.Int),
	}, nil
}

// EncodeFacetPayload returns the canonical bytes of p under the given chain
// id: FACET_TX_TYPE || RLP([chain_id, to, value, gas_limit, data,
// mine_boost]). Encoding the same payload twice yields identical bytes.
func EncodeFacetPayload(p *FacetPayload, chainID uint64) ([]byte, error) {
	var to []byte
	if p.To != nil {
		to = p.To.Bytes()
	}
	value := new(big.Int)
	if p.Value != nil {
		value = p.Value.ToBig()
	}
	payload, err := rlp.EncodeToBytes(facetPayloadRLP{
		ChainID:   chainID,
		To:        to,
		Value:     value,
		GasLimit:  p.GasLimit,
		Data:      p.Data,
		MineBoost: p.MineBoost,
	})
	if err != nil {
		return nil, err
	}
	out := make([]byte, 1+len(payload))
	out[0] = FacetTxType
	copy(out[1:], payload)
	return out, nil
}
