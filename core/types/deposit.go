package types

import (
	"fmt"
	"math/big"

	"github.com/0xFacet/kona/rlp"
)

// DepositTxType is the OP-stack deposit transaction's EIP-2718 wire type.
// Deposit transactions are never signed on L2; they are derived from L1
// activity and included at the head of the block by the sequencer.
const DepositTxType byte = 0x7e

// DepositTx is a type-0x7e deposit transaction.
type DepositTx struct {
	SourceHash          Hash
	From                Address
	To                  *Address // nil means contract creation
	Mint                *big.Int // FCT credited to From before execution; may be nil
	Value               *big.Int
	Gas                 uint64
	IsSystemTransaction bool
	Data                []byte
}

// depositTxRLP is the positional RLP layout of a deposit transaction's
// body (the type byte is carried outside the RLP list). To is carried as a
// raw byte string (0 or 20 bytes) rather than *Address: the generic
// decoder has no notion of "absent" and rejects every pointer field other
// than *big.Int, so the empty-string case is mapped to a nil To here.
type depositTxRLP struct {
	SourceHash          Hash
	From                Address
	To                  []byte
	Mint                *big.Int
	Value               *big.Int
	Gas                 uint64
	IsSystemTransaction bool
	Data                []byte
}

// EncodeDepositTx returns the canonical EIP-2718 bytes of tx:
// 0x7e || RLP([source_hash, from, to, mint, value, gas, is_system_tx, data]).
// No field is reordered or normalized; encoding the same DepositTx twice
// yields identical bytes.
func EncodeDepositTx(tx *DepositTx) ([]byte, error) {
	var to []byte
	if tx.To != nil {
		to = tx.To.Bytes()
	}
	payload, err := rlp.EncodeToBytes(depositTxRLP{
		SourceHash:          tx.SourceHash,
		From:                tx.From,
		To:                  to,
		Mint:                tx.Mint,
		Value:               tx.Value,
		Gas:                 tx.Gas,
		IsSystemTransaction: tx.IsSystemTransaction,
		Data:                tx.Data,
	})
	if err != nil {
		return nil, err
	}
	out := make([]byte, 1+len(payload))
	out[0] = DepositTxType
	copy(out[1:], payload)
	return out, nil
}

// DecodeDepositTx decodes the RLP body of a deposit transaction (the
// leading 0x7e type byte must already be stripped by the caller). This is
// not exercised by the derivation core itself, which only ever produces
// deposit bytes, but is provided so the encoder's output can be verified
// to round-trip.
func DecodeDepositTx(data []byte) (*DepositTx, error) {
	var dec depositTxRLP
	if err := rlp.DecodeBytes(data, &dec); err != nil {
		return nil, fmt.Errorf("decode deposit tx: %w", err)
	}
	var to *Address
	switch len(dec.To) {
	case 0:
		to = nil
	case AddressLength:
		addr := BytesToAddress(dec.To)
		to = &addr
	default:
		return nil, fmt.Errorf("decode deposit tx: invalid to length %d", len(dec.To))
	}
	return &DepositTx{
		SourceHash:          dec.SourceHash,
		From:                dec.From,
		To:                  to,
		Mint:                dec.Mint,
		Value:               dec.Value,
		Gas:                 dec.Gas,
		IsSystemTransaction: dec.IsSystemTransaction,
		Data:                dec.Data,
	}, nil
}
