package rollup

import "errors"

// Payload decode errors. These are never fatal to derivation: a malformed
// submission to the inbox (calldata or log) is silently skipped, since the
// inbox is open to arbitrary L1 callers.
var (
	// ErrPayloadShort is returned when the payload bytes are empty.
	ErrPayloadShort = errors.New("rollup: facet payload too short")

	// ErrPayloadWrongPrefix is returned when the payload's first byte is
	// not FacetTxType.
	ErrPayloadWrongPrefix = errors.New("rollup: facet payload has wrong type prefix")

	// ErrPayloadBadChainID is returned when the payload's chain_id field
	// disagrees with the expected L2 chain id.
	ErrPayloadBadChainID = errors.New("rollup: facet payload chain id mismatch")

	// ErrPayloadRLP wraps a structural RLP decode failure, including a `to`
	// field whose length is neither 0 nor 20.
	ErrPayloadRLP = errors.New("rollup: facet payload rlp decode error")
)

// Structural caller errors. Unlike payload decode errors, these indicate the
// caller violated derive's precondition and are always fatal.
var (
	// ErrTxReceiptLengthMismatch is returned when len(txs) != len(receipts).
	ErrTxReceiptLengthMismatch = errors.New("rollup: txs and receipts length mismatch")
)

// L1InfoFacetEncoder errors.
var (
	// ErrL1InfoTooShort is returned when calldata is shorter than the
	// 32-byte Facet trailer.
	ErrL1InfoTooShort = errors.New("rollup: l1 block info calldata shorter than facet trailer")
)
