package types

import "math/big"

// Wire type bytes for the L1 transaction envelopes the derivation core
// reads. DepositTxType is the core's own output envelope, defined in
// deposit.go.
const (
	LegacyTxType     = 0x00
	AccessListTxType = 0x01
	DynamicFeeTxType = 0x02
	BlobTxType       = 0x03
)

// TxData is implemented by every concrete L1 envelope. It exists only to
// give Transaction a typed inner value and a dispatch tag; the derivation
// core never calls its method directly, it type-switches on the concrete
// envelope (see transaction_rlp.go and signer.go).
type TxData interface {
	txType() byte
}

// LegacyTx is a pre-EIP-2718 transaction, signed per EIP-155 when ChainID
// is non-zero (chain ID is folded into V rather than carried as a field).
type LegacyTx struct {
	Nonce    uint64
	GasPrice *big.Int
	Gas      uint64
	To       *Address // nil means contract creation
	Value    *big.Int
	Data     []byte
	V, R, S  *big.Int
}

func (tx *LegacyTx) txType() byte { return LegacyTxType }

// AccessListTx is an EIP-2930 transaction.
type AccessListTx struct {
	ChainID    *big.Int
	Nonce      uint64
	GasPrice   *big.Int
	Gas        uint64
	To         *Address
	Value      *big.Int
	Data       []byte
	AccessList AccessList
	V, R, S    *big.Int
}

func (tx *AccessListTx) txType() byte { return AccessListTxType }

// DynamicFeeTx is an EIP-1559 transaction.
type DynamicFeeTx struct {
	ChainID    *big.Int
	Nonce      uint64
	GasTipCap  *big.Int
	GasFeeCap  *big.Int
	Gas        uint64
	To         *Address
	Value      *big.Int
	Data       []byte
	AccessList AccessList
	V, R, S    *big.Int
}

func (tx *DynamicFeeTx) txType() byte { return DynamicFeeTxType }

// BlobTx is an EIP-4844 transaction. Blob transactions can never create a
// contract, so To is a plain Address rather than a pointer.
type BlobTx struct {
	ChainID    *big.Int
	Nonce      uint64
	GasTipCap  *big.Int
	GasFeeCap  *big.Int
	Gas        uint64
	To         Address
	Value      *big.Int
	Data       []byte
	AccessList AccessList
	BlobFeeCap *big.Int
	BlobHashes []Hash
	V, R, S    *big.Int
}

func (tx *BlobTx) txType() byte { return BlobTxType }

// Transaction wraps one of the four supported L1 envelope variants and
// caches its hash once computed. It satisfies the uniform
// (to, input, signer-recovery) view the derivation core relies on: an
// envelope of an unrecognized kind (inner is nil, or a type this package
// doesn't know) reports a nil To and empty Input rather than panicking, so
// unknown variants contribute nothing to derivation.
type Transaction struct {
	inner TxData
	hash  *Hash
}

// NewTx wraps inner in a Transaction.
func NewTx(inner TxData) *Transaction {
	return &Transaction{inner: inner}
}

// Type returns the envelope's wire type byte, or 0xff if inner is nil.
func (tx *Transaction) Type() byte {
	if tx == nil || tx.inner == nil {
		return 0xff
	}
	return tx.inner.txType()
}

// To returns the call target, or nil for a contract creation (or an
// unrecognized envelope kind).
func (tx *Transaction) To() *Address {
	if tx == nil {
		return nil
	}
	switch t := tx.inner.(type) {
	case *LegacyTx:
		return t.To
	case *AccessListTx:
		return t.To
	case *DynamicFeeTx:
		return t.To
	case *BlobTx:
		addr := t.To
		return &addr
	default:
		return nil
	}
}

// Input returns the envelope's calldata, or nil for an unrecognized
// envelope kind.
func (tx *Transaction) Input() []byte {
	if tx == nil {
		return nil
	}
	switch t := tx.inner.(type) {
	case *LegacyTx:
		return t.Data
	case *AccessListTx:
		return t.Data
	case *DynamicFeeTx:
		return t.Data
	case *BlobTx:
		return t.Data
	default:
		return nil
	}
}

// Inner returns the concrete envelope, for callers (the signer) that need
// the full field set.
func (tx *Transaction) Inner() TxData { return tx.inner }
