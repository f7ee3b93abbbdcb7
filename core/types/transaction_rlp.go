package types

import (
	"math/big"

	"github.com/0xFacet/kona/rlp"
	"golang.org/x/crypto/sha3"
)

// RLP layouts for each envelope's full (signed) field set, in the order
// they appear on the wire. Struct field order is significant: the rlp
// package encodes exported fields positionally.

type legacyTxRLP struct {
	Nonce    uint64
	GasPrice *big.Int
	Gas      uint64
	To       *Address
	Value    *big.Int
	Data     []byte
	V, R, S  *big.Int
}

type accessListTxRLP struct {
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

type dynamicFeeTxRLP struct {
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

type blobTxRLP struct {
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

// Unsigned counterparts used to compute the pre-image hash the sender's key
// signs. Legacy's unsigned form appends (chainID, 0, 0) when ChainID != 0,
// per EIP-155; that variant is handled directly in SigningHash below since
// the trailing triple is conditional rather than a fixed struct shape.

type accessListTxUnsignedRLP struct {
	ChainID    *big.Int
	Nonce      uint64
	GasPrice   *big.Int
	Gas        uint64
	To         *Address
	Value      *big.Int
	Data       []byte
	AccessList AccessList
}

type dynamicFeeTxUnsignedRLP struct {
	ChainID    *big.Int
	Nonce      uint64
	GasTipCap  *big.Int
	GasFeeCap  *big.Int
	Gas        uint64
	To         *Address
	Value      *big.Int
	Data       []byte
	AccessList AccessList
}

type blobTxUnsignedRLP struct {
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
}

// encodeSignedEnvelope returns the canonical EIP-2718 bytes of tx, type byte
// prepended for every variant except Legacy.
func encodeSignedEnvelope(tx *Transaction) ([]byte, error) {
	switch t := tx.inner.(type) {
	case *LegacyTx:
		return rlp.EncodeToBytes(legacyTxRLP{t.Nonce, t.GasPrice, t.Gas, t.To, t.Value, t.Data, t.V, t.R, t.S})
	case *AccessListTx:
		payload, err := rlp.EncodeToBytes(accessListTxRLP{t.ChainID, t.Nonce, t.GasPrice, t.Gas, t.To, t.Value, t.Data, t.AccessList, t.V, t.R, t.S})
		return prependType(AccessListTxType, payload, err)
	case *DynamicFeeTx:
		payload, err := rlp.EncodeToBytes(dynamicFeeTxRLP{t.ChainID, t.Nonce, t.GasTipCap, t.GasFeeCap, t.Gas, t.To, t.Value, t.Data, t.AccessList, t.V, t.R, t.S})
		return prependType(DynamicFeeTxType, payload, err)
	case *BlobTx:
		payload, err := rlp.EncodeToBytes(blobTxRLP{t.ChainID, t.Nonce, t.GasTipCap, t.GasFeeCap, t.Gas, t.To, t.Value, t.Data, t.AccessList, t.BlobFeeCap, t.BlobHashes, t.V, t.R, t.S})
		return prependType(BlobTxType, payload, err)
	default:
		return nil, ErrUnknownTxType
	}
}

func prependType(typ byte, payload []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	out := make([]byte, 1+len(payload))
	out[0] = typ
	copy(out[1:], payload)
	return out, nil
}

// Hash returns the Keccak256 hash of the transaction's canonical signed
// encoding. It is cached on first call. Unrecognized envelope kinds hash to
// the zero hash rather than erroring, so they contribute nothing downstream.
func (tx *Transaction) Hash() Hash {
	if tx == nil || tx.inner == nil {
		return Hash{}
	}
	if tx.hash != nil {
		return *tx.hash
	}
	enc, err := encodeSignedEnvelope(tx)
	if err != nil {
		return Hash{}
	}
	h := keccak256(enc)
	tx.hash = &h
	return h
}

// SigningHash returns the hash the sender's private key signed over. For
// Legacy transactions, chainID is the EIP-155 chain ID folded into V (see
// signer.go); a nil or zero chainID selects the pre-EIP-155 preimage.
// Typed envelopes ignore chainID and use their own ChainID field.
func SigningHash(tx *Transaction, chainID *big.Int) (Hash, error) {
	switch t := tx.inner.(type) {
	case *LegacyTx:
		if chainID == nil || chainID.Sign() == 0 {
			enc, err := rlp.EncodeToBytes([]interface{}{t.Nonce, t.GasPrice, t.Gas, t.To, t.Value, t.Data})
			if err != nil {
				return Hash{}, err
			}
			return keccak256(enc), nil
		}
		enc, err := rlp.EncodeToBytes([]interface{}{t.Nonce, t.GasPrice, t.Gas, t.To, t.Value, t.Data, chainID, uint64(0), uint64(0)})
		if err != nil {
			return Hash{}, err
		}
		return keccak256(enc), nil
	case *AccessListTx:
		payload, err := rlp.EncodeToBytes(accessListTxUnsignedRLP{t.ChainID, t.Nonce, t.GasPrice, t.Gas, t.To, t.Value, t.Data, t.AccessList})
		if err != nil {
			return Hash{}, err
		}
		return keccak256WithPrefix(AccessListTxType, payload), nil
	case *DynamicFeeTx:
		payload, err := rlp.EncodeToBytes(dynamicFeeTxUnsignedRLP{t.ChainID, t.Nonce, t.GasTipCap, t.GasFeeCap, t.Gas, t.To, t.Value, t.Data, t.AccessList})
		if err != nil {
			return Hash{}, err
		}
		return keccak256WithPrefix(DynamicFeeTxType, payload), nil
	case *BlobTx:
		payload, err := rlp.EncodeToBytes(blobTxUnsignedRLP{t.ChainID, t.Nonce, t.GasTipCap, t.GasFeeCap, t.Gas, t.To, t.Value, t.Data, t.AccessList, t.BlobFeeCap, t.BlobHashes})
		if err != nil {
			return Hash{}, err
		}
		return keccak256WithPrefix(BlobTxType, payload), nil
	default:
		return Hash{}, ErrUnknownTxType
	}
}

func keccak256(data []byte) Hash {
	d := sha3.NewLegacyKeccak256()
	d.Write(data)
	var h Hash
	copy(h[:], d.Sum(nil))
	return h
}

func keccak256WithPrefix(prefix byte, data []byte) Hash {
	d := sha3.NewLegacyKeccak256()
	d.Write([]byte{prefix})
	d.Write(data)
	var h Hash
	copy(h[:], d.Sum(nil))
	return h
}
