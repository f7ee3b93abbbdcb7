// Package geth adapts go-ethereum's wire types to the ones the derivation
// core reads. All conversions between go-ethereum's types and core/types
// live here; elsewhere go-ethereum is imported only for signature recovery
// (core/types) and for decoding raw transaction bytes (cmd/derive).
package geth

import (
	"fmt"
	"math/big"

	gethcommon "github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/0xFacet/kona/core/types"
)

// --- Address and Hash conversion (zero-copy, layout-compatible) ---

// ToGethAddress converts an Address to a go-ethereum Address.
func ToGethAddress(a types.Address) gethcommon.Address {
	return gethcommon.Address(a)
}

// FromGethAddress converts a go-ethereum Address to an Address.
func FromGethAddress(a gethcommon.Address) types.Address {
	return types.Address(a)
}

// ToGethHash converts a Hash to a go-ethereum Hash.
func ToGethHash(h types.Hash) gethcommon.Hash {
	return gethcommon.Hash(h)
}

// FromGethHash converts a go-ethereum Hash to a Hash.
func FromGethHash(h gethcommon.Hash) types.Hash {
	return types.Hash(h)
}

// --- Balance conversion ---

// ToUint256 converts *big.Int to *uint256.Int.
func ToUint256(b *big.Int) *uint256.Int {
	if b == nil {
		return new(uint256.Int)
	}
	u, _ := uint256.FromBig(b)
	return u
}

// FromUint256 converts *uint256.Int to *big.Int.
func FromUint256(u *uint256.Int) *big.Int {
	if u == nil {
		return new(big.Int)
	}
	return u.ToBig()
}

// --- AccessList conversion ---

// ToGethAccessList converts an AccessList to a go-ethereum AccessList.
func ToGethAccessList(al types.AccessList) gethtypes.AccessList {
	if al == nil {
		return nil
	}
	result := make(gethtypes.AccessList, len(al))
	for i, tuple := range al {
		keys := make([]gethcommon.Hash, len(tuple.StorageKeys))
		for j, k := range tuple.StorageKeys {
			keys[j] = ToGethHash(k)
		}
		result[i] = gethtypes.AccessTuple{
			Address:     ToGethAddress(tuple.Address),
			StorageKeys: keys,
		}
	}
	return result
}

// FromGethAccessList converts a go-ethereum AccessList to an AccessList.
func FromGethAccessList(al gethtypes.AccessList) types.AccessList {
	if al == nil {
		return nil
	}
	result := make(types.AccessList, len(al))
	for i, tuple := range al {
		keys := make([]types.Hash, len(tuple.StorageKeys))
		for j, k := range tuple.StorageKeys {
			keys[j] = FromGethHash(k)
		}
		result[i] = types.AccessTuple{
			Address:     FromGethAddress(tuple.Address),
			StorageKeys: keys,
		}
	}
	return result
}

// --- Log conversion ---

// FromGethLog converts a go-ethereum Log to a Log.
func FromGethLog(l *gethtypes.Log) *types.Log {
	if l == nil {
		return nil
	}
	topics := make([]types.Hash, len(l.Topics))
	for i, t := range l.Topics {
		topics[i] = FromGethHash(t)
	}
	return &types.Log{
		Address:     FromGethAddress(l.Address),
		Topics:      topics,
		Data:        l.Data,
		BlockNumber: l.BlockNumber,
		TxHash:      FromGethHash(l.TxHash),
		TxIndex:     l.TxIndex,
		BlockHash:   FromGethHash(l.BlockHash),
		Index:       l.Index,
		Removed:     l.Removed,
	}
}

// FromGethLogs converts a slice of go-ethereum Logs.
func FromGethLogs(logs []*gethtypes.Log) []*types.Log {
	result := make([]*types.Log, len(logs))
	for i, l := range logs {
		result[i] = FromGethLog(l)
	}
	return result
}

// FromGethReceipt converts a go-ethereum Receipt to the minimal Receipt
// shape the derivation core reads.
func FromGethReceipt(r *gethtypes.Receipt) *types.Receipt {
	return &types.Receipt{
		Status: r.Status,
		Logs:   FromGethLogs(r.Logs),
	}
}

// FromGethTx converts a go-ethereum Transaction into the core's tagged
// envelope representation. Only the four envelope kinds the core reads
// (Legacy, EIP-2930, EIP-1559, EIP-4844) are recognized; any other type
// returns an error rather than silently degrading: an inspection tool
// should surface an unexpected L1 envelope instead of swallowing it the
// way the core itself tolerates unknown variants.
func FromGethTx(tx *gethtypes.Transaction) (*types.Transaction, error) {
	v, r, s := tx.RawSignatureValues()
	var to *types.Address
	if tx.To() != nil {
		addr := FromGethAddress(*tx.To())
		to = &addr
	}

	switch tx.Type() {
	case gethtypes.LegacyTxType:
		return types.NewTx(&types.LegacyTx{
			Nonce:    tx.Nonce(),
			GasPrice: tx.GasPrice(),
			Gas:      tx.Gas(),
			To:       to,
			Value:    tx.Value(),
			Data:     tx.Data(),
			V:        v, R: r, S: s,
		}), nil
	case gethtypes.AccessListTxType:
		return types.NewTx(&types.AccessListTx{
			ChainID:    tx.ChainId(),
			Nonce:      tx.Nonce(),
			GasPrice:   tx.GasPrice(),
			Gas:        tx.Gas(),
			To:         to,
			Value:      tx.Value(),
			Data:       tx.Data(),
			AccessList: FromGethAccessList(tx.AccessList()),
			V:          v, R: r, S: s,
		}), nil
	case gethtypes.DynamicFeeTxType:
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:    tx.ChainId(),
			Nonce:      tx.Nonce(),
			GasTipCap:  tx.GasTipCap(),
			GasFeeCap:  tx.GasFeeCap(),
			Gas:        tx.Gas(),
			To:         to,
			Value:      tx.Value(),
			Data:       tx.Data(),
			AccessList: FromGethAccessList(tx.AccessList()),
			V:          v, R: r, S: s,
		}), nil
	case gethtypes.BlobTxType:
		blobHashes := make([]types.Hash, len(tx.BlobHashes()))
		for i, h := range tx.BlobHashes() {
			blobHashes[i] = FromGethHash(h)
		}
		var toAddr types.Address
		if to != nil {
			toAddr = *to
		}
		return types.NewTx(&types.BlobTx{
			ChainID:    tx.ChainId(),
			Nonce:      tx.Nonce(),
			GasTipCap:  tx.GasTipCap(),
			GasFeeCap:  tx.GasFeeCap(),
			Gas:        tx.Gas(),
			To:         toAddr,
			Value:      tx.Value(),
			Data:       tx.Data(),
			AccessList: FromGethAccessList(tx.AccessList()),
			BlobFeeCap: tx.BlobGasFeeCap(),
			BlobHashes: blobHashes,
			V:          v, R: r, S: s,
		}), nil
	default:
		return nil, fmt.Errorf("geth: unsupported L1 envelope type 0x%x", tx.Type())
	}
}
