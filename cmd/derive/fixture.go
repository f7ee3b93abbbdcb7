package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/0xFacet/kona/core/types"
	"github.com/0xFacet/kona/geth"
)

// fixture is the on-disk shape of an L1-block input: one hex-encoded typed
// transaction and its matching receipt per entry, in canonical L1 order.
// Building this from a live L1 JSON-RPC provider is the job of the
// surrounding system, not this tool; derive only consumes already-
// materialized block data.
type fixture struct {
	Entries []fixtureEntry `json:"entries"`
}

type fixtureEntry struct {
	// Transaction is the EIP-2718 typed-or-legacy RLP encoding of the L1
	// transaction, hex-encoded with or without a 0x prefix.
	Transaction string `json:"transaction"`
	Receipt     fixtureReceipt `json:"receipt"`
}

type fixtureReceipt struct {
	Status uint64       `json:"status"`
	Logs   []fixtureLog `json:"logs"`
}

type fixtureLog struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`
}

func loadFixture(path string) ([]*types.Transaction, []*types.Receipt, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read fixture: %w", err)
	}

	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, nil, fmt.Errorf("parse fixture: %w", err)
	}

	txs := make([]*types.Transaction, len(f.Entries))
	receipts := make([]*types.Receipt, len(f.Entries))

	for i, e := range f.Entries {
		txBytes, err := decodeHex(e.Transaction)
		if err != nil {
			return nil, nil, fmt.Errorf("entry %d: transaction: %w", i, err)
		}
		var gtx gethtypes.Transaction
		if err := gtx.UnmarshalBinary(txBytes); err != nil {
			return nil, nil, fmt.Errorf("entry %d: decode transaction: %w", i, err)
		}
		tx, err := geth.FromGethTx(&gtx)
		if err != nil {
			return nil, nil, fmt.Errorf("entry %d: %w", i, err)
		}
		txs[i] = tx

		logs := make([]*types.Log, len(e.Receipt.Logs))
		for j, l := range e.Receipt.Logs {
			addrBytes, err := decodeHex(l.Address)
			if err != nil {
				return nil, nil, fmt.Errorf("entry %d: log %d: address: %w", i, j, err)
			}
			data, err := decodeHex(l.Data)
			if err != nil {
				return nil, nil, fmt.Errorf("entry %d: log %d: data: %w", i, j, err)
			}
			topics := make([]types.Hash, len(l.Topics))
			for k, t := range l.Topics {
				tb, err := decodeHex(t)
				if err != nil {
					return nil, nil, fmt.Errorf("entry %d: log %d: topic %d: %w", i, j, k, err)
				}
				topics[k] = types.BytesToHash(tb)
			}
			logs[j] = &types.Log{
				Address: types.BytesToAddress(addrBytes),
				Topics:  topics,
				Data:    data,
			}
		}
		receipts[i] = &types.Receipt{Status: e.Receipt.Status, Logs: logs}
	}

	return txs, receipts, nil
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
