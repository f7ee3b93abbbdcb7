package rollup

import (
	"github.com/holiman/uint256"

	"github.com/0xFacet/kona/core/types"
)

// extraction is one Facet payload pulled from an L1 transaction, together
// with the attribution data needed to turn it into a deposit once the
// per-block rate is known.
type extraction struct {
	payload    *FacetPayload
	from       types.Address
	sourceHash types.Hash
}

// Derive is the top-level pure function of the pipeline: given an L1
// block's transactions and receipts in canonical order plus the monetary
// state carried over from the previous L2 block, it returns the ordered
// Facet deposit bytes for this L2 block and the updated monetary state.
//
// txs and receipts must be the same length and in the same L1 order; this
// is a caller precondition, not a tolerated input, and violating it is the
// one input error Derive returns (a deposit-encoding failure from
// BuildDeposit is also passed through). Every other malformed input (an
// unparsable payload, a bad chain id) is silently skipped, never surfaced
// as an error.
//
// Each deposit's source hash is the L1 transaction hash alone, with no log
// index or other per-payload value mixed in. This is unique within a block
// because at most one payload is extracted per L1 transaction.
func Derive(
	txs []*types.Transaction,
	receipts []*types.Receipt,
	l2ChainID uint64,
	l2Block uint64,
	prevRate *uint256.Int,
	prevCumGas *uint256.Int,
) (deposits [][]byte, newRate *uint256.Int, newCumGas *uint256.Int, err error) {
	if len(txs) != len(receipts) {
		return nil, nil, nil, ErrTxReceiptLengthMismatch
	}

	extractions := make([]extraction, 0, len(txs))
	for i, tx := range txs {
		receipt := receipts[i]
		if !receipt.Succeeded() {
			continue
		}

		h := tx.Hash()

		if to := tx.To(); to != nil && *to == FacetInboxAddress && len(tx.Input()) > 0 {
			if payload, derr := DecodeFacetPayload(tx.Input(), l2ChainID, false); derr == nil {
				// A payload that decodes is still a payload even if its
				// envelope signature fails to recover a sender: it still
				// consumed L1 data gas and still mints a deposit, just
				// attributed to the zero address rather than dropped.
				from, serr := types.Sender(tx)
				if serr != nil {
					from = types.Address{}
				}
				extractions = append(extractions, extraction{
					payload:    payload,
					from:       from,
					sourceHash: h,
				})
			}
			continue
		}

		for _, log := range receipt.Logs {
			if len(log.Topics) == 0 || log.Topics[0] != FacetLogInboxEventSig {
				continue
			}
			payload, derr := DecodeFacetPayload(log.Data, l2ChainID, true)
			if derr != nil {
				break
			}
			extractions = append(extractions, extraction{
				payload:    payload,
				from:       AliasL1ToL2(log.Address),
				sourceHash: h,
			})
			break
		}
	}

	batchGas := new(uint256.Int)
	for _, e := range extractions {
		batchGas.Add(batchGas, uint256.NewInt(e.payload.L1DataGasUsed))
	}

	newRate = ComputeNewRate(l2Block, prevRate, prevCumGas)
	newCumGas = AdvanceCumGas(l2Block, prevCumGas, batchGas)

	deposits = make([][]byte, 0, len(extractions))
	for _, e := range extractions {
		e.payload.Mint = SaturatingMul(uint256.NewInt(e.payload.L1DataGasUsed), newRate)
		depBytes, berr := BuildDeposit(e.payload, e.from, e.sourceHash)
		if berr != nil {
			return nil, nil, nil, berr
		}
		deposits = append(deposits, depBytes)
	}

	return deposits, newRate, newCumGas, nil
}
