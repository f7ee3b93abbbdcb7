// Package rollup implements the Facet-variant deposit derivation core: the
// pure function that turns an L1 block's transactions and receipts into the
// ordered L2 deposit transactions that must head the corresponding L2
// block, together with the evolving FCT monetary state.
package rollup

import (
	"github.com/holiman/uint256"

	"github.com/0xFacet/kona/core/types"
)

// FacetTxType is the prefix byte of a Facet payload envelope (distinct from
// types.DepositTxType, which is the wire type of the deposit the payload is
// eventually converted into).
const FacetTxType byte = 0x46

// FacetInboxAddress is the well-known L1 address that Facet transactions are
// sent to. A transaction's non-empty calldata sent here is attempted as a
// Facet payload before any of its logs are considered; this address has no
// contract code deployed at it on L1, it exists only as a destination to
// route calldata through.
//
// The zero-prefixed 0xfacE7 vanity suffix matches the l2_chain_id = 0xface7a
// convention used elsewhere in this system.
var FacetInboxAddress = types.HexToAddress("0x00000000000000000000000000000000000FacE7")

// FacetLogInboxEventSig is the Keccak256 topic0 of the event signature a log
// must carry to be considered a Facet submission via the log-derivation
// path. Computed the same way EIP-6110's deposit event topic is computed:
// Keccak256 of the ASCII event signature string, not a hand-picked literal.
var FacetLogInboxEventSig = keccak256([]byte("FacetTransaction(address,bytes)"))

const (
	// AdjustmentPeriod is the number of L2 blocks the FCT mint rate is held
	// constant for.
	AdjustmentPeriod uint64 = 10_000

	// L2BlockTime is the L2 block period in seconds, used only to derive
	// HalvingPeriodInBlocks from a calendar year.
	L2BlockTime uint64 = 12

	secondsPerYear uint64 = 31_556_952
)

// HalvingPeriodInBlocks is the number of L2 blocks between halvings of the
// per-period FCT mint target, rounded down to a whole number of adjustment
// periods.
var HalvingPeriodInBlocks = AdjustmentPeriod * ((secondsPerYear / L2BlockTime) / AdjustmentPeriod)

var (
	// TargetFCTMintPerL1Block is the long-run target FCT minted per L1
	// block, in FCT-wei, before any halving has applied.
	TargetFCTMintPerL1Block = uint256.MustFromDecimal("40000000000000000000") // 40e18

	// TargetMintPerPeriod is TargetFCTMintPerL1Block scaled to a full
	// adjustment period.
	TargetMintPerPeriod = new(uint256.Int).Mul(TargetFCTMintPerL1Block, uint256.NewInt(AdjustmentPeriod))

	// InitialRate is the FCT mint rate (FCT-wei per L1-data-gas-unit) a
	// freshly genesis'd chain starts at.
	InitialRate = uint256.NewInt(800_000_000_000_000) // 8e14

	// MaxRate and MinRate bound every rate the controller can ever produce.
	MaxRate = uint256.NewInt(10_000_000_000_000_000) // 1e16
	MinRate = uint256.NewInt(1)

	// MaxUint128 is the ceiling every saturating u128 computation clamps to.
	MaxUint128 = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))
)

// MaxAdjustmentFactor bounds how far the rate can move in a single
// adjustment-period boundary, in either direction.
const MaxAdjustmentFactor = 2
