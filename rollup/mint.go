package rollup

import (
	"github.com/holiman/uint256"
)

// MonetaryState is the FCT rate and cumulative L1-data-gas carried from one
// L2 block's derivation into the next.
type MonetaryState struct {
	Rate                *uint256.Int
	CumulativeL1DataGas *uint256.Int
}

// DataGasUsed returns the L1 data-gas charged for bytes. Contract-initiated
// payloads (the log path, where an L1 contract already paid L1 gas to emit
// the log) are charged a flat 8 gas/byte; calldata-path payloads use the
// standard zero/nonzero-byte calldata accounting rule.
//
// Linear in concatenation for a fixed contractInitiated flag:
// DataGasUsed(a++b, f) == DataGasUsed(a, f) + DataGasUsed(b, f).
func DataGasUsed(data []byte, contractInitiated bool) uint64 {
	if contractInitiated {
		return 8 * uint64(len(data))
	}
	var zero, nonzero uint64
	for _, b := range data {
		if b == 0 {
			zero++
		} else {
			nonzero++
		}
	}
	return 4*zero + 16*nonzero
}

// HalvingPeriodsPassed returns how many full halving periods have elapsed by
// l2Block.
func HalvingPeriodsPassed(l2Block uint64) uint64 {
	return l2Block / HalvingPeriodInBlocks
}

// HalvingFactor returns 2^HalvingPeriodsPassed(l2Block).
func HalvingFactor(l2Block uint64) *uint256.Int {
	return new(uint256.Int).Lsh(uint256.NewInt(1), uint(HalvingPeriodsPassed(l2Block)))
}

// IsFirstBlockInPeriod reports whether l2Block opens a new adjustment period.
func IsFirstBlockInPeriod(l2Block uint64) bool {
	return l2Block%AdjustmentPeriod == 0
}

// HalvingAdjustedTarget returns TARGET_MINT_PER_PERIOD scaled down by the
// halving factor in effect at l2Block.
func HalvingAdjustedTarget(l2Block uint64) *uint256.Int {
	return new(uint256.Int).Div(TargetMintPerPeriod, HalvingFactor(l2Block))
}

// ComputeNewRate implements the period-boundary rate adjustment. Outside a
// boundary block the rate never changes.
func ComputeNewRate(l2Block uint64, prevRate, prevCumGas *uint256.Int) *uint256.Int {
	if !IsFirstBlockInPeriod(l2Block) {
		return new(uint256.Int).Set(prevRate)
	}

	var candidate *uint256.Int
	if prevCumGas.IsZero() {
		candidate = new(uint256.Int).Set(MaxRate)
	} else {
		candidate = new(uint256.Int).Div(HalvingAdjustedTarget(l2Block), prevCumGas)
	}

	upper := new(uint256.Int).Mul(prevRate, uint256.NewInt(MaxAdjustmentFactor))
	if upper.Cmp(MaxRate) > 0 {
		upper = MaxRate
	}
	lower := new(uint256.Int).Div(prevRate, uint256.NewInt(MaxAdjustmentFactor))
	if lower.Cmp(MinRate) < 0 {
		lower = MinRate
	}

	switch {
	case candidate.Cmp(lower) < 0:
		return new(uint256.Int).Set(lower)
	case candidate.Cmp(upper) > 0:
		return new(uint256.Int).Set(upper)
	default:
		return candidate
	}
}

// AdvanceCumGas folds batchGas into the running per-period total, resetting
// at period boundaries.
func AdvanceCumGas(l2Block uint64, prevCumGas, batchGas *uint256.Int) *uint256.Int {
	if IsFirstBlockInPeriod(l2Block) {
		return new(uint256.Int).Set(batchGas)
	}
	return new(uint256.Int).Add(prevCumGas, batchGas)
}

// SaturatingMul returns a*b clamped to MaxUint128 rather than wrapping.
// Overflow in mint computation must never silently inflate the mint; it
// saturates instead.
func SaturatingMul(a, b *uint256.Int) *uint256.Int {
	product, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow || product.Cmp(MaxUint128) > 0 {
		return new(uint256.Int).Set(MaxUint128)
	}
	return product
}
