package rollup

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestDataGasUsedLinearity(t *testing.T) {
	a := []byte{0x00, 0x01, 0x00, 0xff}
	b := []byte{0x02, 0x00, 0x00}
	ab := append(append([]byte{}, a...), b...)

	for _, contractInitiated := range []bool{false, true} {
		got := DataGasUsed(ab, contractInitiated)
		want := DataGasUsed(a, contractInitiated) + DataGasUsed(b, contractInitiated)
		if got != want {
			t.Errorf("contractInitiated=%v: DataGasUsed(a++b) = %d, want %d", contractInitiated, got, want)
		}
	}
}

func TestDataGasUsedContractInitiated(t *testing.T) {
	data := make([]byte, 10)
	if got, want := DataGasUsed(data, true), uint64(80); got != want {
		t.Errorf("DataGasUsed(10 bytes, contractInitiated) = %d, want %d", got, want)
	}
}

func TestDataGasUsedCalldataRule(t *testing.T) {
	data := []byte{0x00, 0x00, 0x01, 0x02} // 2 zero, 2 nonzero
	if got, want := DataGasUsed(data, false), uint64(4*2+16*2); got != want {
		t.Errorf("DataGasUsed = %d, want %d", got, want)
	}
}

func TestIsFirstBlockInPeriod(t *testing.T) {
	if !IsFirstBlockInPeriod(0) {
		t.Error("block 0 should open a period")
	}
	if !IsFirstBlockInPeriod(AdjustmentPeriod) {
		t.Error("block AdjustmentPeriod should open a period")
	}
	if IsFirstBlockInPeriod(5) {
		t.Error("block 5 should not open a period")
	}
}

func TestComputeNewRateMidPeriodInvariance(t *testing.T) {
	prevRate := uint256.NewInt(12345)
	prevCumGas := uint256.NewInt(999)
	got := ComputeNewRate(5, prevRate, prevCumGas)
	if !got.Eq(prevRate) {
		t.Errorf("ComputeNewRate mid-period = %s, want unchanged %s", got, prevRate)
	}
}

func TestComputeNewRateClampUpper(t *testing.T) {
	// prevCumGas = 1 makes the candidate rate enormous, so the 2x adjustment
	// factor must clamp it, per Scenario E.
	prevRate := new(uint256.Int).Set(InitialRate)
	prevCumGas := uint256.NewInt(1)
	got := ComputeNewRate(AdjustmentPeriod, prevRate, prevCumGas)
	want := new(uint256.Int).Mul(prevRate, uint256.NewInt(2))
	if !got.Eq(want) {
		t.Errorf("ComputeNewRate at period boundary = %s, want %s", got, want)
	}
	if got.Cmp(MaxRate) > 0 {
		t.Errorf("ComputeNewRate = %s exceeds MaxRate %s", got, MaxRate)
	}
}

func TestComputeNewRateClampedWithinBounds(t *testing.T) {
	prevRate := uint256.NewInt(1_000_000)
	prevCumGas := TargetMintPerPeriod // candidate collapses to ~1, well below prevRate/2
	got := ComputeNewRate(AdjustmentPeriod, prevRate, prevCumGas)
	lower := new(uint256.Int).Div(prevRate, uint256.NewInt(MaxAdjustmentFactor))
	if got.Cmp(lower) < 0 {
		t.Errorf("ComputeNewRate = %s below lower bound %s", got, lower)
	}
}

func TestComputeNewRateZeroCumGas(t *testing.T) {
	prevRate := uint256.NewInt(1)
	got := ComputeNewRate(AdjustmentPeriod, prevRate, new(uint256.Int))
	// candidate = MaxRate, but clamped to upper = min(prevRate*2, MaxRate) = 2.
	if want := uint256.NewInt(2); !got.Eq(want) {
		t.Errorf("ComputeNewRate with zero prevCumGas = %s, want %s", got, want)
	}
}

func TestAdvanceCumGasResetsAtBoundary(t *testing.T) {
	batch := uint256.NewInt(42)
	got := AdvanceCumGas(AdjustmentPeriod, uint256.NewInt(1000), batch)
	if !got.Eq(batch) {
		t.Errorf("AdvanceCumGas at boundary = %s, want reset to %s", got, batch)
	}
}

func TestAdvanceCumGasCarriesMidPeriod(t *testing.T) {
	prev := uint256.NewInt(1000)
	batch := uint256.NewInt(42)
	got := AdvanceCumGas(5, prev, batch)
	want := new(uint256.Int).Add(prev, batch)
	if !got.Eq(want) {
		t.Errorf("AdvanceCumGas mid-period = %s, want %s", got, want)
	}
}

func TestSaturatingMulSaturates(t *testing.T) {
	got := SaturatingMul(MaxUint128, uint256.NewInt(2))
	if !got.Eq(MaxUint128) {
		t.Errorf("SaturatingMul overflow = %s, want clamp to %s", got, MaxUint128)
	}
}

func TestSaturatingMulNormal(t *testing.T) {
	got := SaturatingMul(uint256.NewInt(3), uint256.NewInt(4))
	if want := uint256.NewInt(12); !got.Eq(want) {
		t.Errorf("SaturatingMul(3,4) = %s, want %s", got, want)
	}
}
