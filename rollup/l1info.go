package rollup

import (
	"github.com/holiman/uint256"
)

// facetTrailerLen is the length in bytes of the two appended big-endian
// u128 values.
const facetTrailerLen = 32

// AppendFacetTrailer takes the assembled Ecotone-scalar L1-block-info
// calldata and appends the Facet variant's trailing fct_mint_rate and
// fct_mint_period_l1_data_gas fields, each a 16-byte big-endian integer.
// Infallible: only the low 16 bytes of each value are written. The rate
// controller keeps rate at or below MaxRate; cumGas is not range-checked
// here or by AdvanceCumGas.
func AppendFacetTrailer(ecotoneCalldata []byte, rate, cumGas *uint256.Int) []byte {
	out := make([]byte, len(ecotoneCalldata)+facetTrailerLen)
	copy(out, ecotoneCalldata)
	rateBytes := rate.Bytes32()
	cumGasBytes := cumGas.Bytes32()
	copy(out[len(ecotoneCalldata):len(ecotoneCalldata)+16], rateBytes[16:32])
	copy(out[len(ecotoneCalldata)+16:], cumGasBytes[16:32])
	return out
}

// SplitFacetTrailer parses the Facet variant's trailing 32 bytes off the
// end of calldata, returning the standard Ecotone-scalar prefix and the two
// decoded u128 values. Fails only on structural shortness; the preceding
// Ecotone fields are the caller's responsibility to parse.
func SplitFacetTrailer(calldata []byte) (ecotoneCalldata []byte, rate, cumGas *uint256.Int, err error) {
	if len(calldata) < facetTrailerLen {
		return nil, nil, nil, ErrL1InfoTooShort
	}
	split := len(calldata) - facetTrailerLen
	rate = new(uint256.Int).SetBytes(calldata[split : split+16])
	cumGas = new(uint256.Int).SetBytes(calldata[split+16 : split+32])
	return calldata[:split], rate, cumGas, nil
}
