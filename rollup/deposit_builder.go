package rollup

import (
	"github.com/0xFacet/kona/core/types"
)

// BuildDeposit assembles a canonical deposit transaction from a decoded
// Facet payload whose Mint has already been assigned, the L2 from address
// attributed to it, and its source hash. No field is reordered or
// normalized on the way to the wire: the same (payload, from, sourceHash)
// always yields the same bytes.
func BuildDeposit(p *FacetPayload, from types.Address, sourceHash types.Hash) ([]byte, error) {
	return types.EncodeDepositTx(&types.DepositTx{
		SourceHash:          sourceHash,
		From:                from,
		To:                  p.To,
		Mint:                p.Mint.ToBig(),
		Value:               p.Value.ToBig(),
		Gas:                 p.GasLimit,
		IsSystemTransaction: false,
		Data:                p.Data,
	})
}
