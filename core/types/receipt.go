package types

// Receipt status values, per EIP-658.
const (
	ReceiptStatusFailed     = uint64(0)
	ReceiptStatusSuccessful = uint64(1)
)

// Receipt is the portion of an L1 transaction receipt the derivation core
// reads: whether the transaction succeeded, and the logs it emitted.
type Receipt struct {
	Status uint64
	Logs   []*Log
}

// Succeeded reports whether the receipt's post-Byzantium status field
// equals 1.
func (r *Receipt) Succeeded() bool {
	return r != nil && r.Status == ReceiptStatusSuccessful
}
