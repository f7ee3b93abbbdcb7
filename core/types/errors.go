package types

import "errors"

var (
	// ErrUnknownTxType is returned when an envelope's concrete type isn't
	// one of the four this package knows how to hash or encode.
	ErrUnknownTxType = errors.New("types: unknown transaction envelope type")

	// ErrInvalidSig is returned when a recovered (v, r, s) triple does not
	// correspond to a valid secp256k1 signature.
	ErrInvalidSig = errors.New("types: invalid transaction signature")
)
