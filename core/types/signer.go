package types

import (
	"math/big"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Sender recovers the L1 sender address of tx from its signature. All four
// envelope variants are supported; an unrecognized envelope returns
// ErrUnknownTxType (a caller using this as part of the calldata-path
// attribution simply treats it as if signer recovery were unavailable).
func Sender(tx *Transaction) (Address, error) {
	switch t := tx.inner.(type) {
	case *LegacyTx:
		chainID, recID, err := legacySigValues(t.V)
		if err != nil {
			return Address{}, err
		}
		sigHash, err := SigningHash(tx, chainID)
		if err != nil {
			return Address{}, err
		}
		return recoverSender(sigHash, recID, t.R, t.S)
	case *AccessListTx:
		recID, err := typedRecoveryID(t.V)
		if err != nil {
			return Address{}, err
		}
		sigHash, err := SigningHash(tx, t.ChainID)
		if err != nil {
			return Address{}, err
		}
		return recoverSender(sigHash, recID, t.R, t.S)
	case *DynamicFeeTx:
		recID, err := typedRecoveryID(t.V)
		if err != nil {
			return Address{}, err
		}
		sigHash, err := SigningHash(tx, t.ChainID)
		if err != nil {
			return Address{}, err
		}
		return recoverSender(sigHash, recID, t.R, t.S)
	case *BlobTx:
		recID, err := typedRecoveryID(t.V)
		if err != nil {
			return Address{}, err
		}
		sigHash, err := SigningHash(tx, t.ChainID)
		if err != nil {
			return Address{}, err
		}
		return recoverSender(sigHash, recID, t.R, t.S)
	default:
		return Address{}, ErrUnknownTxType
	}
}

// legacySigValues interprets a Legacy transaction's V field, returning the
// EIP-155 chain ID (nil if the signature predates EIP-155) and the
// secp256k1 recovery ID folded into V.
func legacySigValues(v *big.Int) (chainID *big.Int, recID byte, err error) {
	if v == nil {
		return nil, 0, ErrInvalidSig
	}
	if v.Cmp(big.NewInt(35)) < 0 {
		// Pre-EIP-155: V is 27 or 28.
		rec := new(big.Int).Sub(v, big.NewInt(27))
		if rec.Sign() < 0 || rec.Cmp(big.NewInt(1)) > 0 {
			return nil, 0, ErrInvalidSig
		}
		return nil, byte(rec.Uint64()), nil
	}
	// EIP-155: v = chainID*2 + 35 + recID.
	rec := new(big.Int).Sub(v, big.NewInt(35))
	cid := new(big.Int)
	cid.DivMod(rec, big.NewInt(2), rec)
	return cid, byte(rec.Uint64()), nil
}

// typedRecoveryID interprets a typed (EIP-2718) transaction's V field,
// which carries the bare secp256k1 recovery ID (0 or 1), no chain-ID
// folding.
func typedRecoveryID(v *big.Int) (byte, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(big.NewInt(1)) > 0 {
		return 0, ErrInvalidSig
	}
	return byte(v.Uint64()), nil
}

func recoverSender(sigHash Hash, recID byte, r, s *big.Int) (Address, error) {
	if r == nil || s == nil {
		return Address{}, ErrInvalidSig
	}
	sig := make([]byte, 65)
	r.FillBytes(sig[0:32])
	s.FillBytes(sig[32:64])
	sig[64] = recID

	pub, err := gethcrypto.SigToPub(sigHash[:], sig)
	if err != nil {
		return Address{}, ErrInvalidSig
	}
	return BytesToAddress(gethcrypto.PubkeyToAddress(*pub).Bytes()), nil
}
