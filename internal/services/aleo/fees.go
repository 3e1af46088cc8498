package aleo

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"
)

// Fee policy constants for the privacy-chain router. The platform fee
// is encoded as a transaction input, not pre-deducted from the
// displayed amount.
const (
	// PlatformFeeBps is the fixed platform fee: 50 bps = 0.50%.
	PlatformFeeBps = 50

	// BridgeFeeRate is the flat bridge-fee estimate applied by the
	// server-side quote: 0.1% of the amount.
	BridgeFeeRate = 0.001

	// GasFeeCredits is the flat network-gas estimate in whole credits
	// the server-side quote reserves.
	GasFeeCredits = 0.1

	// Microcredit reservations attached to wallet transactions. Bridge
	// calls reserve more than in-chain swaps.
	SwapGasFee   = 100_000
	BridgeGasFee = 150_000

	// MicrocreditsPerCredit is the 6-decimal fixed point of the chain.
	MicrocreditsPerCredit = 1_000_000
)

// AmountToMicrocredits converts a human-decimal credit amount to
// microcredits, truncating toward zero. Rounding would overstate what
// the program may spend.
func AmountToMicrocredits(amount string) (uint64, error) {
	f, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative amount %q", amount)
	}
	return uint64(math.Floor(f * MicrocreditsPerCredit)), nil
}

// FieldHash encodes a string as a numeric field element using the
// polynomial rolling hash the deployed router program expects:
// h = h*31 + code per UTF-16 code unit, wrapped to 32-bit signed
// range, then the absolute value. Supplementary characters contribute
// their surrogate pair as two units. Collision-prone and
// non-cryptographic; it only labels routing metadata, it is not a
// content address. The wraparound and sign handling must stay
// bit-for-bit with the program interface.
func FieldHash(s string) uint64 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	if h == math.MinInt32 {
		// abs(MinInt32) overflows int32; the program interface widens
		// first, so mirror that.
		return uint64(-int64(h))
	}
	if h < 0 {
		h = -h
	}
	return uint64(h)
}
