// Package units converts token amounts between human-decimal strings
// and integer base-unit strings. Conversions are pure string
// manipulation so amounts larger than any machine integer survive
// untouched.
package units

import "strings"

// DisplayFractionDigits caps the fractional digits FromBaseUnits
// renders. Display amounts lose precision past this point; anything
// feeding further arithmetic must keep the base-unit string instead.
const DisplayFractionDigits = 6

// ToBaseUnits converts a human-decimal amount to an integer base-unit
// string for a token with the given decimal count. The fraction is
// right-padded or truncated to exactly decimals digits; there is no
// rounding. Malformed input degrades to a "0"-like result rather than
// an error.
func ToBaseUnits(amount string, decimals int) string {
	whole, fraction, _ := strings.Cut(amount, ".")
	if len(fraction) < decimals {
		fraction += strings.Repeat("0", decimals-len(fraction))
	} else {
		fraction = fraction[:decimals]
	}
	out := strings.TrimLeft(whole+fraction, "0")
	if out == "" {
		return "0"
	}
	return out
}

// FromBaseUnits renders an integer base-unit string as a human-decimal
// display amount, truncating the fraction to DisplayFractionDigits.
// Display-only: the truncation makes it unsuitable for fee math.
func FromBaseUnits(amount string, decimals int) string {
	if decimals <= 0 {
		if amount == "" {
			return "0"
		}
		return amount
	}
	if len(amount) < decimals+1 {
		amount = strings.Repeat("0", decimals+1-len(amount)) + amount
	}
	whole := amount[:len(amount)-decimals]
	fraction := amount[len(amount)-decimals:]
	if len(fraction) > DisplayFractionDigits {
		fraction = fraction[:DisplayFractionDigits]
	}
	return whole + "." + fraction
}
