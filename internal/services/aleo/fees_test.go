package aleo

import (
	"math"
	"testing"
)

func TestAmountToMicrocredits(t *testing.T) {
	cases := []struct {
		amount string
		want   uint64
	}{
		{"10", 10_000_000},
		{"0.5", 500_000},
		{"0.000001", 1},
		{"1.9999999", 1_999_999},
		{"0", 0},
	}

	for _, tc := range cases {
		got, err := AmountToMicrocredits(tc.amount)
		if err != nil {
			t.Fatalf("AmountToMicrocredits(%q): %v", tc.amount, err)
		}
		if got != tc.want {
			t.Errorf("AmountToMicrocredits(%q) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestAmountToMicrocreditsTruncates(t *testing.T) {
	// Truncation, not rounding: 0.9999999 credits is 999999
	// microcredits, never a full credit.
	got, err := AmountToMicrocredits("0.9999999")
	if err != nil {
		t.Fatal(err)
	}
	if got != 999_999 {
		t.Errorf("got %d, want 999999", got)
	}
}

func TestAmountToMicrocreditsRejectsBadInput(t *testing.T) {
	for _, amount := range []string{"", "abc", "-1", "-0.5"} {
		if _, err := AmountToMicrocredits(amount); err == nil {
			t.Errorf("AmountToMicrocredits(%q) should fail", amount)
		}
	}
}

func TestFieldHashDeterministic(t *testing.T) {
	a := FieldHash("ethereum")
	b := FieldHash("ethereum")
	if a != b {
		t.Fatalf("hash not deterministic: %d vs %d", a, b)
	}
	if a == FieldHash("polygon") {
		t.Error("distinct chains should not collide on short names")
	}
}

func TestFieldHashKnownValues(t *testing.T) {
	// h = h*31 + code, 32-bit wrap, absolute value.
	cases := []struct {
		in   string
		want uint64
	}{
		{"", 0},
		{"a", 97},
		{"ab", 97*31 + 98},
		// U+1F600 hashes as its surrogate pair D83D DE00, two code
		// units, not one rune value.
		{"\U0001F600", 0xD83D*31 + 0xDE00},
	}
	for _, tc := range cases {
		if got := FieldHash(tc.in); got != tc.want {
			t.Errorf("FieldHash(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFieldHashFitsField(t *testing.T) {
	// The result must always fit a non-negative 32-bit magnitude even
	// when the rolling hash wraps negative.
	for _, s := range []string{"ethereum", "polygon", "aleo", "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0"} {
		h := FieldHash(s)
		if h > uint64(math.MaxInt32)+1 {
			t.Errorf("FieldHash(%q) = %d exceeds 32-bit magnitude", s, h)
		}
	}
}
