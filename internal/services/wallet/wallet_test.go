package wallet

import (
	"strings"
	"testing"
)

func TestForChainFamilies(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		chainID string
		family  string
	}{
		{"1", FamilyEVM},
		{"137", FamilyEVM},
		{"1151111081099710", FamilySolana},
		{"aleo", FamilyAleo},
		{"Aleo", FamilyAleo},
		{"solana", FamilySolana},
	}
	for _, tt := range tests {
		a, err := r.ForChain(tt.chainID)
		if err != nil {
			t.Fatalf("ForChain(%q) error: %v", tt.chainID, err)
		}
		if a.Family() != tt.family {
			t.Errorf("ForChain(%q).Family() = %q, want %q", tt.chainID, a.Family(), tt.family)
		}
	}

	if _, err := r.ForChain("not-a-chain"); err == nil {
		t.Error("expected error for unknown chain key")
	}
}

func TestValidateAddresses(t *testing.T) {
	r := NewRegistry()

	if err := r.Validate("1", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"); err != nil {
		t.Errorf("valid EVM address rejected: %v", err)
	}
	if err := r.Validate("1", "0x123"); err == nil {
		t.Error("short EVM address accepted")
	}
	if err := r.Validate("1151111081099710", "So11111111111111111111111111111111111111112"); err != nil {
		t.Errorf("valid Solana address rejected: %v", err)
	}
	if err := r.Validate("1151111081099710", "not-base58!"); err == nil {
		t.Error("invalid Solana address accepted")
	}
	if err := r.Validate("aleo", "aleo1"+strings.Repeat("q", 58)); err != nil {
		t.Errorf("valid-shaped Aleo address rejected: %v", err)
	}
	if err := r.Validate("aleo", "aleo1short"); err == nil {
		t.Error("short Aleo address accepted")
	}
}

func TestPlaceholderAddresses(t *testing.T) {
	r := NewRegistry()
	for _, chain := range []string{"1", "solana", "aleo"} {
		a, err := r.ForChain(chain)
		if err != nil {
			t.Fatalf("ForChain(%q): %v", chain, err)
		}
		if err := a.ValidateAddress(a.PlaceholderAddress()); err != nil {
			t.Errorf("placeholder for %s fails its own validation: %v", a.Family(), err)
		}
	}
}
