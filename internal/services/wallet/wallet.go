// Package wallet gives every chain family one canonical address
// adapter instead of per-chain branches scattered through callers.
package wallet

import (
	"fmt"
	"strconv"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"
)

// Chain families the gateway understands.
const (
	FamilyEVM    = "evm"
	FamilySolana = "solana"
	FamilyAleo   = "aleo"
)

// Adapter validates addresses for one chain family and supplies the
// placeholder address quoting uses when the caller has not connected a
// wallet yet.
type Adapter interface {
	Family() string
	ValidateAddress(addr string) error
	PlaceholderAddress() string
}

type evmAdapter struct{}

func (evmAdapter) Family() string { return FamilyEVM }

func (evmAdapter) ValidateAddress(addr string) error {
	if !ethcommon.IsHexAddress(addr) {
		return fmt.Errorf("invalid EVM address %q", addr)
	}
	return nil
}

func (evmAdapter) PlaceholderAddress() string {
	return "0x0000000000000000000000000000000000000000"
}

type solanaAdapter struct{}

func (solanaAdapter) Family() string { return FamilySolana }

func (solanaAdapter) ValidateAddress(addr string) error {
	if _, err := solana.PublicKeyFromBase58(addr); err != nil {
		return fmt.Errorf("invalid Solana address %q: %w", addr, err)
	}
	return nil
}

func (solanaAdapter) PlaceholderAddress() string {
	return solana.SystemProgramID.String()
}

type aleoAdapter struct{}

func (aleoAdapter) Family() string { return FamilyAleo }

func (aleoAdapter) ValidateAddress(addr string) error {
	if !strings.HasPrefix(addr, "aleo1") || len(addr) != 63 {
		return fmt.Errorf("invalid Aleo address %q", addr)
	}
	return nil
}

func (aleoAdapter) PlaceholderAddress() string {
	return "aleo1" + strings.Repeat("0", 58)
}

// Registry resolves the adapter for a chain identifier. Numeric chain
// ids are EVM networks with one carve-out for Solana's aggregator id;
// string keys name the family directly.
type Registry struct {
	adapters map[string]Adapter
}

// SolanaChainID is the chain id the aggregator assigns to Solana.
const SolanaChainID = 1151111081099710

func NewRegistry() *Registry {
	return &Registry{adapters: map[string]Adapter{
		FamilyEVM:    evmAdapter{},
		FamilySolana: solanaAdapter{},
		FamilyAleo:   aleoAdapter{},
	}}
}

// ForChain returns the adapter responsible for the given chain id or
// chain key.
func (r *Registry) ForChain(chainID string) (Adapter, error) {
	key := strings.ToLower(chainID)
	if a, ok := r.adapters[key]; ok {
		return a, nil
	}
	if n, err := strconv.ParseInt(chainID, 10, 64); err == nil {
		if n == SolanaChainID {
			return r.adapters[FamilySolana], nil
		}
		return r.adapters[FamilyEVM], nil
	}
	return nil, fmt.Errorf("unsupported chain %q", chainID)
}

// Validate checks an address against the family owning the chain.
func (r *Registry) Validate(chainID, addr string) error {
	a, err := r.ForChain(chainID)
	if err != nil {
		return err
	}
	return a.ValidateAddress(addr)
}
