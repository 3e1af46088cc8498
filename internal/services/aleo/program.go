package aleo

import (
	"fmt"

	"github.com/hxuan190/swap-gateway/internal/domain"
)

// SwapParams describes an in-chain swap routed through the router
// program with the platform fee collected on-chain.
type SwapParams struct {
	Amount          string
	MerchantAddress string
	CallerAddress   string
	Network         string
}

// BridgeParams describes a bridge-out through the bridge program.
// Destination chain and address travel as hashed field elements.
type BridgeParams struct {
	Amount             string
	DestinationChain   string
	DestinationAddress string
	CallerAddress      string
	Network            string
}

// TxBuilder assembles wallet-facing transaction payloads for the
// router and bridge programs.
type TxBuilder struct {
	routerProgram string
	bridgeProgram string
}

func NewTxBuilder(routerProgram, bridgeProgram string) *TxBuilder {
	return &TxBuilder{routerProgram: routerProgram, bridgeProgram: bridgeProgram}
}

// SwapTransaction builds the swap_with_fee call. The platform fee
// travels as the third input; the displayed amount is untouched.
func (b *TxBuilder) SwapTransaction(p SwapParams) (domain.AleoTransaction, error) {
	micro, err := AmountToMicrocredits(p.Amount)
	if err != nil {
		return domain.AleoTransaction{}, err
	}

	return domain.AleoTransaction{
		Address: p.CallerAddress,
		ChainID: p.Network,
		Transitions: []domain.AleoTransition{{
			Program:      b.routerProgram,
			FunctionName: "swap_with_fee",
			Inputs: []string{
				fmt.Sprintf("%du64", micro),
				p.MerchantAddress,
				fmt.Sprintf("%du64", PlatformFeeBps),
			},
		}},
		Fee:        SwapGasFee,
		FeePrivate: false,
	}, nil
}

// BridgeTransaction builds the bridge_with_fee call. Only the first 32
// characters of the destination address feed the field encoding, per
// the program interface.
func (b *TxBuilder) BridgeTransaction(p BridgeParams) (domain.AleoTransaction, error) {
	micro, err := AmountToMicrocredits(p.Amount)
	if err != nil {
		return domain.AleoTransaction{}, err
	}

	destAddr := p.DestinationAddress
	if len(destAddr) > 32 {
		destAddr = destAddr[:32]
	}

	return domain.AleoTransaction{
		Address: p.CallerAddress,
		ChainID: p.Network,
		Transitions: []domain.AleoTransition{{
			Program:      b.bridgeProgram,
			FunctionName: "bridge_with_fee",
			Inputs: []string{
				fmt.Sprintf("%du64", micro),
				fmt.Sprintf("%du64", PlatformFeeBps),
				fmt.Sprintf("%dfield", FieldHash(p.DestinationChain)),
				fmt.Sprintf("%dfield", FieldHash(destAddr)),
			},
		}},
		Fee:        BridgeGasFee,
		FeePrivate: false,
	}, nil
}
