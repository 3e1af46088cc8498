package aleo

import "github.com/hxuan190/swap-gateway/internal/domain"

// MerchantRegistry lists the liquidity providers routing can settle
// against. The shipped implementation is a static demo roster;
// production reads registered merchants from chain state behind the
// same interface.
type MerchantRegistry interface {
	Merchants() []domain.Merchant
}

type staticMerchantRegistry struct {
	merchants []domain.Merchant
}

func NewStaticMerchantRegistry() MerchantRegistry {
	return &staticMerchantRegistry{merchants: []domain.Merchant{
		{
			Address:      "aleo1merchant1000000000000000000000000000000000000000000000000",
			Name:         "Liquidity Provider A",
			Liquidity:    "50000",
			FeeMarkupBps: 20,
			Active:       true,
		},
		{
			Address:      "aleo1merchant2000000000000000000000000000000000000000000000000",
			Name:         "Liquidity Provider B",
			Liquidity:    "25000",
			FeeMarkupBps: 15,
			Active:       true,
		},
	}}
}

func (r *staticMerchantRegistry) Merchants() []domain.Merchant {
	out := make([]domain.Merchant, len(r.merchants))
	copy(out, r.merchants)
	return out
}
