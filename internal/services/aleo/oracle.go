package aleo

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// RateOracle supplies an exchange rate between two token symbols. The
// shipped implementation is a static demo table; production swaps it
// for a live price feed behind the same interface.
type RateOracle interface {
	Rate(fromToken, toToken string) (float64, bool)
}

// Demo rates. Illustrative only, not market data.
var defaultRates = map[string]map[string]float64{
	"ALEO":  {"ETH": 0.0005, "USDC": 1.5, "MATIC": 2.0},
	"ETH":   {"ALEO": 2000, "USDC": 3000, "MATIC": 1500},
	"USDC":  {"ALEO": 0.67, "ETH": 0.00033, "MATIC": 1.1},
	"MATIC": {"ALEO": 0.5, "ETH": 0.00066, "USDC": 0.9},
}

type staticRateOracle struct {
	rates map[string]map[string]float64
}

// NewStaticOracle builds the demo oracle. When ratesFile names a YAML
// file its pairs override the built-in table, so operators can tweak
// demo rates without a rebuild.
func NewStaticOracle(ratesFile string) RateOracle {
	rates := make(map[string]map[string]float64, len(defaultRates))
	for from, row := range defaultRates {
		dst := make(map[string]float64, len(row))
		for to, rate := range row {
			dst[to] = rate
		}
		rates[from] = dst
	}

	if ratesFile != "" {
		v := viper.New()
		v.SetConfigFile(ratesFile)
		if err := v.ReadInConfig(); err != nil {
			log.Warn().Err(err).Str("file", ratesFile).Msg("[rateOracle] rates file unreadable, using built-in table")
		} else {
			for from := range v.AllSettings() {
				row := v.GetStringMap(from)
				fromSym := strings.ToUpper(from)
				if rates[fromSym] == nil {
					rates[fromSym] = make(map[string]float64, len(row))
				}
				for to := range row {
					rates[fromSym][strings.ToUpper(to)] = v.GetFloat64(from + "." + to)
				}
			}
			log.Info().Str("file", ratesFile).Msg("[rateOracle] loaded rate overrides")
		}
	}

	return &staticRateOracle{rates: rates}
}

func (o *staticRateOracle) Rate(fromToken, toToken string) (float64, bool) {
	row, ok := o.rates[strings.ToUpper(fromToken)]
	if !ok {
		return 1, false
	}
	rate, ok := row[strings.ToUpper(toToken)]
	if !ok {
		return 1, false
	}
	return rate, true
}
