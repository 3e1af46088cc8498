package quoter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hxuan190/swap-gateway/internal/domain"
	"github.com/hxuan190/swap-gateway/internal/services/lifi"
	"github.com/hxuan190/swap-gateway/internal/units"
)

// NormalizeRoutes maps raw aggregator routes into the gateway's route
// representation. The mapping is total and order-preserving: every raw
// route yields exactly one SwapRoute at the same index. Ranking is the
// upstream's job; nothing here re-sorts.
func NormalizeRoutes(raw []lifi.Route, fromToken, toToken domain.Token, fromAmount string) []domain.SwapRoute {
	routes := make([]domain.SwapRoute, 0, len(raw))
	for i, r := range raw {
		routes = append(routes, normalizeRoute(r, i, fromToken, toToken, fromAmount))
	}
	return routes
}

func normalizeRoute(r lifi.Route, index int, fromToken, toToken domain.Token, fromAmount string) domain.SwapRoute {
	var gasCostUSD float64
	var duration float64
	for _, step := range r.Steps {
		for _, gc := range step.Estimate.GasCosts {
			gasCostUSD += parseFloat(gc.AmountUSD)
		}
		duration += step.Estimate.ExecutionDuration
	}

	steps := make([]domain.SwapStep, 0, len(r.Steps))
	for _, step := range r.Steps {
		steps = append(steps, normalizeStep(step))
	}

	id := r.ID
	if id == "" {
		id = fmt.Sprintf("route-%d", index)
	}

	return domain.SwapRoute{
		ID:             id,
		FromToken:      fromToken,
		ToToken:        toToken,
		FromAmount:     fromAmount,
		ToAmount:       units.FromBaseUnits(r.ToAmount, toToken.Decimals),
		ToAmountUSD:    fmt.Sprintf("%.2f", parseFloat(r.ToAmountUSD)),
		GasCost:        "0",
		GasCostUSD:     fmt.Sprintf("%.2f", gasCostUSD),
		EstimatedTime:  FormatDuration(duration),
		Steps:          steps,
		PercentageDiff: percentageDiff(parseFloat(r.FromAmountUSD), parseFloat(r.ToAmountUSD)),
	}
}

func normalizeStep(step lifi.Step) domain.SwapStep {
	stepType := domain.StepTypeSwap
	if step.Type == "cross" {
		stepType = domain.StepTypeBridge
	}
	return domain.SwapStep{
		Type:      stepType,
		Provider:  step.ToolDetails.Name,
		FromToken: step.Action.FromToken.Symbol,
		ToToken:   step.Action.ToToken.Symbol,
		FromChain: strconv.Itoa(step.Action.FromChainID),
		ToChain:   strconv.Itoa(step.Action.ToChainID),
	}
}

// FormatDuration renders an aggregate execution time in seconds as a
// short display string: "45s", "2 min", "2h".
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 60:
		// Truncate so values just under a minute stay in seconds.
		return fmt.Sprintf("%ds", int(seconds))
	case seconds < 3600:
		return fmt.Sprintf("%d min", int(math.Round(seconds/60)))
	default:
		return fmt.Sprintf("%dh", int(math.Round(seconds/3600)))
	}
}

// percentageDiff is the USD value change of a route relative to its
// input, signed explicitly ("+5.00%" / "-5.00%"). A zero input value
// yields an unsigned zero rather than dividing by it.
func percentageDiff(fromUSD, toUSD float64) string {
	if fromUSD <= 0 {
		return "0.00%"
	}
	diff := (toUSD - fromUSD) / fromUSD * 100
	if diff >= 0 {
		return fmt.Sprintf("+%.2f%%", diff)
	}
	return fmt.Sprintf("%.2f%%", diff)
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
