package quoter

import (
	"slices"

	"github.com/hxuan190/swap-gateway/internal/domain"
	"github.com/hxuan190/swap-gateway/internal/services/lifi"
)

// Upstream route classifications the tagger recognizes.
const (
	rawTagFastest  = "FASTEST"
	rawTagCheapest = "CHEAPEST"
)

// TagRoutes assigns display tags in place. The list is already in the
// upstream RECOMMENDED order, so position zero is the best return by
// definition; FASTEST and CHEAPEST come from the upstream
// classification of the matching raw route. Tags are additive. A route
// with nothing to say keeps Tags nil, never an empty slice.
func TagRoutes(routes []domain.SwapRoute, raw []lifi.Route) {
	for i := range routes {
		var tags []string
		if i == 0 {
			tags = append(tags, domain.TagBestReturn)
		}
		if i < len(raw) {
			if slices.Contains(raw[i].Tags, rawTagFastest) {
				tags = append(tags, domain.TagFastest)
			}
			if slices.Contains(raw[i].Tags, rawTagCheapest) {
				tags = append(tags, domain.TagCheapest)
			}
		}
		routes[i].Tags = tags
	}
}
