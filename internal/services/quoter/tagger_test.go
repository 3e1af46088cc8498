package quoter

import (
	"testing"

	"github.com/hxuan190/swap-gateway/internal/domain"
	"github.com/hxuan190/swap-gateway/internal/services/lifi"
)

func TestTagRoutesFirstAlwaysBestReturn(t *testing.T) {
	routes := []domain.SwapRoute{{ID: "a"}, {ID: "b"}}
	TagRoutes(routes, []lifi.Route{{}, {}})

	if len(routes[0].Tags) != 1 || routes[0].Tags[0] != domain.TagBestReturn {
		t.Errorf("first route tags = %v, want [Best Return]", routes[0].Tags)
	}
}

func TestTagRoutesAdditive(t *testing.T) {
	routes := []domain.SwapRoute{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	raw := []lifi.Route{
		{Tags: []string{"RECOMMENDED", "CHEAPEST"}},
		{Tags: []string{"FASTEST"}},
		{},
	}
	TagRoutes(routes, raw)

	want0 := []string{domain.TagBestReturn, domain.TagCheapest}
	if len(routes[0].Tags) != 2 || routes[0].Tags[0] != want0[0] || routes[0].Tags[1] != want0[1] {
		t.Errorf("route 0 tags = %v, want %v", routes[0].Tags, want0)
	}
	if len(routes[1].Tags) != 1 || routes[1].Tags[0] != domain.TagFastest {
		t.Errorf("route 1 tags = %v, want [Fastest]", routes[1].Tags)
	}
}

// A route with no classification and not in first position keeps Tags
// nil, not an empty slice; JSON consumers branch on field presence.
func TestTagRoutesNilNotEmpty(t *testing.T) {
	routes := []domain.SwapRoute{{ID: "a"}, {ID: "b"}}
	TagRoutes(routes, []lifi.Route{{}, {}})

	if routes[1].Tags != nil {
		t.Errorf("route 1 tags = %#v, want nil", routes[1].Tags)
	}
}
