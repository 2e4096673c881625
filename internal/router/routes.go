// Package router maps slash-separated paths onto screens and keeps the
// navigation stack. Paths use the file-based layout of the prototype: group
// segments in parentheses, dynamic segments in brackets.
package router

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"

	apperrors "github.com/alexisbeaulieu97/yodl/pkg/errors"
)

// Name identifies a screen.
type Name string

const (
	Split           Name = "split"
	CountryHome     Name = "tabs/index"
	CountryPay      Name = "tabs/pay"
	CountryMenu     Name = "tabs/menu"
	TokenHome       Name = "tabs-token/index"
	TokenWallet     Name = "tabs-token/wallet"
	AssetDetail     Name = "tabs-token/token"
	Settings        Name = "tabs-token/menu"
	Wallet          Name = "screens/wallet"
	TokenDetail     Name = "screens/token"
	PaymentNetworks Name = "screens/settings/payment-networks"
	QuickPay        Name = "screens/settings/quick-pay"
)

// Group is the parenthesised layout segment a route belongs to.
type Group string

const (
	GroupRoot      Group = ""
	GroupTabs      Group = "(tabs)"
	GroupTabsToken Group = "(tabs-token)"
	GroupScreens   Group = "(screens)"
)

// Route is one entry of the route table.
type Route struct {
	Name    Name
	Pattern string
	Group   Group
	Title   string
}

// Params returns the names of the route's dynamic segments.
func (r Route) Params() []string {
	return lo.FilterMap(segments(r.Pattern), func(seg string, _ int) (string, bool) {
		return paramName(seg)
	})
}

// Match is a resolved path.
type Match struct {
	Route  Route
	Path   string
	Params map[string]string
}

// Param returns a dynamic segment value, empty when absent.
func (m Match) Param(name string) string {
	return m.Params[name]
}

// Root paths.
const (
	RootPath  = "/"
	SplitPath = "/split"
)

var table = []Route{
	{Name: Split, Pattern: SplitPath, Group: GroupRoot, Title: "Choose Test Mode"},
	{Name: CountryHome, Pattern: "/(tabs)/index", Group: GroupTabs, Title: "Home"},
	{Name: CountryPay, Pattern: "/(tabs)/pay", Group: GroupTabs, Title: "Pay"},
	{Name: CountryMenu, Pattern: "/(tabs)/menu", Group: GroupTabs, Title: "Menu"},
	{Name: TokenHome, Pattern: "/(tabs-token)/index", Group: GroupTabsToken, Title: "Home"},
	{Name: TokenWallet, Pattern: "/(tabs-token)/wallet", Group: GroupTabsToken, Title: "Wallet"},
	{Name: AssetDetail, Pattern: "/(tabs-token)/token/[id]", Group: GroupTabsToken, Title: "Token"},
	{Name: Settings, Pattern: "/(tabs-token)/menu", Group: GroupTabsToken, Title: "Settings"},
	{Name: Wallet, Pattern: "/(screens)/wallet", Group: GroupScreens, Title: "Wallet"},
	{Name: TokenDetail, Pattern: "/(screens)/token/[id]", Group: GroupScreens, Title: "Token"},
	{Name: PaymentNetworks, Pattern: "/(screens)/settings/payment-networks", Group: GroupScreens, Title: "Payment Networks"},
	{Name: QuickPay, Pattern: "/(screens)/settings/quick-pay", Group: GroupScreens, Title: "Quick Pay"},
}

// Routes returns a copy of the route table in declaration order.
func Routes() []Route {
	result := make([]Route, len(table))
	copy(result, table)
	return result
}

// Lookup returns the route registered under name.
func Lookup(name Name) (Route, bool) {
	return lo.Find(table, func(r Route) bool { return r.Name == name })
}

// Filter returns the routes whose pattern or name fuzzily matches query, best
// matches first. An empty query returns the whole table.
func Filter(query string) []Route {
	if strings.TrimSpace(query) == "" {
		return Routes()
	}

	type scored struct {
		route Route
		rank  int
	}
	var hits []scored
	for _, r := range table {
		best := -1
		for _, target := range []string{r.Pattern, string(r.Name), r.Title} {
			rank := fuzzy.RankMatchNormalizedFold(query, target)
			if rank >= 0 && (best < 0 || rank < best) {
				best = rank
			}
		}
		if best >= 0 {
			hits = append(hits, scored{route: r, rank: best})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })
	return lo.Map(hits, func(h scored, _ int) Route { return h.route })
}

// Resolve resolves path to exactly one route. The root path resolves to the
// splash, a bare group resolves to its index route and a missing trailing
// dynamic segment yields an empty parameter.
func Resolve(path string) (Match, error) {
	normalized, ok := normalize(path)
	if !ok {
		return Match{}, apperrors.NewRouteError(path)
	}

	parts := segments(normalized)
	if len(parts) == 1 && isGroup(parts[0]) {
		parts = append(parts, "index")
		normalized += "/index"
	}

	for _, r := range table {
		if params, ok := matchSegments(segments(r.Pattern), parts); ok {
			return Match{Route: r, Path: normalized, Params: params}, nil
		}
	}
	return Match{}, apperrors.NewRouteError(path)
}

func normalize(path string) (string, bool) {
	path = strings.TrimSpace(path)
	if path == "" || path == RootPath {
		return SplitPath, true
	}
	if !strings.HasPrefix(path, "/") {
		return "", false
	}
	path = strings.TrimRight(path, "/")
	if strings.Contains(path, "//") {
		return "", false
	}
	return path, true
}

func matchSegments(pattern, parts []string) (map[string]string, bool) {
	params := map[string]string{}

	switch {
	case len(parts) == len(pattern):
	case len(parts) == len(pattern)-1:
		name, ok := paramName(pattern[len(pattern)-1])
		if !ok {
			return nil, false
		}
		params[name] = ""
		pattern = pattern[:len(pattern)-1]
	default:
		return nil, false
	}

	for i, seg := range pattern {
		if name, ok := paramName(seg); ok {
			params[name] = parts[i]
			continue
		}
		if seg != parts[i] {
			return nil, false
		}
	}
	return params, true
}

func segments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func paramName(seg string) (string, bool) {
	if len(seg) > 2 && strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]") {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}

func isGroup(seg string) bool {
	return strings.HasPrefix(seg, "(") && strings.HasSuffix(seg, ")")
}

// Path builds a concrete path for name, substituting params into dynamic segments.
func Path(name Name, params map[string]string) (string, error) {
	r, ok := Lookup(name)
	if !ok {
		return "", apperrors.NewRouteError(string(name))
	}
	parts := lo.Map(segments(r.Pattern), func(seg string, _ int) string {
		if p, ok := paramName(seg); ok {
			return params[p]
		}
		return seg
	})
	return "/" + strings.TrimRight(strings.Join(parts, "/"), "/"), nil
}
