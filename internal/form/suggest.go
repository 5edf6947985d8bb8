package form

import (
	"strings"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/routes"
)

const (
	// BrowseLimit caps the list shown for an empty query opened explicitly.
	BrowseLimit = 20
	// MatchLimit caps the substring matches shown while typing.
	MatchLimit = 10
)

// Suggest returns the suggestion list for query. An empty query yields the
// head of the index when forceShowAll is set and nothing otherwise; any other
// query yields at most MatchLimit substring matches in index order.
// Surrounding whitespace is dropped before matching, so a blank query counts
// as empty and "  Yamanote " matches like "Yamanote".
func Suggest(ix routes.Index, query string, forceShowAll bool) []routes.Route {
	q := strings.TrimSpace(query)
	if q == "" {
		if forceShowAll {
			return ix.First(BrowseLimit)
		}
		return nil
	}
	matches := ix.FindContaining(q)
	if len(matches) > MatchLimit {
		matches = matches[:MatchLimit]
	}
	return matches
}
