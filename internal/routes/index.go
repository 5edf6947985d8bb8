package routes

import "strings"

// Route is one known transit line with its canonical code.
type Route struct {
	Name string `json:"line_name"`
	Code string `json:"line_cd"`
}

// Index is an immutable, ordered sequence of reference routes. The zero value
// is the empty index.
type Index struct {
	routes []Route
}

// NewIndex builds an Index from routes, preserving their order.
func NewIndex(routes []Route) Index {
	if len(routes) == 0 {
		return Index{}
	}
	dup := make([]Route, len(routes))
	copy(dup, routes)
	return Index{routes: dup}
}

// Len reports the number of routes in the index.
func (ix Index) Len() int {
	return len(ix.routes)
}

// First returns up to n routes from the head of the index.
func (ix Index) First(n int) []Route {
	if n <= 0 || len(ix.routes) == 0 {
		return nil
	}
	if n > len(ix.routes) {
		n = len(ix.routes)
	}
	out := make([]Route, n)
	copy(out, ix.routes[:n])
	return out
}

// FindExact returns the first route whose name equals name.
func (ix Index) FindExact(name string) (Route, bool) {
	for _, r := range ix.routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// Has reports whether the exact name/code pair is present.
func (ix Index) Has(r Route) bool {
	for _, candidate := range ix.routes {
		if candidate == r {
			return true
		}
	}
	return false
}

// FindContaining returns every route whose name contains fragment. Matching
// is case-sensitive and the result keeps index order.
func (ix Index) FindContaining(fragment string) []Route {
	var out []Route
	for _, r := range ix.routes {
		if strings.Contains(r.Name, fragment) {
			out = append(out, r)
		}
	}
	return out
}
