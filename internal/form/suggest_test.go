package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/routes"
)

func TestSuggest_EmptyQuery(t *testing.T) {
	ix := testIndex()

	browse := Suggest(ix, "", true)
	assert.Equal(t, ix.First(BrowseLimit), browse)
	assert.Len(t, browse, 20)

	assert.Empty(t, Suggest(ix, "", false))
	assert.Empty(t, Suggest(ix, "   ", false), "whitespace counts as empty")
}

func TestSuggest_QueryIsTrimmed(t *testing.T) {
	ix := testIndex()

	assert.Equal(t, ix.First(BrowseLimit), Suggest(ix, " ", true), "whitespace with force browses")
	assert.Equal(t, Suggest(ix, "Yamanote", false), Suggest(ix, "  Yamanote ", false))
	assert.Equal(t, []routes.Route{{Name: "Chuo Line (Rapid)", Code: "11312"}}, Suggest(ix, " Line (", false), "inner spaces are kept")
}

func TestSuggest_SmallIndexBrowse(t *testing.T) {
	ix := routes.NewIndex([]routes.Route{{Name: "A", Code: "1"}, {Name: "B", Code: "2"}})
	assert.Len(t, Suggest(ix, "", true), 2)
}

func TestSuggest_QueryIsBoundedSubstring(t *testing.T) {
	ix := testIndex()

	for _, q := range []string{"Line", "Keikyu", "Line 1", "Rapid", "zzz", "e"} {
		for _, force := range []bool{true, false} {
			got := Suggest(ix, q, force)
			assert.LessOrEqual(t, len(got), MatchLimit, "query %q", q)
			for _, r := range got {
				assert.True(t, strings.Contains(r.Name, q), "%q does not contain %q", r.Name, q)
			}
		}
	}

	got := Suggest(ix, "Line", false)
	assert.Len(t, got, 10)
	assert.Equal(t, "Foo Line", got[0].Name, "index order is preserved")
}

func TestSuggest_CaseSensitive(t *testing.T) {
	assert.Empty(t, Suggest(testIndex(), "yamanote", false))
}

func TestSuggest_RecomputedWhenQueryShrinks(t *testing.T) {
	ix := testIndex()
	narrow := Suggest(ix, "Yamanote", false)
	wide := Suggest(ix, "Ya", false)
	assert.Len(t, narrow, 1)
	assert.Len(t, wide, 1)
	assert.Len(t, Suggest(ix, "e", false), MatchLimit)
}

func TestSuggest_EmptyIndex(t *testing.T) {
	var ix routes.Index
	assert.Empty(t, Suggest(ix, "", true))
	assert.Empty(t, Suggest(ix, "Line", false))
}
