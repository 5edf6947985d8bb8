package form

import (
	"fmt"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/routes"
)

// testIndex has 30 entries so both suggestion caps are reachable.
func testIndex() routes.Index {
	list := []routes.Route{
		{Name: "Foo Line", Code: "100"},
		{Name: "Yamanote Line", Code: "11302"},
		{Name: "Chuo Line (Rapid)", Code: "11312"},
	}
	for i := 0; i < 27; i++ {
		list = append(list, routes.Route{Name: fmt.Sprintf("Keikyu Line %02d", i), Code: fmt.Sprintf("27%03d", i)})
	}
	return routes.NewIndex(list)
}

func testSession() Session {
	return Session{UserID: "U1234567890"}
}
