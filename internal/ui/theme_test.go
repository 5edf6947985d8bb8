package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextThemeCycles(t *testing.T) {
	cases := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Slate",
		"Slate":    "Nightfox",
		"Unknown":  "Nightfox",
	}
	for in, want := range cases {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetThemeFallsBack(t *testing.T) {
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Nightfox", got)
	}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, th.Name)
		}
		if th.Danger == "" || th.BorderFocus == "" {
			t.Fatalf("theme %q is missing colors", name)
		}
	}
}
