package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 || names[0] != "Nightfox" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestTypeColor(t *testing.T) {
	th := GetTheme("Slate")
	if got := th.TypeColor(" Fire "); got != th.TypeColors["fire"] {
		t.Fatalf("TypeColor(Fire) = %q, want %q", got, th.TypeColors["fire"])
	}
	if got := th.TypeColor("Shadow"); got != th.Muted {
		t.Fatalf("TypeColor(Shadow) = %q, want muted %q", got, th.Muted)
	}
	for _, name := range ThemeNames() {
		if n := len(GetTheme(name).TypeColors); n != 18 {
			t.Fatalf("%s has %d type colors, want 18", name, n)
		}
	}
}
