package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Kanagawa"); got.Name != "Kanagawa" {
		t.Fatalf("GetTheme(Kanagawa).Name = %q", got.Name)
	}
	if got := GetTheme("nope"); got.Name != "Nightfox" {
		t.Fatalf("GetTheme(nope).Name = %q, want Nightfox fallback", got.Name)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(unknown) = %q, want Nightfox", got)
	}
}

func TestStatusStyleFallback(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()
	known := styles.StatusStyle("delivered").Render("delivered")
	unknown := styles.StatusStyle("mystery").Render("mystery")
	if known == "" || unknown == "" {
		t.Fatalf("StatusStyle rendered empty output")
	}
}
