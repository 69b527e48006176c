// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import "testing"

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
}

func TestInit_UnknownLanguageFallsBack(t *testing.T) {
	Init("xx")
	if GetLang() != "en" {
		t.Fatalf("expected fallback to 'en', got %q", GetLang())
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("menu.export"); got != "Export" {
		t.Fatalf("expected 'Export', got %q", got)
	}
	if got := T("status.known", 2, 6); got != "2/6 key bytes known" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}
	if got := T("no.such.id"); got != "no.such.id" {
		t.Fatalf("expected id fallback, got %q", got)
	}

	SetLang("de")
	defer SetLang("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("menu.quit"); got != "Beenden" {
		t.Fatalf("expected German 'Beenden', got %q", got)
	}
}
