package constants

import "testing"

func TestNormalizeUnit_Synonyms(t *testing.T) {
	cases := map[string]string{
		"KG":       "kg",
		"Kilo":     "kg",
		"piece":    "pièce",
		"unite":    "unité",
		"L":        "L",
		"litre":    "L",
		"cs":       "c.à.s",
		"cc":       "c.à.c",
		"douzaine": "douzaine",
	}
	for in, want := range cases {
		if got := NormalizeUnit(in); got != want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeUnit_EmptyDefaultsToUnite(t *testing.T) {
	if got := NormalizeUnit(""); got != "unité" {
		t.Errorf("empty unit = %q, want unité", got)
	}
	if got := NormalizeUnit("   "); got != "unité" {
		t.Errorf("blank unit = %q, want unité", got)
	}
}

func TestNormalizeUnit_UnknownPassesThrough(t *testing.T) {
	if got := NormalizeUnit("barquette"); got != "barquette" {
		t.Errorf("unknown unit = %q, want passthrough", got)
	}
}

func TestMapExtToFormat(t *testing.T) {
	cases := map[string]string{
		".pdf": PDF,
		"PDF":  PDF,
		"jpeg": IMAGE,
		".png": IMAGE,
		"heic": "",
		"":     "",
	}
	for in, want := range cases {
		if got := MapExtToFormat(in); got != want {
			t.Errorf("MapExtToFormat(%q) = %q, want %q", in, got, want)
		}
	}
}
