// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.
package i18n

import (
	"testing"
)

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

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("nav.base64"); got != "Base64 Encoder/Decoder" {
		t.Fatalf("expected 'Base64 Encoder/Decoder', got %q", got)
	}

	// fmt-style formatting via extra args
	if got := T("timestamp.detected", "seconds"); got != "Detected format: seconds" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	defer Init("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("base64.clear"); got != "Leeren" {
		t.Fatalf("expected German 'Leeren', got %q", got)
	}
}

func TestT_UnknownIDFallsBack(t *testing.T) {
	Init("en")
	if got := T("no.such.key"); got != "no.such.key" {
		t.Fatalf("expected id fallback, got %q", got)
	}
}

func TestMatch(t *testing.T) {
	Init("en")
	cases := map[string]string{
		"en":          "en",
		"de":          "de",
		"de-AT":       "de",
		"de_DE.UTF-8": "de",
		"en_US@posix": "en",
		"fr":          "en",
		"":            "en",
		"!!":          "en",
	}
	for in, want := range cases {
		if got := Match(in); got != want {
			t.Fatalf("Match(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDateLayout(t *testing.T) {
	Init("en")
	if got := DateLayout(); got != "1/2/2006, 3:04:05 PM" {
		t.Fatalf("unexpected en layout %q", got)
	}
	Init("de")
	defer Init("en")
	if got := DateLayout(); got != "2.1.2006, 15:04:05" {
		t.Fatalf("unexpected de layout %q", got)
	}
}
