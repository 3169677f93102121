// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package i18n

import "testing"

func TestCatalogLocalesHaveSameKeys(t *testing.T) {
	t.Parallel()

	for key := range hindiMessages {
		if _, ok := englishMessages[key]; !ok {
			t.Errorf("english catalog missing key %q", key)
		}
	}

	for key := range englishMessages {
		if _, ok := hindiMessages[key]; !ok {
			t.Errorf("hindi catalog missing key %q", key)
		}
	}
}

func TestCatalogTFallsBack(t *testing.T) {
	t.Parallel()

	c := New(Hindi, map[string]map[string]string{
		Hindi:   {"a": "क", "b": "ख"},
		English: {"a": "A"},
	})

	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{locale: English, key: "a", want: "A"},
		{locale: English, key: "b", want: "ख"},
		{locale: "fr", key: "a", want: "क"},
		{locale: English, key: "missing", want: "missing"},
	}

	for _, tt := range tests {
		if got := c.T(tt.locale, tt.key); got != tt.want {
			t.Errorf("T(%q, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
		}
	}
}

func TestCatalogSteps(t *testing.T) {
	t.Parallel()

	steps := Default().Steps(English)
	want := []string{
		"Get regular blood tests",
		"Consult a doctor",
		"Maintain balanced diet",
		"Exercise regularly",
	}

	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(steps))
	}

	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("step %d: expected %q, got %q", i, want[i], steps[i])
		}
	}

	if hi := Default().Steps(Hindi); hi[0] != "नियमित ब्लड टेस्ट कराएं" {
		t.Fatalf("unexpected first hindi step %q", hi[0])
	}
}

func TestCatalogTf(t *testing.T) {
	t.Parallel()

	if got := Default().Tf(English, "error", "boom"); got != "Error: boom" {
		t.Fatalf("unexpected formatted message %q", got)
	}
}

func TestCatalogDictOverlaysLocale(t *testing.T) {
	t.Parallel()

	c := New(Hindi, map[string]map[string]string{
		Hindi:   {"a": "क", "b": "ख"},
		English: {"a": "A"},
	})

	dict := c.Dict(English)
	if dict["a"] != "A" || dict["b"] != "ख" {
		t.Fatalf("unexpected dict %v", dict)
	}
}

func TestCatalogLocalesDefaultFirst(t *testing.T) {
	t.Parallel()

	locales := Default().Locales()
	if len(locales) != 2 || locales[0] != Hindi || locales[1] != English {
		t.Fatalf("unexpected locales %v", locales)
	}
}
