// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/niklasfasching/go-org/org"
	nethtml "golang.org/x/net/html"
)

var (
	errTestWriteFailed = errors.New("write failed")
	errTestParseFailed = errors.New("parse failed")
)

func TestParseOrgToHTML(t *testing.T) {
	t.Parallel()

	rendered, err := ParseOrgToHTML("* Heading\nSome text")
	if err != nil {
		t.Fatalf("ParseOrgToHTML failed: %v", err)
	}

	if !strings.Contains(rendered, "Heading") {
		t.Fatalf("expected heading in output, got %s", rendered)
	}
}

func TestParseOrgToHTMLMarksExternalLinks(t *testing.T) {
	t.Setenv(BaseURLEnvVar, "https://confidence.example.com")

	content := "[[https://example.com][Ext]] [[/health][Local]] [[https://confidence.example.com/about][Self]]"

	rendered, err := ParseOrgToHTML(content)
	if err != nil {
		t.Fatalf("ParseOrgToHTML failed: %v", err)
	}

	if !strings.Contains(rendered, `href="https://example.com"`) {
		t.Fatalf("expected external link to render, got %s", rendered)
	}

	if strings.Count(rendered, `target="_blank"`) != 1 {
		t.Fatalf("expected only the external link to open in a new tab, got %s", rendered)
	}

	if !strings.Contains(rendered, `rel="noopener noreferrer"`) {
		t.Fatalf("expected external links to include noopener noreferrer, got %s", rendered)
	}
}

func TestParseOrgToHTMLRendersTables(t *testing.T) {
	t.Parallel()

	rendered, err := ParseOrgToHTML("| a | b |\n|---+---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("ParseOrgToHTML failed: %v", err)
	}

	if !strings.Contains(rendered, "<table") {
		t.Fatalf("expected a table, got %s", rendered)
	}
}

//nolint:paralleltest // Overrides package-level render hooks.
func TestParseOrgToHTMLWriteError(t *testing.T) {
	original := writeOrg
	t.Cleanup(func() {
		writeOrg = original
	})

	writeOrg = func(*org.Document, *org.HTMLWriter) (string, error) {
		return "", errTestWriteFailed
	}

	if _, err := ParseOrgToHTML("text"); !errors.Is(err, errTestWriteFailed) {
		t.Fatalf("expected write error, got %v", err)
	}
}

//nolint:paralleltest // Overrides package-level render hooks.
func TestParseOrgToHTMLAnnotateError(t *testing.T) {
	original := parseHTMLFragment
	t.Cleanup(func() {
		parseHTMLFragment = original
	})

	parseHTMLFragment = func(io.Reader, *nethtml.Node) ([]*nethtml.Node, error) {
		return nil, errTestParseFailed
	}

	if _, err := ParseOrgToHTML("text"); !errors.Is(err, errTestParseFailed) {
		t.Fatalf("expected annotate error, got %v", err)
	}
}

func TestIsExternalLink(t *testing.T) {
	t.Setenv(BaseURLEnvVar, "")

	tests := []struct {
		href string
		want bool
	}{
		{href: "", want: false},
		{href: "#section", want: false},
		{href: "/about", want: false},
		{href: "//cdn.example.com/x", want: true},
		{href: "https://example.com", want: true},
	}

	for _, tt := range tests {
		if got := isExternalLink(tt.href); got != tt.want {
			t.Errorf("isExternalLink(%q) = %v, want %v", tt.href, got, tt.want)
		}
	}
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		content string
		want    string
	}{
		{content: "#+title: Lower Case\n* Heading", want: "Lower Case"},
		{content: "text\n** Second level\n", want: "Second level"},
		{content: "no title", want: ""},
	}

	for _, tt := range tests {
		if got := ExtractTitle(tt.content); got != tt.want {
			t.Errorf("ExtractTitle(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestStripTitleDirective(t *testing.T) {
	t.Parallel()

	got := StripTitleDirective("#+TITLE: T\n* H\nbody")
	if got != "* H\nbody" {
		t.Fatalf("unexpected stripped content %q", got)
	}
}
