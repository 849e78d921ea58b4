package richtext

import (
	"html/template"
	"strings"
	"testing"
)

func TestMarkdownToHTML(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want template.HTML
	}{
		{name: "empty", raw: "   ", want: ""},
		{name: "plain text", raw: "Yes", want: "Yes"},
		{name: "bold", raw: "**Chickens**", want: "<strong>Chickens</strong>"},
		{name: "italic", raw: "_Goats_", want: "<em>Goats</em>"},
		{name: "heading", raw: "# Livestock", want: `<h1>Livestock</h1>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Markdown.ToHTML(tc.raw); got != tc.want {
				t.Fatalf("ToHTML(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestMarkdownStripsScripts(t *testing.T) {
	got := string(Markdown.ToHTML("Pick <script>alert(1)</script>one"))
	if strings.Contains(got, "<script") {
		t.Fatalf("expected script to be removed, got %q", got)
	}
	if !strings.Contains(got, "Pick") {
		t.Fatalf("expected text to survive, got %q", got)
	}
}

func TestConverterFunc(t *testing.T) {
	conv := ConverterFunc(func(raw string) template.HTML {
		return template.HTML("[" + raw + "]")
	})
	if got := conv.ToHTML("x"); got != "[x]" {
		t.Fatalf("unexpected adapter output %q", got)
	}
}
