// Package richtext converts the lightweight markup allowed in form labels
// (a markdown subset plus inline color spans) into sanitized HTML.
package richtext

import (
	"html/template"
	"regexp"
	"strings"
	"sync"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// Converter renders raw label markup.
type Converter interface {
	ToHTML(raw string) template.HTML
}

// ConverterFunc adapts a function to Converter.
type ConverterFunc func(raw string) template.HTML

// ToHTML calls fn.
func (fn ConverterFunc) ToHTML(raw string) template.HTML {
	return fn(raw)
}

// Markdown is the default Converter.
var Markdown Converter = markdownConverter{}

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy

	colorValue = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+)$`)
)

type markdownConverter struct{}

func (markdownConverter) ToHTML(raw string) template.HTML {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.ToHTML([]byte(trimmed), p, r)

	cleaned := strings.TrimSpace(sanitizer().Sanitize(string(rendered)))
	return template.HTML(unwrapParagraph(cleaned))
}

// unwrapParagraph strips the enclosing paragraph when the markup rendered to a
// single one, so short labels stay inline.
func unwrapParagraph(html string) string {
	if !strings.HasPrefix(html, "<p>") || !strings.HasSuffix(html, "</p>") {
		return html
	}
	if strings.Count(html, "<p>") != 1 {
		return html
	}
	return strings.TrimSuffix(strings.TrimPrefix(html, "<p>"), "</p>")
}

func sanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"p", "br", "strong", "b", "em", "i", "u", "del", "code",
			"h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "li", "span", "a",
		)
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(false)
		policy.AllowStyles("color").Matching(colorValue).OnElements("span")
		labelPolicy = policy
	})
	return labelPolicy
}
