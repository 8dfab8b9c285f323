package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicy() {
	initOnce.Do(func() {
		// StrictPolicy drops every element; script and style bodies go with them.
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripHTML removes all markup and returns HTML-escaped text.
// Use when the result is rendered back into a page.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	initPolicy()
	return strictPolicy.Sanitize(s)
}

// PlainText removes all markup and decodes entities, so "&copy;" and "&#169;"
// both become "©". The result is raw text, not safe for HTML output.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(StripHTML(s))
}

// PlainTextCustom behaves like PlainText with a caller supplied policy.
// Returns input unchanged if policy is nil.
func PlainTextCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return html.UnescapeString(policy.Sanitize(s))
}
