package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/slugify/pkg/sanitizer"
)

// Make converts s into a slug using the Default registry.
func Make(s string, opts ...Option) string {
	return Default.Make(s, opts...)
}

// MakeWith converts s into a slug using the Default registry and a fully
// resolved options record.
func MakeWith(s string, o Options) string {
	return Default.MakeWith(s, o)
}

// Transform is the dynamically typed entry point: it returns
// ErrInvalidArgument unless input is a string.
func Transform(input any, opts ...Option) (string, error) {
	return Default.Transform(input, opts...)
}

// Make converts s into a slug.
func (r *Registry) Make(s string, opts ...Option) string {
	return r.MakeWith(s, resolveOptions(opts))
}

// Transform returns ErrInvalidArgument unless input is a string,
// otherwise it behaves like Make.
func (r *Registry) Transform(input any, opts ...Option) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", ErrInvalidArgument
	}
	return r.Make(s, opts...), nil
}

// MakeWith converts s into a slug using o as given.
func (r *Registry) MakeWith(s string, o Options) string {
	if s == "" {
		return ""
	}

	s = norm.NFC.String(s)
	if o.StripHTML {
		s = sanitizer.PlainText(s)
	}
	if usable(o.Remove) {
		s = o.Remove.Remove(s)
	}

	r.mu.RLock()
	toks := r.tokenize(s, o.Replacement, r.locales[o.Locale])
	r.mu.RUnlock()

	out := join(toks, o.Replacement)
	if o.Strict {
		out = strictFilter(out, o.Replacement)
	}
	if o.Trim {
		out = trimToken(out, o.Replacement)
	}
	if o.Lower {
		out = cases.Lower(language.Und).String(out)
	}
	return out
}

type tokenKind uint8

const (
	tokText tokenKind = iota
	// tokSep is a separator position that survives at the edges.
	tokSep
	// tokSoft only materializes between two pieces of text.
	tokSoft
)

type token struct {
	text string
	kind tokenKind
}

// tokenize walks s left to right, substituting through the charmap and
// turning whitespace and literal separators into separator tokens.
func (r *Registry) tokenize(s, rep string, overlay map[string]string) []token {
	toks := make([]token, 0, len(s))
	for i := 0; i < len(s); {
		if rep != "" && strings.HasPrefix(s[i:], rep) {
			toks = append(toks, token{kind: tokSep})
			i += len(rep)
			continue
		}

		c, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(c) {
			toks = append(toks, token{kind: tokSep})
			i += size
			continue
		}

		v, n, ok := r.match(s[i:], overlay)
		if !ok {
			toks = append(toks, token{text: s[i : i+size]})
			i += size
			continue
		}

		switch {
		case v == "":
		case v == rep:
			toks = append(toks, token{kind: tokSep})
		case n == size && isSymbol(c) && utf8.RuneCountInString(v) > 1:
			toks = append(toks, token{kind: tokSoft})
			toks = splitValue(toks, v, rep)
			toks = append(toks, token{kind: tokSoft})
		default:
			toks = splitValue(toks, v, rep)
		}
		i += n
	}
	return toks
}

// splitValue appends a mapped value, treating whitespace and replacement
// occurrences inside it as separators.
func splitValue(toks []token, v, rep string) []token {
	start := 0
	for i := 0; i < len(v); {
		if rep != "" && strings.HasPrefix(v[i:], rep) {
			if start < i {
				toks = append(toks, token{text: v[start:i]})
			}
			toks = append(toks, token{kind: tokSep})
			i += len(rep)
			start = i
			continue
		}
		c, size := utf8.DecodeRuneInString(v[i:])
		if unicode.IsSpace(c) {
			if start < i {
				toks = append(toks, token{text: v[start:i]})
			}
			toks = append(toks, token{kind: tokSep})
			start = i + size
		}
		i += size
	}
	if start < len(v) {
		toks = append(toks, token{text: v[start:]})
	}
	return toks
}

// join renders tokens. Separator runs between text collapse into a single
// replacement; runs at either edge keep one replacement per hard separator.
func join(toks []token, rep string) string {
	first, last := -1, -1
	for i, t := range toks {
		if t.kind == tokText {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	var b strings.Builder
	edge := func(ts []token) {
		for _, t := range ts {
			if t.kind == tokSep {
				b.WriteString(rep)
			}
		}
	}

	if first < 0 {
		edge(toks)
		return b.String()
	}

	edge(toks[:first])
	pending := false
	for _, t := range toks[first : last+1] {
		if t.kind != tokText {
			pending = true
			continue
		}
		if pending {
			b.WriteString(rep)
			pending = false
		}
		b.WriteString(t.text)
	}
	edge(toks[last+1:])
	return b.String()
}

// strictFilter keeps ASCII letters, digits and whole replacement tokens.
func strictFilter(s, rep string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if rep != "" && strings.HasPrefix(s[i:], rep) {
			b.WriteString(rep)
			i += len(rep)
			continue
		}
		c := s[i]
		if isASCIIAlnum(c) {
			b.WriteByte(c)
		}
		i++
	}
	return b.String()
}

func trimToken(s, rep string) string {
	if rep == "" {
		return s
	}
	for strings.HasPrefix(s, rep) {
		s = s[len(rep):]
	}
	for strings.HasSuffix(s, rep) {
		s = s[:len(s)-len(rep)]
	}
	return s
}

func isASCIIAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// isSymbol reports whether c is neither a letter nor a digit,
// so its mapped word stands apart from neighbouring text.
func isSymbol(c rune) bool {
	return !unicode.IsLetter(c) && !unicode.IsNumber(c)
}
