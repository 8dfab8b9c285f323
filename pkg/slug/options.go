package slug

import "regexp"

// DefaultReplacement is the separator used when none is configured.
const DefaultReplacement = "-"

// Options is the resolved per-call configuration.
// Start from DefaultOptions when building one by hand: the zero value
// disables trimming and uses an empty replacement.
type Options struct {
	// Remove deletes matching characters before substitution. Nil means none.
	Remove Remover

	// Replacement is the separator token. Default "-".
	Replacement string

	// Locale selects a locale overlay. Unknown codes behave like no locale.
	Locale string

	// Lower lowercases the result as the final step.
	Lower bool

	// Strict drops everything except ASCII letters, digits and Replacement.
	Strict bool

	// Trim strips leading and trailing Replacement tokens. Default true.
	Trim bool

	// StripHTML removes markup and decodes entities before anything else.
	StripHTML bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Replacement: DefaultReplacement,
		Trim:        true,
	}
}

// Option configures a single Make call.
type Option func(*Options)

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Replacement sets the separator token.
// Make(s, Replacement("_")) is the short form for configuring only the separator.
func Replacement(r string) Option {
	return func(o *Options) {
		o.Replacement = r
	}
}

// Locale selects the locale overlay consulted before the default charmap.
func Locale(code string) Option {
	return func(o *Options) {
		o.Locale = code
	}
}

// Lower controls final lowercasing.
// Default: false.
func Lower(enabled bool) Option {
	return func(o *Options) {
		o.Lower = enabled
	}
}

// Strict controls removal of everything outside [A-Za-z0-9] and the replacement.
// Default: false.
func Strict(enabled bool) Option {
	return func(o *Options) {
		o.Strict = enabled
	}
}

// Trim controls stripping of leading and trailing replacement tokens.
// Default: true.
func Trim(enabled bool) Option {
	return func(o *Options) {
		o.Trim = enabled
	}
}

// Remove sets the pre-removal matcher.
func Remove(rm Remover) Option {
	return func(o *Options) {
		o.Remove = rm
	}
}

// RemovePattern deletes every match of re before substitution.
func RemovePattern(re *regexp.Regexp) Option {
	return Remove(Pattern(re))
}

// RemoveChars deletes every rune in set before substitution.
func RemoveChars(set string) Option {
	return Remove(Chars(set))
}

// StripHTML removes HTML markup and decodes entities before processing.
// Default: false.
func StripHTML(enabled bool) Option {
	return func(o *Options) {
		o.StripHTML = enabled
	}
}

// WithOptions replaces the whole configuration with a record.
// Options applied after it still take effect.
func WithOptions(rec Options) Option {
	return func(o *Options) {
		*o = rec
	}
}
