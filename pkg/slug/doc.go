// Package slug converts arbitrary text into slugs restricted to ASCII letters,
// digits and a single separator token.
//
// Conversion is driven by a Registry: a transliteration charmap plus named
// locale overlays. The package-level functions use the shared Default registry.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/slugify/pkg/slug"
//
//	s := slug.Make("Hello   World")
//	// Output: "Hello-World"
//
//	s = slug.Make("Ä Ö Ü ß", slug.Locale("de"))
//	// Output: "AE-OE-UE-ss"
//
//	s = slug.Make("Hello World", slug.Replacement("_"))
//	// Output: "Hello_World"
//
// # Pipeline
//
// Every call runs the same steps in a fixed order:
//
//  1. Optional HTML stripping (StripHTML) and pre-removal (Remove).
//  2. Left to right substitution through the locale overlay, then the default
//     charmap. Unmapped characters pass through unchanged. Whitespace and
//     literal replacement tokens become separators.
//  3. Separator runs between words collapse into one replacement token.
//  4. Strict filtering keeps only [A-Za-z0-9] and the replacement token.
//  5. Trimming removes leading and trailing replacement tokens.
//  6. Lowercasing.
//
// Symbols that map to words are kept apart from their neighbours:
//
//	slug.Make("$%&")
//	// Output: "dollar-percent-and"
//
// # Configuration Options
//
// Replacement sets the separator token (default "-"):
//
//	slug.Make("Hello World", slug.Replacement("_"))
//	// Output: "Hello_World"
//
// Lower lowercases the final result:
//
//	slug.Make("Hello World", slug.Lower(true))
//	// Output: "hello-world"
//
// Strict removes everything outside ASCII letters, digits and the separator:
//
//	slug.Make("Hello@World!", slug.Strict(true))
//	// Output: "HelloWorld"
//
// Trim(false) keeps edge separators, one per whitespace character:
//
//	slug.Make("  Hello World  ", slug.Trim(false))
//	// Output: "--Hello-World--"
//
// RemovePattern, RemoveChars and Remove delete matches before substitution:
//
//	slug.Make("Hello@World!", slug.RemovePattern(regexp.MustCompile(`[!@]+`)))
//	// Output: "HelloWorld"
//
// An Options record can be passed whole with MakeWith or WithOptions.
// Start from DefaultOptions, the zero value disables trimming.
//
// # Extending the Charmap
//
// Extend merges mappings into the registry and is visible to every later call:
//
//	slug.Extend(map[string]string{"$": "bucks"})
//	slug.Make("$")
//	// Output: "bucks"
//
// A single non-letter, non-digit character mapped to a multi-rune value is
// kept apart from neighbouring text, extensions included: after
// Extend(map[string]string{"©": "copyright"}), "a©" becomes "a-copyright".
// Letters are spliced in place, so "ß" -> "ss" stays inside its word.
//
// An empty value deletes the character from the output. Unset restores
// passthrough for a key. Extensions on Default are process-wide; use
// NewRegistry for an isolated copy.
//
// Charmap files in YAML, TOML or JSON can be loaded with LoadCharmapFile or
// LoadCharmapFS and merged with Registry.Apply.
//
// # Dynamic Input
//
// Transform accepts any value and returns ErrInvalidArgument unless it is a string:
//
//	_, err := slug.Transform(123)
//	// errors.Is(err, slug.ErrInvalidArgument) == true
//
// # Concurrency
//
// Registry methods are safe for concurrent use. A Make call holds a read lock
// while substituting, so it sees each Extend either completely or not at all.
package slug
