package slug_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugify/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{
			name:     "simple text",
			input:    "Hello World",
			expected: "Hello-World",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "empty string with options",
			input:    "",
			opts:     []slug.Option{slug.Trim(false), slug.Strict(true), slug.Replacement("_")},
			expected: "",
		},
		{
			name:     "multiple spaces",
			input:    "Hello   World",
			expected: "Hello-World",
		},
		{
			name:     "tabs and newlines",
			input:    "Line1\nLine2\tTabbed",
			expected: "Line1-Line2-Tabbed",
		},
		{
			name:     "leading and trailing spaces",
			input:    "  Hello World  ",
			expected: "Hello-World",
		},
		{
			name:     "edge spaces kept without trim",
			input:    "  Hello World  ",
			opts:     []slug.Option{slug.Trim(false)},
			expected: "--Hello-World--",
		},
		{
			name:     "only spaces",
			input:    "     ",
			expected: "",
		},
		{
			name:     "only spaces without trim",
			input:    "     ",
			opts:     []slug.Option{slug.Trim(false)},
			expected: "-----",
		},
		{
			name:     "symbols become words",
			input:    "$%&",
			expected: "dollar-percent-and",
		},
		{
			name:     "repeated symbol",
			input:    "$$$",
			expected: "dollar-dollar-dollar",
		},
		{
			name:     "symbol attached to number",
			input:    "10$",
			expected: "10-dollar",
		},
		{
			name:     "symbol between words",
			input:    "I ♥ Go",
			expected: "I-love-Go",
		},
		{
			name:     "german locale",
			input:    "Ä Ö Ü ß",
			opts:     []slug.Option{slug.Locale("de")},
			expected: "AE-OE-UE-ss",
		},
		{
			name:     "german letters without locale",
			input:    "Ä Ö Ü ß",
			expected: "A-O-U-ss",
		},
		{
			name:     "unknown locale falls through",
			input:    "Ä Ö Ü ß",
			opts:     []slug.Option{slug.Locale("xx")},
			expected: "A-O-U-ss",
		},
		{
			name:     "locale symbol words",
			input:    "I ♥ Go",
			opts:     []slug.Option{slug.Locale("de")},
			expected: "I-liebe-Go",
		},
		{
			name:     "locale value with spaces",
			input:    "100%",
			opts:     []slug.Option{slug.Locale("es")},
			expected: "100-por-ciento",
		},
		{
			name:     "ukrainian overlay",
			input:    "Київ",
			opts:     []slug.Option{slug.Locale("uk")},
			expected: "Kyyiv",
		},
		{
			name:     "diacritics",
			input:    "Café résumé",
			expected: "Cafe-resume",
		},
		{
			name:     "decomposed input is composed first",
			input:    "Cafe\u0301",
			expected: "Cafe",
		},
		{
			name:     "cyrillic",
			input:    "Привет мир",
			expected: "Privet-mir",
		},
		{
			name:     "hard sign is deleted",
			input:    "Объект",
			expected: "Obekt",
		},
		{
			name:     "custom replacement",
			input:    "Hello World!",
			opts:     []slug.Option{slug.Replacement("_")},
			expected: "Hello_World!",
		},
		{
			name:     "multi-character replacement",
			input:    "Multi Sep Test",
			opts:     []slug.Option{slug.Replacement("--")},
			expected: "Multi--Sep--Test",
		},
		{
			name:     "empty replacement",
			input:    "No Separator",
			opts:     []slug.Option{slug.Replacement("")},
			expected: "NoSeparator",
		},
		{
			name:     "existing separator is not duplicated",
			input:    "Hello-World",
			opts:     []slug.Option{slug.Replacement("-")},
			expected: "Hello-World",
		},
		{
			name:     "separator next to whitespace collapses",
			input:    "Hello - World",
			expected: "Hello-World",
		},
		{
			name:     "consecutive separators",
			input:    "Too---Many---Dashes",
			expected: "Too-Many-Dashes",
		},
		{
			name:     "literal separators are trimmed",
			input:    "__a__",
			opts:     []slug.Option{slug.Replacement("_")},
			expected: "a",
		},
		{
			name:     "lowercase",
			input:    "Hello World",
			opts:     []slug.Option{slug.Lower(true)},
			expected: "hello-world",
		},
		{
			name:     "lowercase after transliteration",
			input:    "ПРИВЕТ",
			opts:     []slug.Option{slug.Lower(true)},
			expected: "privet",
		},
		{
			name:     "strict",
			input:    "Hello@World!",
			opts:     []slug.Option{slug.Strict(true)},
			expected: "HelloWorld",
		},
		{
			name:     "unmapped characters pass through",
			input:    "Hello 😀 World",
			expected: "Hello-😀-World",
		},
		{
			name:     "strict runs after collapsing",
			input:    "Hello 😀 World",
			opts:     []slug.Option{slug.Strict(true)},
			expected: "Hello--World",
		},
		{
			name:     "remove pattern",
			input:    "Hello@World!",
			opts:     []slug.Option{slug.RemovePattern(regexp.MustCompile(`[!@]+`))},
			expected: "HelloWorld",
		},
		{
			name:     "remove chars",
			input:    "Remove (these) [chars]",
			opts:     []slug.Option{slug.RemoveChars("()[]")},
			expected: "Remove-these-chars",
		},
		{
			name:     "remove runs before substitution",
			input:    "Fish & Chips",
			opts:     []slug.Option{slug.RemoveChars("&")},
			expected: "Fish-Chips",
		},
		{
			name:     "nil pattern is ignored",
			input:    "a@b",
			opts:     []slug.Option{slug.RemovePattern(nil)},
			expected: "a@b",
		},
		{
			name:     "typed nil remover is ignored",
			input:    "a@b",
			opts:     []slug.Option{slug.Remove(slug.RemoverFunc(nil))},
			expected: "a@b",
		},
		{
			name:     "strip html",
			input:    "<h1>Fish &amp; Chips</h1>",
			opts:     []slug.Option{slug.StripHTML(true)},
			expected: "Fish-and-Chips",
		},
		{
			name:     "strip html decodes entities",
			input:    "HTML &copy; &#169;",
			opts:     []slug.Option{slug.StripHTML(true), slug.Lower(true)},
			expected: "html-copyright-copyright",
		},
		{
			name:     "nil option is ignored",
			input:    "Hello World",
			opts:     []slug.Option{nil},
			expected: "Hello-World",
		},
		{
			name:  "record options",
			input: "Hello World",
			opts: []slug.Option{slug.WithOptions(slug.Options{
				Replacement: "_",
				Lower:       true,
				Trim:        true,
			})},
			expected: "hello_world",
		},
		{
			name:  "options after record still apply",
			input: "Hello World",
			opts: []slug.Option{
				slug.WithOptions(slug.DefaultOptions()),
				slug.Replacement("."),
			},
			expected: "Hello.World",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}

func TestMakeWith(t *testing.T) {
	t.Parallel()

	t.Run("string shorthand equals record", func(t *testing.T) {
		t.Parallel()

		rec := slug.DefaultOptions()
		rec.Replacement = "_"

		assert.Equal(t, "Hello_World", slug.Make("Hello World", slug.Replacement("_")))
		assert.Equal(t, "Hello_World", slug.MakeWith("Hello World", rec))
	})

	t.Run("zero options disable trim", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "--Hello-World--", slug.MakeWith("  Hello World  ", slug.Options{Replacement: "-"}))
	})
}

func TestTransform(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-string input", func(t *testing.T) {
		t.Parallel()

		inputs := []any{
			nil,
			123,
			1.5,
			true,
			map[string]string{},
			[]string{"a"},
			[]byte("bytes"),
			struct{}{},
		}
		for _, in := range inputs {
			out, err := slug.Transform(in)
			require.ErrorIs(t, err, slug.ErrInvalidArgument)
			assert.Empty(t, out)
		}
	})

	t.Run("error message names expected type", func(t *testing.T) {
		t.Parallel()

		_, err := slug.Transform(nil, slug.Replacement("_"))
		require.Error(t, err)
		assert.Equal(t, "slug: string argument expected", err.Error())
	})

	t.Run("accepts strings", func(t *testing.T) {
		t.Parallel()

		out, err := slug.Transform("Hello World", slug.Replacement("_"))
		require.NoError(t, err)
		assert.Equal(t, "Hello_World", out)
	})
}

func TestMakeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello World",
		"  Hello World  ",
		"$%& and more",
		"Ä Ö Ü ß",
		"Café résumé",
		"Hello 😀 World",
		"     ",
		"Too---Many---Dashes",
	}
	optionSets := map[string][]slug.Option{
		"defaults":    nil,
		"no trim":     {slug.Trim(false)},
		"lower":       {slug.Lower(true)},
		"underscore":  {slug.Replacement("_")},
		"german":      {slug.Locale("de")},
		"double dash": {slug.Replacement("--"), slug.Trim(false)},
	}

	for name, opts := range optionSets {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, in := range inputs {
				once := slug.Make(in, opts...)
				assert.Equal(t, once, slug.Make(once, opts...), "input %q", in)
			}
		})
	}
}

func BenchmarkMake(b *testing.B) {
	inputs := []string{
		"Hello World",
		"Café & Restaurant",
		"Über Größe straße",
		"Привет мир",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, in := range inputs {
			_ = slug.Make(in, slug.Lower(true))
		}
	}
}

func BenchmarkMakeParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = slug.Make("Café & Restaurant", slug.Lower(true), slug.Strict(true))
		}
	})
}
