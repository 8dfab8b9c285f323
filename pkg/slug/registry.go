package slug

import (
	"maps"
	"slices"
	"sync"
	"unicode/utf8"
)

// Registry holds the substitution charmap and its locale overlays.
// Lookups take a read lock for the duration of a whole Make call, so a
// concurrent Extend is observed either entirely or not at all by that call.
type Registry struct {
	mu      sync.RWMutex
	chars   map[string]string
	locales map[string]map[string]string
	// Longest key in runes across all tables; bounds the match window.
	maxKey int
}

// Default is the process-wide registry used by the package-level functions.
var Default = NewRegistry()

// NewRegistry creates a registry seeded with the built-in charmap and locales.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.Extend(defaultCharmap)
	for code, table := range defaultLocales {
		r.ExtendLocale(code, table)
	}
	return r
}

// NewEmptyRegistry creates a registry without any mappings.
// Every character passes through unchanged until Extend is called.
func NewEmptyRegistry() *Registry {
	return &Registry{
		chars:   make(map[string]string),
		locales: make(map[string]map[string]string),
		maxKey:  1,
	}
}

// Extend merges mapping into the default charmap, last write wins.
// An empty value maps the key to nothing, deleting it from the output.
func (r *Registry) Extend(mapping map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.merge(r.chars, mapping)
}

// Unset overrides keys in the default charmap with "no mapping", so they
// pass through unchanged again. Locale overlays are not touched.
func (r *Registry) Unset(keys ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.chars, k)
	}
}

// ExtendLocale merges mapping into the overlay for locale, creating it when absent.
func (r *Registry) ExtendLocale(locale string, mapping map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, ok := r.locales[locale]
	if !ok {
		table = make(map[string]string, len(mapping))
		r.locales[locale] = table
	}
	r.merge(table, mapping)
}

func (r *Registry) merge(dst, src map[string]string) {
	for k, v := range src {
		if k == "" {
			continue
		}
		dst[k] = v
		if n := utf8.RuneCountInString(k); n > r.maxKey {
			r.maxKey = n
		}
	}
}

// Lookup resolves key: locale overlay first, then the default charmap.
// The boolean is false when the key passes through unchanged; a true result
// with an empty value means the key is deleted.
func (r *Registry) Lookup(key, locale string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(key, r.locales[locale])
}

func (r *Registry) lookup(key string, overlay map[string]string) (string, bool) {
	if v, ok := overlay[key]; ok {
		return v, true
	}
	v, ok := r.chars[key]
	return v, ok
}

// match finds the longest registered key at the start of s.
// It returns the mapped value and the byte length of the key.
func (r *Registry) match(s string, overlay map[string]string) (string, int, bool) {
	if r.maxKey > 1 {
		// Byte offsets of rune boundaries up to maxKey runes.
		ends := make([]int, 0, r.maxKey)
		for i := range s {
			if i > 0 {
				ends = append(ends, i)
			}
			if len(ends) == r.maxKey {
				break
			}
		}
		if len(ends) < r.maxKey {
			ends = append(ends, len(s))
		}
		for j := len(ends) - 1; j > 0; j-- {
			if v, ok := r.lookup(s[:ends[j]], overlay); ok {
				return v, ends[j], true
			}
		}
	}

	_, size := utf8.DecodeRuneInString(s)
	if v, ok := r.lookup(s[:size], overlay); ok {
		return v, size, true
	}
	return "", size, false
}

// Locales returns the registered locale codes in sorted order.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.locales))
}

// LocaleTable returns a copy of the overlay for locale, or nil when unknown.
func (r *Registry) LocaleTable(locale string) map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table, ok := r.locales[locale]
	if !ok {
		return nil
	}
	return maps.Clone(table)
}

// Charmap returns a copy of the default charmap.
func (r *Registry) Charmap() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.chars)
}

// Extend merges mapping into the Default registry.
func Extend(mapping map[string]string) {
	Default.Extend(mapping)
}

// ExtendLocale merges mapping into a locale overlay of the Default registry.
func ExtendLocale(locale string, mapping map[string]string) {
	Default.ExtendLocale(locale, mapping)
}

// Unset removes mappings from the Default registry.
func Unset(keys ...string) {
	Default.Unset(keys...)
}

// Lookup resolves key against the Default registry.
func Lookup(key, locale string) (string, bool) {
	return Default.Lookup(key, locale)
}

// Locales lists the locale codes of the Default registry.
func Locales() []string {
	return Default.Locales()
}
