package slug

import (
	"reflect"
	"regexp"
	"strings"
)

// Remover deletes characters or substrings from the input before any
// substitution happens.
type Remover interface {
	Remove(s string) string
}

// RemoverFunc deletes every rune for which the function reports true.
type RemoverFunc func(r rune) bool

// Remove implements Remover.
func (f RemoverFunc) Remove(s string) string {
	return strings.Map(func(r rune) rune {
		if f(r) {
			return -1
		}
		return r
	}, s)
}

type patternRemover struct {
	re *regexp.Regexp
}

func (p patternRemover) Remove(s string) string {
	return p.re.ReplaceAllString(s, "")
}

// Pattern returns a Remover deleting every match of re.
// A nil expression yields a nil Remover, which is treated as absent.
func Pattern(re *regexp.Regexp) Remover {
	if re == nil {
		return nil
	}
	return patternRemover{re: re}
}

// Chars returns a Remover deleting every rune contained in set.
func Chars(set string) Remover {
	if set == "" {
		return nil
	}
	return RemoverFunc(func(r rune) bool {
		return strings.ContainsRune(set, r)
	})
}

// usable reports whether rm can actually be called.
// Typed nils (a nil RemoverFunc or nil pointer) count as absent.
func usable(rm Remover) bool {
	if rm == nil {
		return false
	}
	v := reflect.ValueOf(rm)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return !v.IsNil()
	}
	return true
}
