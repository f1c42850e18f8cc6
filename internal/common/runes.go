package common

import "unicode/utf8"

// UnknownStr is the fallback name for out-of-range enum values.
const UnknownStr = "unknown"

// SingleRune returns the only rune of s and true when s is exactly one
// valid UTF-8 encoded code point. Anything else returns false.
func SingleRune(s string) (rune, bool) {
	if s == "" || !utf8.ValidString(s) {
		return utf8.RuneError, false
	}

	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return utf8.RuneError, false
	}

	return r, true
}
