// Package text holds the text transforms used to format greeted names.
package text

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// casers hands out full-mapping uppercase casers. A cases.Caser keeps
// internal state between calls and must not be shared by goroutines, so
// each Capitalize call borrows its own.
var casers = sync.Pool{
	New: func() any {
		c := cases.Upper(language.Und)
		return &c
	},
}

// Capitalize returns s with the first character of every word replaced by
// its uppercase mapping. A word is a maximal run of non-whitespace
// characters; whitespace follows the Unicode White_Space property and is
// copied verbatim, including leading, trailing and repeated runs.
//
// The full Unicode mapping is applied, so a single character may expand
// into several ("ß" becomes "SS"). The remainder of each word is left as
// is. Bytes that are not valid UTF-8 are copied through unchanged.
//
// When no character needs to change, s itself is returned.
//
//	Capitalize("hello world!")     = "Hello World!"
//	Capitalize("what\ta\tworld\n") = "What\tA\tWorld\n"
func Capitalize(s string) string {
	var (
		b      strings.Builder
		copied int // s[:copied] is already in b
		inWord bool
		caser  *cases.Caser
	)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		start := i
		i += size

		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if inWord {
			continue
		}
		inWord = true

		var mapped string
		switch {
		case r == utf8.RuneError && size == 1:
			continue
		case r < utf8.RuneSelf:
			if r < 'a' || r > 'z' {
				continue
			}
			mapped = string(r - 'a' + 'A')
		default:
			if caser == nil {
				caser = casers.Get().(*cases.Caser)
			}
			mapped = caser.String(s[start:i])
			if mapped == s[start:i] {
				continue
			}
		}

		if copied == 0 {
			b.Grow(len(s) + utf8.UTFMax)
		}
		b.WriteString(s[copied:start])
		b.WriteString(mapped)
		copied = i
	}

	if caser != nil {
		casers.Put(caser)
	}

	if copied == 0 {
		return s
	}
	b.WriteString(s[copied:])
	return b.String()
}
