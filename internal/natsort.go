package internal

import (
	"sort"
	"strings"
	"unicode"
)

// NaturalLess compares two strings with embedded numbers compared by value,
// so "req2" sorts before "req10". Comparison of the non-numeric runs is
// case-insensitive.
func NaturalLess(a, b string) bool {
	for a != "" && b != "" {
		aTok, aNum, aRest := nextToken(a)
		bTok, bNum, bRest := nextToken(b)

		if aNum && bNum {
			av := trimLeadingZeros(aTok)
			bv := trimLeadingZeros(bTok)
			if av != bv {
				if len(av) != len(bv) {
					return len(av) < len(bv)
				}
				return av < bv
			}
		} else {
			al := strings.ToLower(aTok)
			bl := strings.ToLower(bTok)
			if al != bl {
				return al < bl
			}
		}

		a, b = aRest, bRest
	}
	return a == "" && b != ""
}

// SortNatural sorts a slice of names in natural order, in place.
func SortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return NaturalLess(names[i], names[j])
	})
}

// nextToken splits off the leading run of digits or non-digits.
func nextToken(s string) (tok string, numeric bool, rest string) {
	if s == "" {
		return "", false, ""
	}
	runes := []rune(s)
	numeric = unicode.IsDigit(runes[0])
	i := 1
	for i < len(runes) && unicode.IsDigit(runes[i]) == numeric {
		i++
	}
	return string(runes[:i]), numeric, string(runes[i:])
}

func trimLeadingZeros(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
