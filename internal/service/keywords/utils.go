package keywords

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// GetAliasKeys returns the alias keys longest first, ties alphabetically.
func GetAliasKeys(aliases map[string][]string) []string {
	keys := make([]string, 0, len(aliases))
	for alias := range aliases {
		keys = append(keys, alias)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

func setKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func copyLabels(src map[string][]string) map[string][]string {
	dst := make(map[string][]string, len(src))
	for key, labels := range src {
		dst[key] = append([]string(nil), labels...)
	}
	return dst
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError && size == 0 {
		return s
	}
	return string(unicode.ToTitle(first)) + strings.ToLower(s[size:])
}
