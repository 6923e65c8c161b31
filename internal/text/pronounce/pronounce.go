// Package pronounce applies a whole-word pronunciation dictionary to text,
// leaving bracket tokens like [laugh] or [pause:0.3s] untouched.
//
// Matching is case-sensitive. "Whole word" means the match is not adjacent to
// a letter, digit or apostrophe, so "Zilog," still matches the key "Zilog"
// while "Zilogic" does not. Keys apply longest-first, then lexicographically,
// each as its own sweep over the unprotected text.
package pronounce

import (
	"sort"
	"strings"

	"voxprep/internal/text/spans"
)

// Apply replaces whole-word occurrences of mapping keys in text.
func Apply(text string, mapping map[string]string) string {
	if text == "" || len(mapping) == 0 {
		return text
	}

	keys := orderedKeys(mapping)

	var out strings.Builder
	for _, chunk := range spans.SplitProtected(text) {
		if chunk.Protected {
			out.WriteString(chunk.Text)
			continue
		}
		segment := chunk.Text
		for _, key := range keys {
			segment = replaceWholeWord(segment, key, mapping[key])
		}
		out.WriteString(segment)
	}
	return out.String()
}

// orderedKeys sorts by descending length then ascending lexicographic, the
// deterministic tie-break that keeps overlapping keys from partially
// replacing each other.
func orderedKeys(mapping map[string]string) []string {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

func replaceWholeWord(segment, key, value string) string {
	if key == "" {
		return segment
	}

	var out strings.Builder
	idx := 0
	for idx <= len(segment)-len(key) {
		pos := strings.Index(segment[idx:], key)
		if pos < 0 {
			break
		}
		pos += idx

		if isWordChar(byteBefore(segment, pos)) || isWordChar(byteAfter(segment, pos+len(key))) {
			out.WriteString(segment[idx : pos+1])
			idx = pos + 1
			continue
		}

		out.WriteString(segment[idx:pos])
		out.WriteString(value)
		idx = pos + len(key)
	}
	out.WriteString(segment[idx:])
	return out.String()
}

func byteBefore(s string, pos int) byte {
	if pos == 0 {
		return 0
	}
	return s[pos-1]
}

func byteAfter(s string, pos int) byte {
	if pos >= len(s) {
		return 0
	}
	return s[pos]
}

// isWordChar matches the boundary class [A-Za-z0-9'].
func isWordChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '\'':
		return true
	}
	return false
}
