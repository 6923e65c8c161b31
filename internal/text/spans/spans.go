// Package spans locates bracket-delimited tokens like [laugh], [pause:0.5s]
// or [2s] so the other text transforms can leave them untouched.
package spans

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	manualPauseCanonicalPattern = regexp.MustCompile(`(?i)\[pause:(\d+(?:\.\d+)?)s\]`)
	manualPauseShorthandPattern = regexp.MustCompile(`(?i)\[(\d+(?:\.\d+)?)s\]`)
)

// DefaultTolerance is the window (in bytes) around a manual pause tag within
// which automatic pause insertion is suppressed.
const DefaultTolerance = 3

// Span is a half-open [Start, End) byte range over a text.
type Span struct {
	Start int
	End   int
}

// Contains reports whether pos falls inside the span.
func (s Span) Contains(pos int) bool {
	return s.Start <= pos && pos < s.End
}

// Find returns the non-nested bracket token spans in text, sorted by start.
// Nesting depth is tracked so "[a [b] c]" yields one span; an unterminated
// open bracket yields no span and the text is treated as ordinary prose.
func Find(text string) []Span {
	var found []Span
	depth := 0
	start := 0

	for idx, ch := range text {
		switch ch {
		case '[':
			if depth == 0 {
				start = idx
			}
			depth++
		case ']':
			if depth > 0 {
				depth--
				if depth == 0 {
					found = append(found, Span{Start: start, End: idx + 1})
				}
			}
		}
	}
	return found
}

// FindManualPauses returns the spans of existing pause directives, both the
// canonical [pause:0.5s] form and the [0.5s] shorthand, sorted by start.
func FindManualPauses(text string) []Span {
	var found []Span
	for _, m := range manualPauseCanonicalPattern.FindAllStringIndex(text, -1) {
		found = append(found, Span{Start: m[0], End: m[1]})
	}
	for _, m := range manualPauseShorthandPattern.FindAllStringIndex(text, -1) {
		found = append(found, Span{Start: m[0], End: m[1]})
	}
	sortSpans(found)
	return found
}

func sortSpans(ss []Span) {
	// Insertion sort; the two pattern passes each emit sorted runs and
	// real inputs carry a handful of tags at most.
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && (ss[j].Start < ss[j-1].Start ||
			(ss[j].Start == ss[j-1].Start && ss[j].End < ss[j-1].End)); j-- {
			ss[j], ss[j-1] = ss[j-1], ss[j]
		}
	}
}

// Inside reports whether pos lies inside any span.
func Inside(pos int, ss []Span) bool {
	for _, s := range ss {
		if s.Contains(pos) {
			return true
		}
	}
	return false
}

// Within reports whether pos lies strictly inside any span, i.e. not on its
// opening byte and not at its end. Used to reject insertion points that would
// split a token.
func Within(pos int, ss []Span) bool {
	for _, s := range ss {
		if s.Start < pos && pos < s.End {
			return true
		}
	}
	return false
}

// NearAny reports whether pos falls within window bytes of any span.
func NearAny(pos int, ss []Span, window int) bool {
	for _, s := range ss {
		if s.Start <= pos+window && s.End >= pos-window {
			return true
		}
	}
	return false
}

// NextWord returns the next run of alphabetic characters at or after from,
// lowercased, skipping whole bracket tokens on the way. Returns "" when no
// word remains.
func NextWord(text string, from int, bracketSpans []Span) string {
	idx := from
	for idx < len(text) {
		if skipped := skipSpanAt(idx, bracketSpans); skipped > idx {
			idx = skipped
			continue
		}
		ch, size := utf8.DecodeRuneInString(text[idx:])
		if unicode.IsLetter(ch) {
			end := idx
			for end < len(text) {
				r, n := utf8.DecodeRuneInString(text[end:])
				if !unicode.IsLetter(r) {
					break
				}
				end += n
			}
			return strings.ToLower(text[idx:end])
		}
		idx += size
	}
	return ""
}

func skipSpanAt(pos int, ss []Span) int {
	for _, s := range ss {
		if s.Contains(pos) {
			return s.End
		}
	}
	return pos
}

// SplitProtected cuts text into alternating chunks, flagging the ones covered
// by a bracket span. Concatenating the chunks in order reproduces text.
func SplitProtected(text string) []Chunk {
	ss := Find(text)
	if len(ss) == 0 {
		return []Chunk{{Text: text}}
	}

	var parts []Chunk
	last := 0
	for _, s := range ss {
		if last < s.Start {
			parts = append(parts, Chunk{Text: text[last:s.Start]})
		}
		parts = append(parts, Chunk{Protected: true, Text: text[s.Start:s.End]})
		last = s.End
	}
	if last < len(text) {
		parts = append(parts, Chunk{Text: text[last:]})
	}
	return parts
}

// Chunk is a piece of text that either is a bracket token (Protected) or
// ordinary prose between tokens.
type Chunk struct {
	Protected bool
	Text      string
}
