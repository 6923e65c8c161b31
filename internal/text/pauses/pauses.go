// Package pauses inserts synthetic [pause:Ns] tags at punctuation and
// paragraph boundaries, tuned by narration style. Existing bracket tokens are
// never touched and manual pause tags suppress nearby insertions.
package pauses

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"voxprep/internal/text/spans"
)

var (
	paragraphPattern  = regexp.MustCompile(`\n\s*\n`)
	spacedDashPattern = regexp.MustCompile(`\s-\s`)
	wordPattern       = regexp.MustCompile(`\b[\w']+\b`)
)

// discourseMarkers trigger a slightly longer pause when the following word
// opens with one of them.
var discourseMarkers = []string{
	"however",
	"therefore",
	"meanwhile",
	"in fact",
	"on the other hand",
	"so",
	"but",
}

// Options tunes automatic pause insertion.
type Options struct {
	Style       Style
	SpeedFactor float64
	Strength    float64
	TopupOnly   bool
	MinPause    float64
	MaxPause    float64
}

// DefaultOptions returns the standard tuning for a style: normal speed, full
// strength, conservative topup-only mode, pauses clamped to 0.04..1.8s.
func DefaultOptions(style Style) Options {
	return Options{
		Style:       style,
		SpeedFactor: 1.0,
		Strength:    1.0,
		TopupOnly:   true,
		MinPause:    0.04,
		MaxPause:    1.8,
	}
}

type insertion struct {
	pos int
	tag string
}

// Insert returns text with automatic pause tags spliced in. The input is
// scanned paragraph by paragraph; paragraph breaks themselves receive a
// larger pause than intra-paragraph boundaries.
func Insert(text string, opts Options) string {
	if text == "" {
		return text
	}
	if opts.SpeedFactor == 0 {
		opts.SpeedFactor = 1.0
	}
	if opts.Strength == 0 {
		opts.Strength = 1.0
	}
	if opts.MaxPause == 0 {
		opts.MaxPause = 1.8
	}

	base := opts.Style.base()
	bracketSpans := spans.Find(text)
	manualSpans := spans.FindManualPauses(text)

	var insertions []insertion
	paraStart := 0

	for _, m := range paragraphPattern.FindAllStringIndex(text, -1) {
		insertions = append(insertions,
			collectSegment(text, paraStart, m[0], bracketSpans, manualSpans, base, opts)...)

		boundaryPos := m[1]
		if !spans.Inside(boundaryPos, bracketSpans) &&
			!spans.NearAny(boundaryPos, manualSpans, spans.DefaultTolerance) {
			secs := computeSeconds(BoundaryParagraph, 0, -1,
				spans.NextWord(text, boundaryPos, bracketSpans), base, opts)
			if secs > 0 {
				insertions = append(insertions, insertion{boundaryPos, formatPause(secs)})
			}
		}
		paraStart = m[1]
	}

	insertions = append(insertions,
		collectSegment(text, paraStart, len(text), bracketSpans, manualSpans, base, opts)...)

	if len(insertions) == 0 {
		return text
	}

	sort.SliceStable(insertions, func(i, j int) bool {
		return insertions[i].pos < insertions[j].pos
	})

	var out strings.Builder
	last := 0
	for _, ins := range insertions {
		if ins.pos < last {
			continue
		}
		out.WriteString(text[last:ins.pos])
		out.WriteString(ins.tag)
		last = ins.pos
	}
	out.WriteString(text[last:])
	return out.String()
}

// collectSegment scans one paragraph segment [start, end) for punctuation
// boundaries.
func collectSegment(text string, start, end int, bracketSpans, manualSpans []spans.Span, base baseTable, opts Options) []insertion {
	var insertions []insertion
	sentenceStart := start
	idx := start

	dashAt := map[int]bool{}
	for _, m := range spacedDashPattern.FindAllStringIndex(text[start:end], -1) {
		dashAt[start+m[0]+1] = true
	}

	for idx < end {
		ch, size := utf8.DecodeRuneInString(text[idx:end])
		if spans.Inside(idx, bracketSpans) {
			idx += size
			continue
		}

		boundary := boundaryNone
		wordCount := -1

		switch {
		case ch == '.' || ch == '!' || ch == '?':
			if ch == '.' && idx+1 < len(text) && text[idx+1] == '.' {
				// Inside an ellipsis run; only its final dot ends a sentence.
				idx += size
				continue
			}
			if ch == '.' && idx > start && idx+1 < end &&
				isASCIIDigit(text[idx-1]) && isASCIIDigit(text[idx+1]) {
				idx += size
				continue
			}
			if followsOpenQuote(text, idx) {
				idx += size
				continue
			}
			boundary = BoundarySentenceEnd
			wordCount = countWords(text[sentenceStart : idx+size])
			sentenceStart = idx + size
		case ch == ',':
			boundary = BoundaryComma
		case ch == ';':
			boundary = BoundarySemicolon
		case ch == ':':
			boundary = BoundaryColon
		case ch == '—' || ch == '–' || dashAt[idx]:
			boundary = BoundaryEmdash
		case ch == '\n' || ch == '\r':
			sentenceStart = idx + size
		}

		if boundary != boundaryNone {
			insertionPos := idx + size
			for insertionPos < end && (text[insertionPos] == '"' || text[insertionPos] == '\'') {
				insertionPos++
			}

			if spans.Within(idx, bracketSpans) || spans.Within(insertionPos, bracketSpans) {
				idx += size
				continue
			}
			if spans.NearAny(insertionPos, manualSpans, spans.DefaultTolerance) {
				idx += size
				continue
			}

			nextWord := spans.NextWord(text, insertionPos, bracketSpans)
			secs := computeSeconds(boundary, ch, wordCount, nextWord, base, opts)
			if secs > 0 && !hasInsertionAt(insertions, insertionPos) {
				insertions = append(insertions, insertion{insertionPos, formatPause(secs)})
			}
		}

		idx += size
	}

	return insertions
}

// computeSeconds applies the duration formula: style base scaled by speed and
// strength, plus sentence-length, question and discourse-marker adjustments,
// clamped into [MinPause, MaxPause]. Topup-only mode keeps non-paragraph
// pauses conservative by scaling the final value.
func computeSeconds(boundary Boundary, punct rune, wordCount int, nextWord string, base baseTable, opts Options) float64 {
	baseValue, ok := base[boundary]
	if !ok {
		return 0
	}

	pause := baseValue / math.Max(opts.SpeedFactor, 0.2)
	pause *= opts.Strength

	if boundary == BoundarySentenceEnd && wordCount >= 0 {
		pause += clamp(float64(wordCount-18)/40, 0, 0.35) * 0.25
		if punct == '?' {
			pause += 0.07
		}
	}

	if nextWord != "" && startsWithMarker(nextWord) {
		switch boundary {
		case BoundarySentenceEnd:
			pause += opts.Style.sentenceEndMarkerBump()
		case BoundaryComma, BoundarySemicolon, BoundaryColon, BoundaryEmdash:
			pause += 0.04
		}
	}

	pause = clamp(pause, opts.MinPause, opts.MaxPause)

	if opts.TopupOnly && boundary != BoundaryParagraph {
		pause *= 0.65
	}
	return pause
}

func startsWithMarker(word string) bool {
	for _, marker := range discourseMarkers {
		if strings.HasPrefix(word, marker) {
			return true
		}
	}
	return false
}

// followsOpenQuote reports whether the previous non-space character is an
// opening quotation mark, i.e. a quote at the start of the text or preceded
// by whitespace. Punctuation right after such a quote is not a sentence end.
func followsOpenQuote(text string, idx int) bool {
	prev := idx
	var quote rune
	for prev > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:prev])
		if !unicode.IsSpace(r) {
			quote = r
			break
		}
		prev -= size
	}
	if prev <= 0 || (quote != '"' && quote != '\'') {
		return false
	}

	quoteStart := prev - utf8.RuneLen(quote)
	if quoteStart == 0 {
		return true
	}
	before, _ := utf8.DecodeLastRuneInString(text[:quoteStart])
	return unicode.IsSpace(before)
}

// countWords strips bracket tokens and counts word-like runs.
func countWords(sentence string) int {
	var cleaned strings.Builder
	for _, chunk := range spans.SplitProtected(sentence) {
		if chunk.Protected {
			cleaned.WriteByte(' ')
		} else {
			cleaned.WriteString(chunk.Text)
		}
	}
	return len(wordPattern.FindAllString(cleaned.String(), -1))
}

func hasInsertionAt(insertions []insertion, pos int) bool {
	for _, ins := range insertions {
		if ins.pos == pos {
			return true
		}
	}
	return false
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// formatPause renders a tag like [pause:0.65s]: up to three decimals,
// trailing zeros trimmed, always at least one digit after the point.
func formatPause(seconds float64) string {
	formatted := strconv.FormatFloat(seconds, 'f', 3, 64)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}
	return "[pause:" + formatted + "s]"
}
