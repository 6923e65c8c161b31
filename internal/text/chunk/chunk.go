// Package chunk splits long scripts into synthesis-sized pieces. Chunks are
// sized by an estimated words-per-second speaking rate, keep paragraph and
// sentence boundaries intact, never cut through a bracket token, and avoid
// starting or ending a chunk on a weak connective word.
package chunk

import (
	"regexp"
	"strings"

	"voxprep/internal/text/spans"
	"voxprep/internal/text/voices"
)

var wordPattern = regexp.MustCompile(`\b[\w']+\b`)

// WeakStartWords are connectives a chunk should not open with; the sentence
// stays attached to the previous chunk instead.
var WeakStartWords = map[string]bool{
	"and": true, "but": true, "or": true, "so": true,
	"then": true, "because": true, "also": true, "yet": true,
}

// weakEndWords are words a chunk should not end on when the next sentence
// still fits.
var weakEndWords = map[string]bool{
	"to": true, "of": true, "a": true, "an": true, "the": true,
	"and": true, "or": true, "but": true, "with": true, "for": true,
	"in": true, "on": true, "at": true, "by": true,
}

// Options sizes the chunks. Seconds are converted to word budgets via
// BaseWordsPerSecond.
type Options struct {
	TargetSeconds      float64
	MinSeconds         float64
	MaxSeconds         float64
	BaseWordsPerSecond float64
	OverlapSentences   int
}

// DefaultOptions matches the synthesis defaults: 10..18 second chunks
// aiming at 15, assuming 2.7 words per second.
func DefaultOptions() Options {
	return Options{
		TargetSeconds:      15.0,
		MinSeconds:         10.0,
		MaxSeconds:         18.0,
		BaseWordsPerSecond: 2.7,
	}
}

// Split cuts text into chunks. Paragraphs never share a chunk.
func Split(text string, opts Options) []string {
	if opts.TargetSeconds <= 0 {
		opts.TargetSeconds = 15.0
	}
	if opts.MinSeconds <= 0 {
		opts.MinSeconds = 10.0
	}
	if opts.MaxSeconds <= 0 {
		opts.MaxSeconds = 18.0
	}
	if opts.BaseWordsPerSecond <= 0 {
		opts.BaseWordsPerSecond = 2.7
	}

	target := int(opts.TargetSeconds * opts.BaseWordsPerSecond)
	min := int(opts.MinSeconds * opts.BaseWordsPerSecond)
	max := int(opts.MaxSeconds * opts.BaseWordsPerSecond)
	if target < 1 {
		target = 1
	}
	if max < target {
		max = target
	}

	var grouped [][]string
	for _, paragraph := range voices.SplitParagraphs(text) {
		pieces := sentencePieces(paragraph, max)
		grouped = append(grouped, rebalanceTail(groupPieces(pieces, target, max), min, max)...)
	}

	var chunks []string
	for i, group := range grouped {
		render := group
		if opts.OverlapSentences > 0 && i > 0 {
			prev := grouped[i-1]
			carry := opts.OverlapSentences
			if carry > len(prev) {
				carry = len(prev)
			}
			render = append(append([]string{}, prev[len(prev)-carry:]...), group...)
		}
		chunks = append(chunks, strings.Join(render, " "))
	}
	return chunks
}

// groupPieces accumulates sentence pieces greedily up to the target word
// budget, stretching toward the max budget to avoid weak chunk edges.
func groupPieces(pieces []string, target, max int) [][]string {
	var groups [][]string
	var current []string
	currentWords := 0

	for _, piece := range pieces {
		w := CountWords(piece)
		total := currentWords + w

		switch {
		case len(current) == 0:
		case currentWords < target && total <= max:
		case endsWeak(current[len(current)-1]) && total <= max:
		case startsWeak(piece) && total <= max+max/10:
			// Slight overflow beats opening a chunk on a connective.
		default:
			groups = append(groups, current)
			current = nil
			currentWords = 0
		}
		current = append(current, piece)
		currentWords += w
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// rebalanceTail fixes a final group that came out under the minimum budget:
// merge it into the previous group when that still fits, otherwise shift
// whole sentences backward.
func rebalanceTail(groups [][]string, min, max int) [][]string {
	if len(groups) < 2 {
		return groups
	}

	last := len(groups) - 1
	if groupWords(groups[last]) >= min {
		return groups
	}

	if groupWords(groups[last-1])+groupWords(groups[last]) <= max {
		groups[last-1] = append(groups[last-1], groups[last]...)
		return groups[:last]
	}

	prev := groups[last-1]
	for len(prev) > 1 && groupWords(groups[last]) < min {
		moved := prev[len(prev)-1]
		if groupWords(prev)-CountWords(moved) < min {
			break
		}
		prev = prev[:len(prev)-1]
		groups[last] = append([]string{moved}, groups[last]...)
	}
	groups[last-1] = prev
	return groups
}

func groupWords(group []string) int {
	total := 0
	for _, piece := range group {
		total += CountWords(piece)
	}
	return total
}

func startsWeak(piece string) bool {
	words := wordPattern.FindAllString(piece, 1)
	return len(words) == 1 && WeakStartWords[strings.ToLower(words[0])]
}

func endsWeak(piece string) bool {
	words := wordPattern.FindAllString(piece, -1)
	return len(words) > 0 && weakEndWords[strings.ToLower(words[len(words)-1])]
}

// CountWords counts word-like tokens, ignoring bracket tokens entirely.
func CountWords(text string) int {
	var cleaned strings.Builder
	for _, c := range spans.SplitProtected(text) {
		if c.Protected {
			cleaned.WriteByte(' ')
		} else {
			cleaned.WriteString(c.Text)
		}
	}
	return len(wordPattern.FindAllString(cleaned.String(), -1))
}

// sentencePieces splits a paragraph into sentences, then breaks any sentence
// over the word budget at soft boundaries (semicolon, colon, dashes).
func sentencePieces(paragraph string, maxWords int) []string {
	var pieces []string
	for _, sentence := range splitSentences(paragraph) {
		if CountWords(sentence) <= maxWords {
			pieces = append(pieces, sentence)
			continue
		}
		pieces = append(pieces, splitSoft(sentence, maxWords)...)
	}
	return pieces
}

func splitSentences(paragraph string) []string {
	bracketSpans := spans.Find(paragraph)

	var sentences []string
	start := 0
	idx := 0
	for idx < len(paragraph) {
		if skip := spanEndAt(idx, bracketSpans); skip > idx {
			idx = skip
			continue
		}
		ch := paragraph[idx]
		if ch != '.' && ch != '!' && ch != '?' {
			idx++
			continue
		}
		if ch == '.' && idx+1 < len(paragraph) && paragraph[idx+1] == '.' {
			idx++
			continue
		}
		if ch == '.' && idx > 0 && idx+1 < len(paragraph) &&
			isDigit(paragraph[idx-1]) && isDigit(paragraph[idx+1]) {
			idx++
			continue
		}

		end := idx + 1
		for end < len(paragraph) && (paragraph[end] == '"' || paragraph[end] == '\'') {
			end++
		}
		if end < len(paragraph) && !isSpace(paragraph[end]) {
			idx++
			continue
		}

		if piece := strings.TrimSpace(paragraph[start:end]); piece != "" {
			sentences = append(sentences, piece)
		}
		start = end
		idx = end
	}
	if piece := strings.TrimSpace(paragraph[start:]); piece != "" {
		sentences = append(sentences, piece)
	}
	return sentences
}

// splitSoft cuts an over-long sentence after clause boundaries; anything
// still over budget is hard-split on word counts as a last resort.
func splitSoft(sentence string, maxWords int) []string {
	bracketSpans := spans.Find(sentence)

	var pieces []string
	start := 0
	idx := 0
	for idx < len(sentence) {
		if skip := spanEndAt(idx, bracketSpans); skip > idx {
			idx = skip
			continue
		}

		cut := -1
		switch {
		case sentence[idx] == ';' || sentence[idx] == ':':
			cut = idx + 1
		case strings.HasPrefix(sentence[idx:], "—"):
			cut = idx + len("—")
		case strings.HasPrefix(sentence[idx:], "–"):
			cut = idx + len("–")
		}
		if cut < 0 {
			idx++
			continue
		}

		if piece := strings.TrimSpace(sentence[start:cut]); piece != "" {
			pieces = append(pieces, piece)
		}
		start = cut
		idx = cut
	}
	if piece := strings.TrimSpace(sentence[start:]); piece != "" {
		pieces = append(pieces, piece)
	}

	var out []string
	for _, piece := range pieces {
		if CountWords(piece) <= maxWords {
			out = append(out, piece)
			continue
		}
		out = append(out, hardSplit(piece, maxWords)...)
	}
	return out
}

func hardSplit(piece string, maxWords int) []string {
	fields := strings.Fields(piece)
	var out []string
	for len(fields) > maxWords {
		out = append(out, strings.Join(fields[:maxWords], " "))
		fields = fields[maxWords:]
	}
	if len(fields) > 0 {
		out = append(out, strings.Join(fields, " "))
	}
	return out
}

func spanEndAt(pos int, ss []spans.Span) int {
	for _, s := range ss {
		if s.Contains(pos) {
			return s.End
		}
	}
	return pos
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
