// Package voices splits authoring text into ordered speaker segments, either
// by pairing paragraphs with a caller-supplied voice list or by inline
// <voice:ID> directives.
package voices

import (
	"regexp"
	"strings"

	"voxprep/internal/text/spans"
)

var directivePattern = regexp.MustCompile(`<voice\s*:\s*([A-Za-z0-9_-]+)\s*>`)

// Segment pairs a voice identifier with the text it should speak. An empty
// VoiceID means no directive applied yet; the caller falls back to its
// current or default voice.
type Segment struct {
	VoiceID string
	Text    string
}

// SplitParagraphs splits text into paragraphs separated by one or more blank
// lines. Newlines inside a paragraph are preserved; blank paragraphs are
// dropped.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			p := strings.TrimSpace(strings.Join(current, "\n"))
			if p != "" {
				paragraphs = append(paragraphs, p)
			}
			current = current[:0]
		}
	}

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			current = append(current, line)
		}
	}
	flush()

	return paragraphs
}

// FromParagraphs pairs each paragraph with the assignment at the same index,
// falling back to defaultVoice once assignments run out or are blank.
func FromParagraphs(paragraphs, assignments []string, defaultVoice string) []Segment {
	var segments []Segment
	for idx, paragraph := range paragraphs {
		if strings.TrimSpace(paragraph) == "" {
			continue
		}
		voice := defaultVoice
		if idx < len(assignments) && assignments[idx] != "" {
			voice = assignments[idx]
		}
		segments = append(segments, Segment{VoiceID: voice, Text: paragraph})
	}
	return segments
}

// ParseDirectives splits text on inline <voice:ID> markers. Each marker
// switches the active voice for all following text. Markers inside bracket
// tokens are literal text, not directives. Text before the first marker keeps
// an empty VoiceID; the result is never empty.
func ParseDirectives(text string) []Segment {
	bracketSpans := spans.Find(text)

	var matches [][]int
	for _, m := range directivePattern.FindAllStringSubmatchIndex(text, -1) {
		if spans.Inside(m[0], bracketSpans) {
			continue
		}
		matches = append(matches, m)
	}

	var segments []Segment
	last := 0
	currentVoice := ""

	for _, m := range matches {
		segmentText := text[last:m[0]]
		if strings.TrimSpace(segmentText) != "" {
			segments = append(segments, Segment{VoiceID: currentVoice, Text: segmentText})
		}
		currentVoice = strings.TrimSpace(text[m[2]:m[3]])
		last = m[1]
	}

	tail := text[last:]
	if strings.TrimSpace(tail) != "" || len(segments) == 0 {
		segments = append(segments, Segment{VoiceID: currentVoice, Text: tail})
	}
	return segments
}
