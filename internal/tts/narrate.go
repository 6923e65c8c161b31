package tts

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"voxprep/internal/text/spans"
)

// wordsPerMinute is the assumed base narration rate for duration estimates.
const wordsPerMinute = 150.0

var pauseValuePattern = regexp.MustCompile(`(?i)^\[(?:pause:)?(\d+(?:\.\d+)?)s\]$`)

// SilenceSeconds sums the durations of all pause tags in text, canonical and
// shorthand alike.
func SilenceSeconds(text string) float64 {
	total := 0.0
	for _, s := range spans.FindManualPauses(text) {
		m := pauseValuePattern.FindStringSubmatch(text[s.Start:s.End])
		if m == nil {
			continue
		}
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			total += v
		}
	}
	return total
}

// StripTags removes every bracket token, leaving only speakable prose.
func StripTags(text string) string {
	var out strings.Builder
	for _, c := range spans.SplitProtected(text) {
		if !c.Protected {
			out.WriteString(c.Text)
		}
	}
	return out.String()
}

// EstimateDuration predicts how long narrating text would take at the given
// speed: spoken words at the base rate plus tagged silence.
func EstimateDuration(text string, speed float64) time.Duration {
	if speed <= 0 {
		speed = 1.0
	}
	words := len(strings.Fields(StripTags(text)))
	seconds := float64(words)/(wordsPerMinute*speed)*60.0 + SilenceSeconds(text)
	return time.Duration(seconds * float64(time.Second))
}
