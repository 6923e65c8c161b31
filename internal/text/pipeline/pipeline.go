// Package pipeline runs the full text-preparation flow for synthesis:
// currency and pronunciation normalization, voice segmentation, then
// per-segment automatic pause insertion. Everything here is a pure function
// of its input; callers may run pipelines concurrently without coordination.
package pipeline

import (
	"voxprep/internal/text/norm"
	"voxprep/internal/text/pauses"
	"voxprep/internal/text/pronounce"
	"voxprep/internal/text/voices"
)

// VoiceMode selects how a script is split across speakers.
type VoiceMode string

const (
	// VoiceModeSingle leaves the script as one segment for the caller's voice.
	VoiceModeSingle VoiceMode = "single"
	// VoiceModeParagraphs assigns voices to paragraphs by position.
	VoiceModeParagraphs VoiceMode = "paragraphs"
	// VoiceModeDirectives honors inline <voice:ID> markers.
	VoiceModeDirectives VoiceMode = "directives"
)

// Options bundles every tunable of the preparation flow.
type Options struct {
	NormalizeCurrency bool
	CurrencyMaxValue  int
	Pronunciations    map[string]string

	AutoPauses  bool
	PauseStyle  pauses.Style
	SpeedFactor float64
	Strength    float64
	TopupOnly   bool
	MinPause    float64
	MaxPause    float64

	VoiceMode    VoiceMode
	Assignments  []string
	DefaultVoice string
}

// DefaultOptions enables the standard single-voice flow with automatic
// pauses in conservative topup mode.
func DefaultOptions() Options {
	pauseDefaults := pauses.DefaultOptions(pauses.StyleAudiobook)
	return Options{
		NormalizeCurrency: true,
		AutoPauses:        true,
		PauseStyle:        pauseDefaults.Style,
		SpeedFactor:       pauseDefaults.SpeedFactor,
		Strength:          pauseDefaults.Strength,
		TopupOnly:         pauseDefaults.TopupOnly,
		MinPause:          pauseDefaults.MinPause,
		MaxPause:          pauseDefaults.MaxPause,
		VoiceMode:         VoiceModeSingle,
	}
}

// Segment is one annotated piece of the prepared script, ready for the
// synthesis engine. An empty VoiceID means the caller's default voice.
type Segment struct {
	VoiceID string
	Text    string
}

// Prepare runs normalization and pause annotation over the whole script as a
// single segment.
func Prepare(text string, opts Options) string {
	return annotate(normalize(text, opts), opts)
}

// PrepareSegments runs the full flow and returns ordered speaker segments,
// each independently annotated.
func PrepareSegments(text string, opts Options) []Segment {
	normalized := normalize(text, opts)

	var raw []voices.Segment
	switch opts.VoiceMode {
	case VoiceModeParagraphs:
		raw = voices.FromParagraphs(
			voices.SplitParagraphs(normalized), opts.Assignments, opts.DefaultVoice)
	case VoiceModeDirectives:
		raw = voices.ParseDirectives(normalized)
	default:
		raw = []voices.Segment{{VoiceID: opts.DefaultVoice, Text: normalized}}
	}

	segments := make([]Segment, 0, len(raw))
	for _, seg := range raw {
		segments = append(segments, Segment{
			VoiceID: seg.VoiceID,
			Text:    annotate(seg.Text, opts),
		})
	}
	return segments
}

func normalize(text string, opts Options) string {
	text = norm.Normalize(text, norm.Options{
		Currency:         opts.NormalizeCurrency,
		CurrencyMaxValue: opts.CurrencyMaxValue,
	})
	return pronounce.Apply(text, opts.Pronunciations)
}

func annotate(text string, opts Options) string {
	if !opts.AutoPauses {
		return text
	}
	return pauses.Insert(text, pauses.Options{
		Style:       opts.PauseStyle,
		SpeedFactor: opts.SpeedFactor,
		Strength:    opts.Strength,
		TopupOnly:   opts.TopupOnly,
		MinPause:    opts.MinPause,
		MaxPause:    opts.MaxPause,
	})
}
