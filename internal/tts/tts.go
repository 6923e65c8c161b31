// internal/tts/tts.go
package tts

import "voxprep/internal/text/pipeline"

type Config struct {
	Type  string
	Speed float64
	Voice string
}

// Engine interface for the downstream narration step. Engines consume text
// prepared by the pipeline: pause tags become silence, voice ids select
// speakers. Implementations here only simulate; real synthesis lives outside
// this repository.
type Engine interface {
	Speak(text string) error
	SpeakSegments(segments []pipeline.Segment) error
	SetVoice(voice string) error
	SetSpeed(speed float64) error
	Stop() error
	IsPlaying() bool
	GetAvailableVoices() ([]string, error)
}
