package tts

import (
	"time"

	"voxprep/internal/text/pipeline"
)

// MockEngine simulates narration without producing output. It records what
// it was asked to speak, which also makes it the engine of choice in tests.
type MockEngine struct {
	playing bool
	speed   float64
	voice   string

	Spoken    []SpokenEntry
	Simulated time.Duration
}

// SpokenEntry is one segment the mock engine "narrated".
type SpokenEntry struct {
	Voice string
	Text  string
}

func NewMockEngine(c Config) *MockEngine {
	speed := c.Speed
	if speed <= 0 {
		speed = 1.0
	}
	voice := c.Voice
	if voice == "" {
		voice = "default"
	}
	return &MockEngine{speed: speed, voice: voice}
}

func (m *MockEngine) Speak(text string) error {
	m.playing = true
	m.Spoken = append(m.Spoken, SpokenEntry{Voice: m.voice, Text: text})
	m.Simulated += EstimateDuration(text, m.speed)
	m.playing = false
	return nil
}

func (m *MockEngine) SpeakSegments(segments []pipeline.Segment) error {
	for _, seg := range segments {
		voice := seg.VoiceID
		if voice == "" {
			voice = m.voice
		}
		m.playing = true
		m.Spoken = append(m.Spoken, SpokenEntry{Voice: voice, Text: seg.Text})
		m.Simulated += EstimateDuration(seg.Text, m.speed)
		m.playing = false
	}
	return nil
}

func (m *MockEngine) SetVoice(voice string) error {
	m.voice = voice
	return nil
}

func (m *MockEngine) SetSpeed(speed float64) error {
	if speed > 0 {
		m.speed = speed
	}
	return nil
}

func (m *MockEngine) Stop() error {
	m.playing = false
	return nil
}

func (m *MockEngine) IsPlaying() bool {
	return m.playing
}

func (m *MockEngine) GetAvailableVoices() ([]string, error) {
	return []string{"mock-voice"}, nil
}
