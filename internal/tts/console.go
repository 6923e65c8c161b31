package tts

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"voxprep/internal/text/pipeline"
	"voxprep/internal/text/spans"
)

// ConsoleEngine narrates to the terminal: prose is printed as a teleprompter
// would show it, pause tags become real silence via the wall clock. Useful
// for previewing pacing without any audio stack.
type ConsoleEngine struct {
	mu       sync.Mutex
	playing  bool
	stopped  bool
	speed    float64
	voice    string
	registry *Registry
}

func NewConsoleEngine(c Config, registry *Registry) *ConsoleEngine {
	speed := c.Speed
	if speed <= 0 {
		speed = 1.0
	}
	voice := c.Voice
	if voice == "" {
		voice = "default"
	}
	return &ConsoleEngine{speed: speed, voice: voice, registry: registry}
}

func (e *ConsoleEngine) Speak(text string) error {
	return e.SpeakSegments([]pipeline.Segment{{Text: text}})
}

func (e *ConsoleEngine) SpeakSegments(segments []pipeline.Segment) error {
	e.mu.Lock()
	e.playing = true
	e.stopped = false
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.playing = false
		e.mu.Unlock()
	}()

	for _, seg := range segments {
		voice := e.voice
		if seg.VoiceID != "" {
			voice = seg.VoiceID
			if resolved, ok := e.registry.Resolve(seg.VoiceID); ok {
				voice = resolved.Name()
			}
		}
		color.Cyan("🎙  %s:", voice)

		if err := e.narrate(seg.Text); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

// narrate prints the prose chunks and sleeps through pause tags. Other
// bracket tokens are shown dimmed so authors can see them fly by.
func (e *ConsoleEngine) narrate(text string) error {
	dim := color.New(color.Faint)

	for _, chunk := range spans.SplitProtected(text) {
		if e.isStopped() {
			return nil
		}
		if !chunk.Protected {
			fmt.Print(chunk.Text)
			continue
		}
		if secs := SilenceSeconds(chunk.Text); secs > 0 {
			time.Sleep(time.Duration(secs * float64(time.Second)))
			continue
		}
		dim.Print(chunk.Text)
	}
	fmt.Println()
	return nil
}

func (e *ConsoleEngine) isStopped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopped
}

func (e *ConsoleEngine) SetVoice(voice string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.voice = voice
	return nil
}

func (e *ConsoleEngine) SetSpeed(speed float64) error {
	if speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", speed)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.speed = speed
	return nil
}

func (e *ConsoleEngine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopped = true
	return nil
}

func (e *ConsoleEngine) IsPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

func (e *ConsoleEngine) GetAvailableVoices() ([]string, error) {
	var names []string
	for _, v := range e.registry.Voices() {
		names = append(names, v.Name())
	}
	if len(names) == 0 {
		names = []string{strings.ToLower(e.voice)}
	}
	return names, nil
}
