package tts

import (
	"path/filepath"
	"strings"
)

// Voice is one configured speaker the engine can use. Filename is the audio
// prompt the real synthesis layer would load; here it only anchors
// identifier resolution.
type Voice struct {
	Filename    string
	DisplayName string
}

// Name returns the voice's display name, falling back to the filename stem.
func (v Voice) Name() string {
	if v.DisplayName != "" {
		return v.DisplayName
	}
	return strings.TrimSuffix(v.Filename, filepath.Ext(v.Filename))
}

// Registry resolves voice directive identifiers to configured voices.
// Matching is case-insensitive and ignores the file extension, so the
// directive <voice:clay> finds "Clay.wav".
type Registry struct {
	voices []Voice
}

func NewRegistry(voices []Voice) *Registry {
	return &Registry{voices: voices}
}

// DefaultVoices is the built-in set used when no voices are configured.
func DefaultVoices() []Voice {
	return []Voice{
		{Filename: "narrator.wav", DisplayName: "Narrator"},
		{Filename: "clay.wav", DisplayName: "Clay"},
		{Filename: "emily.wav", DisplayName: "Emily"},
	}
}

// Resolve finds the voice for a directive identifier. An empty identifier
// resolves to nothing; callers fall back to their current voice.
func (r *Registry) Resolve(id string) (Voice, bool) {
	if id == "" {
		return Voice{}, false
	}
	want := strings.ToLower(id)

	for _, v := range r.voices {
		file := strings.ToLower(v.Filename)
		stem := strings.TrimSuffix(file, filepath.Ext(file))
		if want == file || want == stem || want == strings.ToLower(v.DisplayName) {
			return v, true
		}
	}
	return Voice{}, false
}

// Voices lists the registered voices in order.
func (r *Registry) Voices() []Voice {
	out := make([]Voice, len(r.voices))
	copy(out, r.voices)
	return out
}
