package tts

import (
	"fmt"

	"github.com/spf13/viper"
)

type EngineType string

const (
	EngineTypeMock    EngineType = "mock"
	EngineTypeConsole EngineType = "console"
	EngineTypeAuto    EngineType = "auto"
)

func (e EngineType) String() string {
	return string(e)
}

// NewEngine creates a narration engine based on the provided config.
func NewEngine(config Config) (Engine, error) {
	if config.Type == EngineTypeAuto.String() || config.Type == "" {
		config.Type = bestEngine().String()
	}

	switch config.Type {
	case EngineTypeMock.String():
		return NewMockEngine(config), nil

	case EngineTypeConsole.String():
		return NewConsoleEngine(config, RegistryFromConfig()), nil

	default:
		return nil, fmt.Errorf("unsupported narration engine type: %s", config.Type)
	}
}

// bestEngine picks the console engine for interactive use unless config says
// otherwise.
func bestEngine() EngineType {
	if viper.GetBool("engine.quiet") {
		return EngineTypeMock
	}
	return EngineTypeConsole
}

// GetAvailableEngines returns the engines this build ships with.
func GetAvailableEngines() []EngineType {
	return []EngineType{EngineTypeMock, EngineTypeConsole}
}

// RegistryFromConfig builds the voice registry from the configured voice
// list.
func RegistryFromConfig() *Registry {
	var voices []Voice
	for _, name := range viper.GetStringSlice("voices") {
		voices = append(voices, Voice{Filename: name})
	}
	if len(voices) == 0 {
		voices = DefaultVoices()
	}
	return NewRegistry(voices)
}
