package config

import (
	"github.com/spf13/viper"

	"voxprep/internal/text/pauses"
	"voxprep/internal/text/pipeline"
)

// SetDefaults seeds viper with the standard engine and pipeline settings.
func SetDefaults() {
	viper.SetDefault("engine.type", "auto")
	viper.SetDefault("engine.voice", "narrator")
	viper.SetDefault("engine.speed", 1.0)
	viper.SetDefault("engine.quiet", false)

	viper.SetDefault("pause.enabled", true)
	viper.SetDefault("pause.style", "audiobook")
	viper.SetDefault("pause.strength", 1.0)
	viper.SetDefault("pause.min_seconds", 0.04)
	viper.SetDefault("pause.max_seconds", 1.8)
	viper.SetDefault("pause.topup_only", true)

	viper.SetDefault("currency.normalize", true)
	viper.SetDefault("currency.max_value", 999_999_999)

	viper.SetDefault("lexicon.path", "")
	viper.SetDefault("voices", []string{})

	viper.SetDefault("chunk.target_seconds", 15.0)
	viper.SetDefault("chunk.min_seconds", 10.0)
	viper.SetDefault("chunk.max_seconds", 18.0)
	viper.SetDefault("chunk.words_per_second", 2.7)
	viper.SetDefault("chunk.overlap_sentences", 0)
}

// PipelineOptions assembles pipeline options from the loaded configuration.
// Pronunciations are left empty; callers merge a lexicon on top.
func PipelineOptions() pipeline.Options {
	return pipeline.Options{
		NormalizeCurrency: viper.GetBool("currency.normalize"),
		CurrencyMaxValue:  viper.GetInt("currency.max_value"),

		AutoPauses:  viper.GetBool("pause.enabled"),
		PauseStyle:  pauses.ParseStyle(viper.GetString("pause.style")),
		SpeedFactor: viper.GetFloat64("engine.speed"),
		Strength:    viper.GetFloat64("pause.strength"),
		TopupOnly:   viper.GetBool("pause.topup_only"),
		MinPause:    viper.GetFloat64("pause.min_seconds"),
		MaxPause:    viper.GetFloat64("pause.max_seconds"),

		VoiceMode:    pipeline.VoiceModeSingle,
		DefaultVoice: viper.GetString("engine.voice"),
	}
}
