package studio

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voxprep/internal/cli/scheme/colours"
	"voxprep/internal/config"
	"voxprep/internal/domain/script"
	"voxprep/internal/text/chunk"
	"voxprep/internal/text/pauses"
	"voxprep/internal/text/pipeline"
	"voxprep/internal/text/pronounce"
	"voxprep/internal/tts"
)

// Studio main application structure
type Studio struct {
	Engine tts.Engine
	ctx    context.Context
	Cancel context.CancelFunc
}

func NewStudio() *Studio {
	engine, err := tts.NewEngine(tts.Config{
		Type:  viper.GetString("engine.type"),
		Speed: viper.GetFloat64("engine.speed"),
		Voice: viper.GetString("engine.voice"),
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create narration engine")
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Studio{
		Engine: engine,
		ctx:    ctx,
		Cancel: cancel,
	}
}

func (s *Studio) ShowWelcome() {
	fmt.Println()
	colours.Title.Println("🎙️  Welcome to VoxPrep! 🎙️")
	fmt.Println()
	colours.Info.Println("🛠️  Available commands:")
	fmt.Println("  • voxprep annotate  - Insert automatic pause tags into a script")
	fmt.Println("  • voxprep normalize - Spell out currency and apply pronunciations")
	fmt.Println("  • voxprep segments  - Split a script into per-voice segments")
	fmt.Println("  • voxprep chunks    - Cut a script into synthesis-sized chunks")
	fmt.Println("  • voxprep speak     - Run a prepared script through the engine")
	fmt.Println("  • voxprep styles    - Show the pause profiles")
	fmt.Println("  • voxprep voices    - List the configured voices")
	fmt.Println("  • voxprep samples   - Browse the bundled demo scripts")
	fmt.Println()
	colours.Prompt.Println("✨ Feed it a script and it comes back ready to narrate ✨")
}

// Annotate inserts pause tags and prints the annotated script.
func (s *Studio) Annotate(cmd *cobra.Command, args []string) {
	text, err := s.readScript(args)
	if err != nil {
		colours.Error.Printf("❌ %v\n", err)
		return
	}

	opts := s.optionsFromFlags(cmd)
	opts.NormalizeCurrency = false
	opts.Pronunciations = nil

	fmt.Println(pipeline.Prepare(text, opts))
}

// Normalize spells out currency amounts and applies the pronunciation
// lexicon, without touching pauses.
func (s *Studio) Normalize(cmd *cobra.Command, args []string) {
	text, err := s.readScript(args)
	if err != nil {
		colours.Error.Printf("❌ %v\n", err)
		return
	}

	opts := s.optionsFromFlags(cmd)
	opts.AutoPauses = false

	fmt.Println(pipeline.Prepare(text, opts))
}

// Prepare runs the whole flow: normalization plus pause annotation.
func (s *Studio) Prepare(cmd *cobra.Command, args []string) {
	text, err := s.readScript(args)
	if err != nil {
		colours.Error.Printf("❌ %v\n", err)
		return
	}

	fmt.Println(pipeline.Prepare(text, s.optionsFromFlags(cmd)))
}

// Segments splits a script across voices and prints each annotated segment.
func (s *Studio) Segments(cmd *cobra.Command, args []string) {
	text, err := s.readScript(args)
	if err != nil {
		colours.Error.Printf("❌ %v\n", err)
		return
	}

	opts := s.optionsFromFlags(cmd)
	opts.VoiceMode = s.voiceModeFromFlags(cmd)
	opts.Assignments, _ = cmd.Flags().GetStringSlice("voices")
	if dv, _ := cmd.Flags().GetString("default-voice"); dv != "" {
		opts.DefaultVoice = dv
	}

	registry := tts.RegistryFromConfig()
	segments := pipeline.PrepareSegments(text, opts)

	fmt.Println()
	colours.Title.Printf("🎭 %d segments\n", len(segments))
	fmt.Println()
	for i, seg := range segments {
		label := seg.VoiceID
		if label == "" {
			label = "(default)"
		} else if v, ok := registry.Resolve(seg.VoiceID); ok {
			label = fmt.Sprintf("%s → %s", seg.VoiceID, v.Filename)
		}
		fmt.Printf("%d. ", i+1)
		colours.Voice.Printf("%s\n", label)
		fmt.Printf("   %s\n", strings.ReplaceAll(seg.Text, "\n", "\n   "))
		fmt.Println()
	}
}

// Chunks cuts a script into synthesis-sized chunks and prints them with
// word counts and duration estimates.
func (s *Studio) Chunks(cmd *cobra.Command, args []string) {
	text, err := s.readScript(args)
	if err != nil {
		colours.Error.Printf("❌ %v\n", err)
		return
	}

	opts := chunk.Options{
		TargetSeconds:      viper.GetFloat64("chunk.target_seconds"),
		MinSeconds:         viper.GetFloat64("chunk.min_seconds"),
		MaxSeconds:         viper.GetFloat64("chunk.max_seconds"),
		BaseWordsPerSecond: viper.GetFloat64("chunk.words_per_second"),
		OverlapSentences:   viper.GetInt("chunk.overlap_sentences"),
	}
	if v, _ := cmd.Flags().GetFloat64("target"); v > 0 {
		opts.TargetSeconds = v
	}
	if v, _ := cmd.Flags().GetFloat64("min"); v > 0 {
		opts.MinSeconds = v
	}
	if v, _ := cmd.Flags().GetFloat64("max"); v > 0 {
		opts.MaxSeconds = v
	}
	if v, _ := cmd.Flags().GetInt("overlap"); v > 0 {
		opts.OverlapSentences = v
	}

	chunks := chunk.Split(text, opts)
	speed := viper.GetFloat64("engine.speed")

	fmt.Println()
	colours.Title.Printf("✂️  %d chunks\n", len(chunks))
	fmt.Println()
	for i, c := range chunks {
		fmt.Printf("%d. ", i+1)
		colours.Info.Printf("%d words, ~%s\n", chunk.CountWords(c), tts.EstimateDuration(c, speed).Round(100_000_000))
		fmt.Printf("   %s\n", strings.ReplaceAll(c, "\n", "\n   "))
		fmt.Println()
	}
}

// Speak prepares a script and plays it through the narration engine.
func (s *Studio) Speak(cmd *cobra.Command, args []string) {
	text, err := s.readScript(args)
	if err != nil {
		colours.Error.Printf("❌ %v\n", err)
		return
	}

	opts := s.optionsFromFlags(cmd)
	opts.VoiceMode = s.voiceModeFromFlags(cmd)

	if voice, _ := cmd.Flags().GetString("voice"); voice != "" {
		if err := s.Engine.SetVoice(voice); err != nil {
			colours.Error.Printf("❌ %v\n", err)
			return
		}
		opts.DefaultVoice = voice
	}

	segments := pipeline.PrepareSegments(text, opts)

	fmt.Println()
	colours.Success.Println("🎵 Starting narration... 🎵")
	fmt.Println("💡 Press Ctrl+C to stop anytime")
	fmt.Println()

	if err := s.Engine.SpeakSegments(segments); err != nil {
		colours.Error.Printf("❌ Narration error: %v\n", err)
		return
	}
	colours.Success.Println("✅ Done! 🌟")
}

// ListStyles prints each pause profile's base durations.
func (s *Studio) ListStyles(cmd *cobra.Command, args []string) {
	fmt.Println()
	colours.Title.Println("⏸️  Pause Profiles ⏸️")
	fmt.Println()

	for _, style := range pauses.Styles() {
		colours.Prompt.Printf("%s\n", style)
		for _, b := range pauses.BoundaryKinds() {
			fmt.Printf("  %-13s %.3fs\n", b, style.BaseDuration(b))
		}
		fmt.Println()
	}
	colours.Info.Println("💡 Durations scale with --strength and shrink at higher --speed")
}

// ListVoices prints the configured voice registry.
func (s *Studio) ListVoices(cmd *cobra.Command, args []string) {
	registry := tts.RegistryFromConfig()

	fmt.Println()
	colours.Title.Println("🗣️  Configured Voices 🗣️")
	fmt.Println()

	for i, v := range registry.Voices() {
		fmt.Printf("%d. ", i+1)
		colours.Voice.Printf("%s", v.Name())
		fmt.Printf(" (%s)\n", v.Filename)
	}
	fmt.Println()
	colours.Info.Println("💡 Reference a voice as <voice:NAME>; matching ignores case and extension")
}

// ListSamples prints the bundled demo scripts.
func (s *Studio) ListSamples(cmd *cobra.Command, args []string) {
	fmt.Println()
	colours.Title.Println("📜 Bundled Scripts 📜")
	fmt.Println()

	for i, item := range script.Samples() {
		fmt.Printf("%d. ", i+1)
		colours.Title.Printf("%s", item.Title)
		fmt.Printf(" [%s]\n", item.Style)
		fmt.Printf("   💡 %s\n", item.Description)
		colours.Info.Printf("   ID: %s\n", item.ID)
		fmt.Println()
	}
	colours.Success.Println("✨ Pass a script ID to annotate, segments, chunks or speak ✨")
}

// readScript resolves the source to prepare: a sample ID, a file path, or
// stdin when no argument (or "-") is given.
func (s *Studio) readScript(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	if item := script.Find(args[0]); item != nil {
		return item.Content, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("no sample or file named %q: %w", args[0], err)
	}
	return string(data), nil
}

// optionsFromFlags merges the config defaults with command flags.
func (s *Studio) optionsFromFlags(cmd *cobra.Command) pipeline.Options {
	opts := config.PipelineOptions()

	if f := cmd.Flags(); f != nil {
		if v, err := f.GetString("style"); err == nil && v != "" {
			opts.PauseStyle = pauses.ParseStyle(v)
		}
		if v, err := f.GetFloat64("speed"); err == nil && v > 0 {
			opts.SpeedFactor = v
		}
		if v, err := f.GetFloat64("strength"); err == nil && v > 0 {
			opts.Strength = v
		}
		if v, err := f.GetBool("full"); err == nil && v {
			opts.TopupOnly = false
		}
		if v, err := f.GetBool("no-currency"); err == nil && v {
			opts.NormalizeCurrency = false
		}
	}

	opts.Pronunciations = s.loadLexicon(cmd)
	return opts
}

func (s *Studio) voiceModeFromFlags(cmd *cobra.Command) pipeline.VoiceMode {
	mode, _ := cmd.Flags().GetString("mode")
	switch mode {
	case "paragraphs":
		return pipeline.VoiceModeParagraphs
	case "directives", "":
		return pipeline.VoiceModeDirectives
	default:
		logrus.WithField("mode", mode).Warn("unknown voice mode, using directives")
		return pipeline.VoiceModeDirectives
	}
}

func (s *Studio) loadLexicon(cmd *cobra.Command) map[string]string {
	path, _ := cmd.Flags().GetString("lexicon")
	if path == "" {
		path = viper.GetString("lexicon.path")
	}
	if path == "" {
		return nil
	}

	mapping, err := pronounce.LoadLexicon(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("could not load lexicon")
		return nil
	}
	return mapping
}
