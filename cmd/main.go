package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voxprep/internal/cli/scheme/colours"
	"voxprep/internal/config"
	"voxprep/internal/studio"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {

	config.SetDefaults()

	app := studio.NewStudio()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		app.Cancel()
		app.Engine.Stop()
		fmt.Println("\n" + colours.Warning.Sprint("👋 Fading out... 🎚️"))
		os.Exit(0)
	}()

	rootCmd := &cobra.Command{
		Use:   "voxprep",
		Short: "🎙️ Get scripts ready for narration",
		Long: `
┌─────────────────────────────────────┐
│  🎙️ Welcome to VoxPrep! 🎚️         │
│  Text preparation for narration     │
│  Pauses, voices, and pronunciation  │
└─────────────────────────────────────┘

VoxPrep normalizes a script, splits it across voices, and annotates it
with pause tags so the synthesis engine breathes where a narrator would.
		`,
		Run: func(cmd *cobra.Command, args []string) {
			app.ShowWelcome()
		},
	}

	// Annotate command
	annotateCmd := &cobra.Command{
		Use:   "annotate [script]",
		Short: "⏸️ Insert automatic pause tags",
		Long:  "Annotate a script with [pause:Ns] tags at punctuation and paragraph boundaries",
		Run:   app.Annotate,
	}

	// Normalize command
	normalizeCmd := &cobra.Command{
		Use:   "normalize [script]",
		Short: "🔤 Spell out currency and fix pronunciations",
		Long:  "Rewrite dollar amounts as words and apply the pronunciation lexicon",
		Run:   app.Normalize,
	}

	// Prepare command
	prepareCmd := &cobra.Command{
		Use:   "prepare [script]",
		Short: "🪄 Normalize and annotate in one pass",
		Long:  "Run the full preparation flow: normalization followed by pause annotation",
		Run:   app.Prepare,
	}

	// Segments command
	segmentsCmd := &cobra.Command{
		Use:   "segments [script]",
		Short: "🎭 Split a script across voices",
		Long:  "Split a script into per-voice segments via <voice:ID> directives or paragraph assignments",
		Run:   app.Segments,
	}

	// Chunks command
	chunksCmd := &cobra.Command{
		Use:   "chunks [script]",
		Short: "✂️ Cut a script into synthesis-sized chunks",
		Long:  "Cut a script into chunks sized for the synthesis window, respecting sentence boundaries",
		Run:   app.Chunks,
	}

	// Speak command
	speakCmd := &cobra.Command{
		Use:   "speak [script]",
		Short: "🔊 Narrate a prepared script",
		Long:  "Prepare a script and play it through the configured narration engine",
		Run:   app.Speak,
	}

	// Styles command
	stylesCmd := &cobra.Command{
		Use:   "styles",
		Short: "📊 Show the pause profiles",
		Long:  "Display base pause durations for each narration style",
		Run:   app.ListStyles,
	}

	// Voices command
	voicesCmd := &cobra.Command{
		Use:   "voices",
		Short: "🗣️ List the configured voices",
		Long:  "Display the voice registry used to resolve <voice:ID> directives",
		Run:   app.ListVoices,
	}

	// Samples command
	samplesCmd := &cobra.Command{
		Use:   "samples",
		Short: "📜 Browse the bundled demo scripts",
		Long:  "List the demo scripts that ship with VoxPrep",
		Run:   app.ListSamples,
	}

	// Add flags
	for _, c := range []*cobra.Command{annotateCmd, prepareCmd, segmentsCmd, speakCmd} {
		c.Flags().StringP("style", "s", "", "Pause style: audiobook, youtube, ad, dramatic")
		c.Flags().Float64P("speed", "x", 0, "Playback speed factor (shrinks pauses)")
		c.Flags().Float64("strength", 0, "Pause strength multiplier")
		c.Flags().Bool("full", false, "Annotate everywhere, not just where tags are missing")
	}
	for _, c := range []*cobra.Command{normalizeCmd, prepareCmd, segmentsCmd, speakCmd} {
		c.Flags().Bool("no-currency", false, "Leave dollar amounts as digits")
		c.Flags().StringP("lexicon", "l", "", "Path to a YAML pronunciation lexicon")
	}
	for _, c := range []*cobra.Command{segmentsCmd, speakCmd} {
		c.Flags().StringP("mode", "m", "directives", "Voice mode: directives or paragraphs")
	}
	segmentsCmd.Flags().StringSlice("voices", nil, "Voice IDs for paragraph mode, in order")
	segmentsCmd.Flags().String("default-voice", "", "Voice for unassigned segments")
	chunksCmd.Flags().Float64("target", 0, "Target chunk length in seconds")
	chunksCmd.Flags().Float64("min", 0, "Minimum chunk length in seconds")
	chunksCmd.Flags().Float64("max", 0, "Maximum chunk length in seconds")
	chunksCmd.Flags().Int("overlap", 0, "Sentences repeated between adjacent chunks")
	speakCmd.Flags().StringP("voice", "v", "", "Default voice. See voices for options")

	rootCmd.AddCommand(annotateCmd, normalizeCmd, prepareCmd, segmentsCmd,
		chunksCmd, speakCmd, stylesCmd, voicesCmd, samplesCmd)

	if err := rootCmd.Execute(); err != nil {
		colours.Error.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}
}

// Configuration management with Viper
func init() {
	viper.SetConfigName("voxprep")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.voxprep")
	viper.AddConfigPath(".")

	viper.ReadInConfig()
}
