// Package main provides the entry point for the vaani CLI application.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/pathshala/vaani/roster"
	"github.com/pathshala/vaani/speech"
	"github.com/pathshala/vaani/speech/engines/espeak"
	"github.com/pathshala/vaani/speech/engines/mock"
	"github.com/pathshala/vaani/ui"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	rosterFile string
	engineName string
	days       int
	debug      bool

	keyword = lipgloss.NewStyle().Foreground(lipgloss.Color("211")).Render

	rootCmd = &cobra.Command{
		Use:              "vaani [ROSTER]",
		Short:            "Classroom dashboard with spoken summaries",
		Long:             fmt.Sprintf("\nA teacher's dashboard that reads renewal reminders %s, preferring Hindi voices.", keyword("out loud")),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.MaximumNArgs(1),
		RunE:             execute,
	}
)

func execute(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		rosterFile = args[0]
	}
	if rosterFile == "" {
		rosterFile = viper.GetString("roster")
	}

	var students []roster.Student
	if rosterFile != "" {
		var err error
		students, err = roster.LoadFile(rosterFile)
		if err != nil {
			return fmt.Errorf("unable to load roster: %w", err)
		}
	}

	controller, err := buildController()
	if err != nil {
		return err
	}
	defer controller.Stop()

	cfg := ui.Config{
		Controller:    controller,
		Students:      students,
		ThresholdDays: viper.GetInt("expiry.threshold_days"),
	}
	if _, err := ui.NewProgram(cfg).Run(); err != nil {
		return fmt.Errorf("unable to run tui program: %w", err)
	}
	return nil
}

// buildController loads speech settings and wires the configured
// engine. An unavailable engine is not an error; narration simply
// degrades to nothing.
func buildController() (*speech.Controller, error) {
	cfg, err := speech.LoadConfigFromViper()
	if err != nil {
		return nil, fmt.Errorf("invalid speech configuration: %w", err)
	}

	var engine speech.Engine
	switch cfg.Engine {
	case "espeak":
		engine = espeak.New(cfg.Espeak)
	case "mock":
		engine = mock.New()
	default:
		return nil, fmt.Errorf("unknown speech engine %q", cfg.Engine)
	}

	if !engine.Available() {
		log.Warn("speech engine unavailable, narration disabled", "engine", cfg.Engine)
	}
	return speech.NewController(engine, cfg), nil
}

var speakCmd = &cobra.Command{
	Use:   "speak [TEXT]",
	Short: "Narrate text and exit",
	Long:  "\nNarrate the given text, or stdin when piped or when TEXT is '-'.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(_ *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		fromStdin := text == "-"
		if !fromStdin {
			piped, err := stdinIsPipe()
			if err != nil {
				return err
			}
			fromStdin = piped && text == ""
		}
		if fromStdin {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("unable to read from stdin: %w", err)
			}
			text = string(b)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("nothing to narrate")
		}

		controller, err := buildController()
		if err != nil {
			return err
		}
		<-controller.Speak(speech.Request{Text: text})
		return nil
	},
}

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List the engine's voices",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		controller, err := buildController()
		if err != nil {
			return err
		}

		catalog := controller.Catalog()
		voices := catalog.Voices()
		if len(voices) == 0 {
			fmt.Println("No voices available.")
			return nil
		}

		// Plain output when piped.
		highlight := keyword
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			highlight = func(s ...string) string { return strings.Join(s, " ") }
		}

		best := catalog.Best()
		for _, v := range voices {
			marker := "  "
			if best != nil && v.Name == best.Name {
				marker = highlight("* ")
			}
			fmt.Printf("%s%-24s %s\n", marker, v.Name, v.Lang)
		}
		return nil
	},
}

func stdinIsPipe() (bool, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false, fmt.Errorf("unable to stat stdin: %w", err)
	}
	if stat.Mode()&os.ModeCharDevice == 0 || stat.Size() > 0 {
		return true, nil
	}
	return false, nil
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to a file")
	rootCmd.PersistentFlags().StringVarP(&engineName, "engine", "e", "", "speech engine (espeak or mock)")
	rootCmd.Flags().StringVarP(&rosterFile, "roster", "r", "", "path to the student roster JSON file")
	rootCmd.Flags().IntVarP(&days, "days", "d", 0, "renewal reminder window in days")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("speech.engine", rootCmd.PersistentFlags().Lookup("engine"))
	_ = viper.BindPFlag("roster", rootCmd.Flags().Lookup("roster"))
	_ = viper.BindPFlag("expiry.threshold_days", rootCmd.Flags().Lookup("days"))

	viper.SetDefault("roster", "")
	viper.SetDefault("expiry.threshold_days", roster.DefaultThresholdDays)
	speech.SetDefaults()

	rootCmd.AddCommand(speakCmd, voicesCmd, configCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "vaani")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "vaani")}, dirs...)
	}

	if c := os.Getenv("VAANI_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("vaani")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("vaani")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", used)
		return
	}

	configFile = filepath.Join(dirs[0], "vaani.yml")
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}

// setupLog routes logs away from the TUI. With --debug set, debug logs
// go to a file under the user cache dir; otherwise logging is off.
func setupLog() (func() error, error) {
	if !viper.GetBool("debug") && os.Getenv("VAANI_DEBUG") == "" {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}

	scope := gap.NewScope(gap.User, "vaani")
	cachePath, err := scope.CacheDir()
	if err != nil {
		return nil, fmt.Errorf("unable to find cache directory: %w", err)
	}
	if err := os.MkdirAll(cachePath, 0o755); err != nil { //nolint:gosec
		return nil, fmt.Errorf("unable to create cache directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(cachePath, "vaani.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.SetReportTimestamp(true)
	return f.Close, nil
}
