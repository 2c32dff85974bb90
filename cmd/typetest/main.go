// Package main provides the CLI entrypoint for typetest.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/typetest/internal/config"
	"github.com/verte-zerg/typetest/internal/logging"
	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/source"
	"github.com/verte-zerg/typetest/internal/stats"
	"github.com/verte-zerg/typetest/internal/textpool"
	"github.com/verte-zerg/typetest/internal/tui"
)

const (
	defaultDuration     = 60
	defaultWordsPerLine = source.DefaultWordsPerLine
	defaultLogLevel     = "info"
	previewWidth        = 48
)

var (
	flagDuration     int
	flagWordsPerLine int
	flagTexts        string
	flagSeed         int64
	flagLogFile      string
	flagLogLevel     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typetest",
		Short:         "Timed line-by-line typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTestCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagDuration, "duration", defaultDuration, "test duration in seconds (60, 120 or 180)")
	flags.IntVar(&flagWordsPerLine, "words-per-line", defaultWordsPerLine, "words shown per line")
	flags.StringVar(&flagTexts, "texts", "", "file with one source text per line (default: built-in texts)")
	flags.Int64Var(&flagSeed, "seed", 0, "seed for text selection (0: random)")
	flags.StringVar(&flagLogFile, "log-file", "", "write debug logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTextsCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("typetest needs an interactive terminal")
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		// Sync fails on some file types; nothing left to report to.
		_ = logger.Sync()
	}()

	pool, err := textpool.Load(cfg.TextsPath)
	if err != nil {
		return fmt.Errorf("failed to load texts from %s: %w", cfg.TextsPath, err)
	}
	logger.Info("starting",
		zap.Int("duration", cfg.Duration),
		zap.Int("words_per_line", cfg.WordsPerLine),
		zap.Int("texts", len(pool)),
	)

	m := tui.NewModel(cfg, pool, newSelector(cfg), logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	finalModel, ok := final.(*tui.Model)
	if !ok {
		return nil
	}
	result, ok := finalModel.Result()
	if !ok {
		return nil
	}
	return stats.RenderResult(cmd.OutOrStdout(), result)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newTextsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "texts",
		Short: "List the source texts",
		Args:  cobra.NoArgs,
		RunE:  runTextsCmd,
	}
}

func runTextsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	pool, err := textpool.Load(cfg.TextsPath)
	if err != nil {
		return fmt.Errorf("failed to load texts: %w", err)
	}
	return writeTexts(cmd, pool, cfg.WordsPerLine)
}

func writeTexts(cmd *cobra.Command, pool []string, wordsPerLine int) error {
	out := cmd.OutOrStdout()
	for i, text := range pool {
		lines := source.Chunk(text, wordsPerLine)
		preview := runewidth.Truncate(text, previewWidth, "...")
		if _, err := fmt.Fprintf(out, "%3d  %4d words  %3d lines  %s\n", i+1, stats.WordCount(text), len(lines), preview); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// resolveConfig merges defaults, the config file, TYPETEST_* variables and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	cfg := model.Config{
		Duration:     defaultDuration,
		WordsPerLine: defaultWordsPerLine,
		LogLevel:     defaultLogLevel,
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg.Apply(&cfg)
	if err := config.ApplyEnv(&cfg); err != nil {
		return model.Config{}, err
	}

	applyIntFlag(cmd, "duration", &cfg.Duration, flagDuration)
	applyIntFlag(cmd, "words-per-line", &cfg.WordsPerLine, flagWordsPerLine)
	applyStringFlag(cmd, "texts", &cfg.TextsPath, flagTexts)
	applyInt64Flag(cmd, "seed", &cfg.Seed, flagSeed)
	applyStringFlag(cmd, "log-file", &cfg.LogFile, flagLogFile)
	applyStringFlag(cmd, "log-level", &cfg.LogLevel, flagLogLevel)

	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func applyStringFlag(cmd *cobra.Command, name string, target *string, value string) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func applyIntFlag(cmd *cobra.Command, name string, target *int, value int) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func applyInt64Flag(cmd *cobra.Command, name string, target *int64, value int64) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func newSelector(cfg model.Config) *source.Selector {
	if cfg.Seed != 0 {
		return source.NewSeeded(cfg.Seed)
	}
	return source.New()
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typetest configuration
# Uncomment a value to enable it. TYPETEST_* variables and CLI flags override config values.

[session]
# duration = %d            # Test duration in seconds: 60, 120 or 180
# words-per-line = %d       # Words shown per line
# texts = %q  # One source text per line
# seed = 0                 # Fixed seed for text selection (0: random)

[log]
# file = %q
# level = %q
`,
		defaultDuration,
		defaultWordsPerLine,
		config.DefaultTextsPath(),
		config.DefaultLogPath(),
		defaultLogLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if !model.ValidDuration(cfg.Duration) {
		return fmt.Errorf("--duration must be one of %v", model.Durations)
	}
	if cfg.WordsPerLine <= 0 {
		return fmt.Errorf("--words-per-line must be > 0")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}
