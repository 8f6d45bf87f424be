// Package main provides the CLI entrypoint for mecano.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/mecano/internal/config"
	"github.com/verte-zerg/mecano/internal/model"
	"github.com/verte-zerg/mecano/internal/picker"
	"github.com/verte-zerg/mecano/internal/session"
	"github.com/verte-zerg/mecano/internal/sound"
	"github.com/verte-zerg/mecano/internal/source"
	"github.com/verte-zerg/mecano/internal/stats"
	"github.com/verte-zerg/mecano/internal/wordlist"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	sessionMode  string
	sessionFile  string
	sessionTime  int
	sessionRate  int
	sessionWidth int
	sessionLines int
	sessionSound bool
	sessionPick  bool
)

var (
	listNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	listMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mecano",
		Short:         "Terminal typing speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runSessionCmd,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&sessionMode, "mode", "m", config.DefaultMode, "word source: "+model.ModeNames())
	flags.StringVarP(&sessionFile, "file", "f", config.DefaultFile, "word file name or path")
	flags.IntVarP(&sessionTime, "time", "t", config.DefaultTimeSecs, "session length in seconds")
	flags.IntVarP(&sessionRate, "rate", "r", config.DefaultRate, "screen refreshes per second")
	flags.IntVarP(&sessionWidth, "width", "w", config.DefaultWidth, "viewport width in columns")
	flags.IntVarP(&sessionLines, "lines", "l", config.DefaultLines, "visible lines of text")
	flags.BoolVar(&sessionSound, "sound", false, "click on mistyped keys")
	flags.BoolVar(&sessionPick, "pick", false, "choose the word list interactively")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newDictsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func runSessionCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &sessionMode, fileCfg.Session.Mode)
	applyStringConfig(cmd, "file", &sessionFile, fileCfg.Session.File)
	applyIntConfig(cmd, "time", &sessionTime, fileCfg.Session.Time)
	applyIntConfig(cmd, "rate", &sessionRate, fileCfg.Session.Rate)
	applyIntConfig(cmd, "width", &sessionWidth, fileCfg.Session.Width)
	applyIntConfig(cmd, "lines", &sessionLines, fileCfg.Session.Lines)
	applyBoolConfig(cmd, "sound", &sessionSound, fileCfg.Session.Sound)

	mode, err := model.ParseMode(sessionMode)
	if err != nil {
		return err
	}
	cfg := model.Config{
		Mode:     mode,
		File:     sessionFile,
		Width:    sessionWidth,
		Lines:    sessionLines,
		Rate:     sessionRate,
		Duration: time.Duration(sessionTime) * time.Second,
		Theme:    config.ResolveTheme(fileCfg.Theme),
		Sound:    sessionSound,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if sessionPick {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("--pick needs an interactive terminal")
		}
		chosen, ok, err := pickDictionary()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		cfg.File = chosen
	}

	words, err := loadWords(cfg.File, cfg.Width)
	if err != nil {
		return err
	}
	src, err := source.New(cfg.Mode, words)
	if err != nil {
		return fmt.Errorf("failed to build word source: %w", err)
	}

	player, err := sound.Open(cfg.Sound)
	if err != nil {
		logErrf("sound disabled: %v\n", err)
	}
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := session.RunTerminal(ctx, cfg, src, session.WithPlayer(player))
	if err != nil {
		return fmt.Errorf("failed to run session: %w", err)
	}
	return stats.RenderSummary(cmd.OutOrStdout(), sum)
}

// loadWords resolves name against the search path and keeps the words that
// fit the viewport. The embedded list is used when the default name does
// not resolve to a file.
func loadWords(name string, width int) ([]string, error) {
	keep := wordlist.FilterMaxWidth(width)
	path, err := config.ResolveWordFile(name)
	if err != nil {
		if strings.TrimSpace(name) != wordlist.DefaultName {
			return nil, wordFileError(name, err)
		}
		words := wordlist.Filter(wordlist.DefaultWords(), keep)
		if len(words) == 0 {
			return nil, fmt.Errorf("%w: no word of %s fits the viewport", wordlist.ErrNoWords, name)
		}
		return words, nil
	}
	words, err := wordlist.LoadFiltered(path, keep)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	return words, nil
}

func wordFileError(name string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		"searched:",
	}
	for _, candidate := range config.WordFileCandidates(name) {
		lines = append(lines, "  "+candidate)
	}
	lines = append(lines, "Run: mecano dicts")
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func dictionaryEntries() ([]picker.Entry, error) {
	dicts, err := config.ListDictionaries()
	if err != nil {
		return nil, err
	}
	count := func(path string) (int, error) {
		words, err := wordlist.LoadWords(path)
		if err != nil {
			return 0, err
		}
		return len(words), nil
	}
	return picker.FromDictionaries(dicts, wordlist.DefaultName, len(wordlist.DefaultWords()), count), nil
}

// pickDictionary returns the file name or path of the chosen dictionary.
func pickDictionary() (string, bool, error) {
	entries, err := dictionaryEntries()
	if err != nil {
		return "", false, err
	}
	chosen, ok, err := picker.Run(entries, tea.WithAltScreen())
	if err != nil || !ok {
		return "", false, err
	}
	if chosen.Path == "" {
		return chosen.Name, true, nil
	}
	return chosen.Path, true, nil
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
	if err := ensureConfigFile(path); err != nil {
		return err
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

// ensureConfigFile writes the commented template unless a file exists.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.DefaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List word source modes",
		Args:  cobra.NoArgs,
		RunE:  runModesCmd,
	}
}

func runModesCmd(cmd *cobra.Command, _ []string) error {
	for _, mode := range model.Modes() {
		line := listNameStyle.Render(fmt.Sprintf("%-12s", mode.String())) + listMutedStyle.Render(modeDescription(mode))
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func modeDescription(mode model.Mode) string {
	switch mode {
	case model.ModeFile:
		return "replay the words of the file in order"
	case model.ModeDictionary:
		return "draw words from the file at random"
	default:
		return ""
	}
}

func newDictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dicts",
		Short: "List available dictionaries",
		Args:  cobra.NoArgs,
		RunE:  runDictsCmd,
	}
}

func runDictsCmd(cmd *cobra.Command, _ []string) error {
	entries, err := dictionaryEntries()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), dictionaryLine(entry)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func dictionaryLine(entry picker.Entry) string {
	words := "? words"
	if entry.Words >= 0 {
		words = fmt.Sprintf("%d words", entry.Words)
	}
	location := entry.Path
	if location == "" {
		location = "built in"
	}
	return listNameStyle.Render(fmt.Sprintf("%-20s", entry.Name)) +
		listMutedStyle.Render(fmt.Sprintf("%-12s %s", words, location))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "mecano %s\n", version)
			return err
		},
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
