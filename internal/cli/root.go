package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"calsheet/config"
	"calsheet/internal/calendar"
	"calsheet/internal/export"
	"calsheet/internal/i18n"
	"calsheet/internal/logging"
	"calsheet/internal/ui"
	"calsheet/internal/ui/components"
)

// ErrAborted is returned when the picker is quit with ctrl+c.
var ErrAborted = errors.New("aborted")

// ErrNoTerminal is returned when stdin is not an interactive terminal.
var ErrNoTerminal = errors.New("calsheet needs an interactive terminal")

var (
	flagDate   string
	flagTitle  string
	flagFormat string
	flagOutput string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "calsheet",
	Short: "Pick a target date from a calendar in your terminal",
	Long: `calsheet shows the selected date and opens a calendar sheet to change it.
Past dates cannot be picked. The final date is printed when you quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker(cmd.OutOrStdout())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&flagDate, "date", "d", "", "initial date (YYYY-MM-DD), defaults to today")
	rootCmd.Flags().StringVarP(&flagTitle, "title", "t", "", "sheet title (overrides config)")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "output format: text, iso, json or ics (overrides config)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the result to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// pickerOptions is everything runPicker resolves before starting the TUI.
type pickerOptions struct {
	cfg     config.Config
	initial time.Time
	format  export.Format
}

// resolveOptions merges config and flags and validates them.
func resolveOptions(cfg config.Config, clock calendar.Clock) (pickerOptions, error) {
	if flagTitle != "" {
		cfg.Title = flagTitle
	}
	if flagFormat != "" {
		cfg.DateFormat = flagFormat
	}

	format, err := export.ParseFormat(cfg.DateFormat)
	if err != nil {
		return pickerOptions{}, err
	}

	now := clock.Now()
	initial := calendar.StartOfDay(now)
	if flagDate != "" {
		initial, err = parseDate(flagDate, now.Location())
		if err != nil {
			return pickerOptions{}, err
		}
		if err := calendar.ValidateSelectable(initial, now); err != nil {
			return pickerOptions{}, fmt.Errorf("--date %s: %w", flagDate, err)
		}
	}

	return pickerOptions{cfg: cfg, initial: initial, format: format}, nil
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

func runPicker(stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog := setupLogging()
	if closeLog != nil {
		defer closeLog.Close()
	}

	if err := i18n.Init(cfg.Language); err != nil {
		// Non-fatal: UI falls back to message IDs
		slog.Warn("i18n initialization failed", "error", err)
	}
	if !components.ApplyTheme(cfg.Theme) {
		slog.Warn("unknown theme, using default", "theme", cfg.Theme)
	}

	clock := calendar.RealClock{}
	opts, err := resolveOptions(cfg, clock)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNoTerminal
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	// Keep stdout clean for the result when it is piped
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		programOpts = append(programOpts, tea.WithOutput(os.Stderr))
	}

	slog.Info("picker starting",
		"initial", opts.initial.Format(time.DateOnly),
		"format", string(opts.format))

	p := tea.NewProgram(ui.NewApp(&opts.cfg, opts.initial, clock), programOpts...)
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	app, ok := m.(ui.App)
	if !ok || app.Aborted {
		return ErrAborted
	}

	title := opts.cfg.Title
	if title == "" {
		title = i18n.T("sheet.default_title")
	}
	return writeResult(stdout, opts.format, export.Selection{Title: title, Date: app.Selected()}, clock.Now())
}

func writeResult(stdout io.Writer, format export.Format, sel export.Selection, now time.Time) error {
	if flagOutput == "" {
		return export.Write(stdout, format, sel, now)
	}

	f, err := os.OpenFile(flagOutput, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if err := export.Write(f, format, sel, now); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func setupLogging() io.Closer {
	dir, err := config.GetConfigDir()
	if err != nil {
		return nil
	}
	closer, err := logging.Setup(dir, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return nil
	}
	return closer
}
