package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/termbg/internal/config"
	"github.com/dkoosis/termbg/internal/logging"
	"github.com/dkoosis/termbg/pkg/render"
	"github.com/dkoosis/termbg/pkg/report"
	"github.com/dkoosis/termbg/pkg/termbg"
)

// Exit codes.
const (
	exitOK    = 0
	exitProbe = 1
	exitUsage = 2
)

// app carries the state shared by all commands of one invocation.
type app struct {
	stdout, stderr io.Writer

	flags config.CliFlags
	cfg   *config.ResolvedConfig
	log   *slog.Logger
	close io.Closer

	// newProber builds the prober once logging is set up.
	newProber func(log *slog.Logger) report.Prober

	code int
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		code:   exitOK,
		newProber: func(log *slog.Logger) report.Prober {
			return termbg.New(termbg.WithLogger(log))
		},
	}
}

func (a *app) execute(args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.Execute()
	if a.close != nil {
		_ = a.close.Close()
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "termbg: %v\n", err)
		return exitUsage
	}
	return a.code
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "termbg",
		Short: "Detect the terminal background color and theme",
		Long: `termbg asks the terminal for its background color with an OSC 11 query,
measures the round-trip latency of a status query, and classifies the
background as dark or light. When the terminal cannot be asked, the
COLORFGBG environment variable is used instead.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runReport,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.flags.ConfigPath, "config", "", "config file (default ./"+config.FileName+" or user config dir)")
	f.DurationVar(&a.flags.Timeout, "timeout", 0, "color probe timeout (default "+config.DefaultTimeout+")")
	f.DurationVar(&a.flags.LatencyTimeout, "latency-timeout", 0, "latency probe timeout (default "+config.DefaultLatencyTimeout+")")
	f.StringVar(&a.flags.Format, "format", config.DefaultFormat, "report format: auto, terminal, plain, json")
	f.StringVar(&a.flags.Style, "style", config.DefaultStyle, "terminal style: default, mono")
	f.BoolVar(&a.flags.NoColor, "no-color", false, "disable colored output")
	f.StringVar(&a.flags.LogFile, "log-file", "", "write debug logs to this file")
	f.StringVar(&a.flags.LogLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")

	root.AddCommand(
		a.newColorCmd(),
		a.newThemeCmd(),
		a.newLatencyCmd(),
		a.newFamilyCmd(),
		newVersionCmd(),
	)
	return root
}

// setup resolves configuration and the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	changed := cmd.Flags().Changed
	a.flags.TimeoutSet = changed("timeout")
	a.flags.LatencyTimeoutSet = changed("latency-timeout")
	a.flags.FormatSet = changed("format")
	a.flags.StyleSet = changed("style")
	a.flags.NoColorSet = changed("no-color")
	a.flags.LogFileSet = changed("log-file")
	a.flags.LogLevelSet = changed("log-level")

	cfg, err := config.Resolve(a.flags)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg

	log, closer, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	a.log, a.close = log, closer
	a.log.Debug("config resolved",
		"file", cfg.ConfigFile,
		"timeout", cfg.Timeout,
		"latency_timeout", cfg.LatencyTimeout,
		"format", cfg.Format,
		"sources", cfg.Sources)
	return nil
}

func (a *app) prober() report.Prober {
	return a.newProber(a.log)
}

func (a *app) runReport(_ *cobra.Command, _ []string) error {
	r := report.Collect(a.prober(), report.Timeouts{
		Color:   a.cfg.Timeout,
		Latency: a.cfg.LatencyTimeout,
	})
	a.log.Info("report collected",
		"family", r.Family.String(),
		"latency", r.LatencyProbe.Outcome.String(),
		"color", r.ColorProbe.Outcome.String())

	fmt.Fprint(a.stdout, a.renderer(r).Render(r))
	a.code = r.ExitCode()
	return nil
}

// renderer picks the output format and prepares lipgloss for it.
func (a *app) renderer(r report.Report) render.Renderer {
	switch resolveFormat(a.cfg.Format, a.stdout) {
	case config.FormatJSON:
		return render.NewJSON()
	case config.FormatPlain:
		return render.NewPlain()
	}

	lipgloss.SetColorProfile(colorProfile(a.stdout, a.cfg.NoColor))
	// Set explicitly so adaptive colors never send a second query.
	lipgloss.SetHasDarkBackground(!r.ColorProbe.OK() || r.Theme == termbg.ThemeDark)

	theme := render.ThemeByName(a.cfg.Style)
	if a.cfg.NoColor {
		theme = render.MonoTheme()
	}
	width, _ := termSize(a.stdout)
	return render.NewTerminal(theme, width)
}

// probeFailed prints err and marks the invocation as a probe failure.
func (a *app) probeFailed(err error) {
	fmt.Fprintf(a.stderr, "termbg: %s: %v\n", termbg.OutcomeOf(err), err)
	a.code = exitProbe
}

func resolveFormat(format string, w io.Writer) string {
	if format != config.FormatAuto {
		return format
	}
	if isTTYWriter(w) {
		return config.FormatTerminal
	}
	return config.FormatPlain
}

func colorProfile(w io.Writer, noColor bool) termenv.Profile {
	if noColor || !isTTYWriter(w) {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the width of the terminal behind w, defaulting to 80.
func termSize(w io.Writer) (width int, ok bool) {
	if f, isFile := w.(*os.File); isFile {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw, true
		}
	}
	return 80, false
}
