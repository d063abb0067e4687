package main

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ansisenor "github.com/ansi-senor/ansi-senor"
	"github.com/ansi-senor/ansi-senor/internal/config"
	"github.com/ansi-senor/ansi-senor/internal/rusage"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

var AppHelpTemplate = `{{.Name}} - {{.Usage}}

USAGE:
  {{.Name}} [options] command [arguments...]

  Runs the command with color output forced on, echoes its output to the
  terminal as it arrives, and writes an HTML rendition of the capture.
  {{.Name}} exits with the command's own exit code.

OPTIONS:
  {{range .Flags}}{{.}}
  {{end}}
`

// Distinct exit codes for failures of ansi-senor itself, as opposed to the
// child command.
const (
	exitSpawn    = 127
	exitInternal = 125
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()

	cli.AppHelpTemplate = AppHelpTemplate

	app := &cli.App{
		Name:            "ansi-senor",
		Version:         ansisenor.Version(),
		Usage:           "run commands with ANSI color output captured to HTML",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "HTML output `path` (default: under $TMPDIR/ansi-senor)",
			},
			&cli.StringFlag{
				Name:    "theme",
				Aliases: []string{"t"},
				Value:   "dark",
				Usage:   "color theme for HTML output, light or dark",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "config `file` (default: $XDG_CONFIG_HOME/ansi-senor/config.toml)",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "log a resource usage summary to stderr after the run",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

func run(c *cli.Context, log zerolog.Logger) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		return cli.Exit("no command specified", exitInternal)
	}

	theme, err := ansisenor.ParseTheme(c.String("theme"))
	if err != nil {
		return cli.Exit(err.Error(), exitInternal)
	}

	cfg := loadConfig(c, log)
	if !c.IsSet("theme") && cfg.Theme != "" {
		if t, terr := ansisenor.ParseTheme(cfg.Theme); terr == nil {
			theme = t
		} else {
			log.Warn().Err(terr).Msg("ignoring theme from config file")
		}
	}

	result, runErr := ansisenor.Run(c.Context, ansisenor.Command{
		Args: args,
		Env:  cfg.Env,
	})
	if runErr != nil {
		var spawnErr *ansisenor.SpawnError
		if errors.As(runErr, &spawnErr) {
			log.Error().Err(spawnErr).Msg("command failed to start")
			return cli.Exit("", exitSpawn)
		}
		// Partial capture; render what we have.
		log.Warn().Err(runErr).Msg("output capture incomplete")
	}

	printSummary(args, result.Duration)

	outPath := c.String("output")
	if outPath == "" {
		outPath = defaultOutputPath(args, result.Output, cfg.OutputDir)
	}
	if err := writeDocument(outPath, strings.Join(args, " "), result.Output, theme); err != nil {
		log.Error().Err(err).Msg("could not write HTML")
		return cli.Exit("", exitInternal)
	}
	fmt.Printf("Output saved to %s\n", outPath)

	if c.Bool("stats") {
		logStats(log, result)
	}

	if result.ExitCode != 0 {
		return cli.Exit("", result.ExitCode)
	}
	return nil
}

func loadConfig(c *cli.Context, log zerolog.Logger) *config.Config {
	path := c.String("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return &config.Config{}
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring config file")
		return &config.Config{}
	}
	return cfg
}

// printSummary reports the command and its wall-clock time, dimmed when
// stderr is a terminal.
func printSummary(args []string, d time.Duration) {
	line := fmt.Sprintf("❯ %s took %s", strings.Join(args, " "), formatDuration(d))
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		line = "\x1b[2m" + line + "\x1b[0m"
	}
	fmt.Fprintln(os.Stderr, line)
}

func formatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, "")
}

// defaultOutputPath derives a file name from the command line plus a short
// hash of the captured content, under dir (or $TMPDIR/ansi-senor).
func defaultOutputPath(args []string, output []byte, dir string) string {
	sum := sha256.Sum256(output)
	name := strings.Join(args, " ")
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, string(filepath.Separator), "-")
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "ansi-senor")
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%x.html", name, sum[:4]))
}

func writeDocument(path, title string, output []byte, theme ansisenor.Theme) error {
	doc, err := ansisenor.Document(title, output, theme)
	if err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func logStats(log zerolog.Logger, result *ansisenor.Result) {
	ev := log.Info().
		Dur("wall", result.Duration).
		Int("captured_bytes", len(result.Output))
	if ru, err := rusage.Children(); err != nil {
		log.Warn().Err(err).Msg("could not read OS resource usage")
	} else {
		ev = ev.
			Dur("utime", ru.Utime).
			Dur("stime", ru.Stime).
			Int64("max_rss", ru.MaxRSS).
			Int64("minor_faults", ru.MinorFaults).
			Int64("major_faults", ru.MajorFaults)
	}
	ev.Msg("run complete")
}
