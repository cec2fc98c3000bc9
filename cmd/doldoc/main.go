package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/muesli/reflow/truncate"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/doldoc"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/doldoc")
}

type options struct {
	themeName   string
	themeFile   string
	width       int
	listThemes  bool
	outPath     string
	boring      bool
	dump        bool
	clearScreen bool
	softWrap    bool
	watch       bool
	logLevel    string
	logFormat   string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	var opts options
	flags := pflag.NewFlagSet("doldoc", pflag.ContinueOnError)
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.StringVar(&opts.themeFile, "theme-file", "", "Load the palette from a YAML or TOML file")
	flags.IntVarP(&opts.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate output without ANSI styling")
	flags.BoolVarP(&opts.dump, "dump", "d", false, "Print the parsed entries instead of rendering")
	flags.BoolVar(&opts.clearScreen, "clear-screen", false, "Clear the terminal when the document contains $CL$")
	flags.BoolVar(&opts.softWrap, "soft-wrap", false, "Break words longer than the output width")
	flags.BoolVar(&opts.watch, "watch", false, "Re-render when an input file changes")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format: text|json")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: doldoc [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, the document is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(argv); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	logger, err := newLogger(opts.logLevel, opts.logFormat, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid logging flags: %v\n", err)
		return 2
	}

	if opts.listThemes {
		printThemes(os.Stdout)
		return 0
	}

	theme, err := resolveTheme(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		printThemes(os.Stderr)
		return 2
	}

	writer, closeOut, err := createOutput(opts.outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	args := flags.Args()
	width := resolveWidth(opts.width)
	render := func() error {
		return renderInputs(args, writer, width, theme, opts, logger)
	}

	if opts.watch {
		if opts.outPath != "" {
			fmt.Fprintln(os.Stderr, "watch: --output is not supported, output goes to stdout")
			return 2
		}
		paths, err := watchPaths(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return 2
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := watchAndRender(ctx, paths, render, logger); err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return 1
		}
		return 0
	}

	if err := render(); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		return 1
	}
	return 0
}

func renderInputs(args []string, w io.Writer, width int, theme doldoc.Theme, opts options, logger *slog.Logger) error {
	reader, closer, err := openInputs(args)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	entries, err := doldoc.ParseReader(reader)
	if err != nil {
		return err
	}
	logger.Debug("parsed document", "entries", len(entries), "width", width, "theme", theme.Name())
	if opts.dump {
		return dumpEntries(w, entries, width)
	}
	return doldoc.RenderEntries(w, entries, width, theme,
		doldoc.WithClearScreen(opts.clearScreen),
		doldoc.WithSoftWrap(opts.softWrap),
	)
}

func dumpEntries(w io.Writer, entries []doldoc.Entry, width int) error {
	for _, e := range entries {
		line := doldoc.Describe(e)
		if width > 0 {
			line = truncate.StringWithTail(line, uint(width), "…")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func resolveTheme(opts options) (doldoc.Theme, error) {
	if opts.boring {
		return boringTheme(), nil
	}
	if opts.themeFile != "" {
		return doldoc.LoadThemeFile(normalizePath(opts.themeFile))
	}
	theme, ok := doldoc.ThemeByName(opts.themeName)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", opts.themeName)
	}
	return theme, nil
}

func newLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	handlerOpts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("log format %q: expected text|json", format)
	}
}

func printThemes(w io.Writer) {
	for _, name := range doldoc.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func boringTheme() doldoc.Theme {
	return doldoc.NewTheme("boring", doldoc.Styles{})
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
