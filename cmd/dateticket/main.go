package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/naveenspark/dateticket/internal/browser"
	"github.com/naveenspark/dateticket/internal/config"
	"github.com/naveenspark/dateticket/internal/photo"
	"github.com/naveenspark/dateticket/internal/pipeline"
	"github.com/naveenspark/dateticket/internal/tui"
	"github.com/naveenspark/dateticket/pkg/domain"
	"github.com/naveenspark/dateticket/pkg/ticket"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "version", "-v":
			fmt.Println("dateticket " + version)
			return nil
		case "help", "--help", "-h":
			printHelp(os.Stdout)
			return nil
		case "render":
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return runRender(ctx, args[1:], os.Stdout, os.Stderr, time.Now())
		}
	}
	return runTUI(args)
}

// renderFlags holds the render subcommand's flag values. Only flags the
// user set override the config file.
type renderFlags struct {
	name, question, date, location, title, photo string
	outDir, pngName, pdfName, format             string
	margin                                       float64
	open, copyCode                               bool
	seed                                         uint64
	configPath, logLevel                         string
}

func newRenderFlagSet(f *renderFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("dateticket render", pflag.ContinueOnError)
	fs.StringVarP(&f.name, "name", "n", "", "recipient name")
	fs.StringVarP(&f.question, "question", "q", "", "question text")
	fs.StringVarP(&f.date, "date", "d", "", `target date as YYYY-MM-DDTHH:MM in GMT-6, or "tbc"`)
	fs.StringVarP(&f.location, "location", "l", "", "location (default Monterrey)")
	fs.StringVar(&f.title, "title", "", "header title")
	fs.StringVarP(&f.photo, "photo", "p", "", "photo file path or http(s) URL")
	fs.StringVarP(&f.outDir, "out-dir", "o", "", "output directory")
	fs.StringVar(&f.pngName, "png", "", "PNG file name (default "+ticket.DefaultPNGName+")")
	fs.StringVar(&f.pdfName, "pdf", "", "PDF file name (default "+ticket.DefaultPDFName+")")
	fs.StringVarP(&f.format, "format", "f", "both", "what to write: png, pdf or both")
	fs.Float64Var(&f.margin, "pdf-margin", ticket.DefaultPDFMargin, "PDF page margin in points")
	fs.BoolVar(&f.open, "open", false, "open the result in the default viewer")
	fs.BoolVar(&f.copyCode, "copy-code", false, "copy the ticket code to the clipboard")
	fs.Uint64Var(&f.seed, "seed", 0, "seed for reproducible hearts and code")
	fs.StringVar(&f.configPath, "config", "", "config file (default $"+config.EnvVar+" or ~/.dateticket/config.yaml)")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.SortFlags = false
	return fs
}

// applyFlags copies every flag the user set onto cfg.
func applyFlags(fs *pflag.FlagSet, f *renderFlags, cfg *config.Config) error {
	strs := []struct {
		flag string
		dst  *string
		val  string
	}{
		{"name", &cfg.Recipient, f.name},
		{"question", &cfg.Question, f.question},
		{"date", &cfg.TargetDate, f.date},
		{"location", &cfg.Location, f.location},
		{"title", &cfg.Title, f.title},
		{"photo", &cfg.Photo, f.photo},
		{"out-dir", &cfg.Output.Dir, f.outDir},
		{"png", &cfg.Output.PNGName, f.pngName},
		{"pdf", &cfg.Output.PDFName, f.pdfName},
		{"log-level", &cfg.LogLevel, f.logLevel},
	}
	for _, s := range strs {
		if fs.Changed(s.flag) {
			*s.dst = s.val
		}
	}
	if fs.Changed("pdf-margin") {
		cfg.Output.PDFMargin = f.margin
	}
	return cfg.Validate()
}

// pdfOptions carries the configured margin through as set, so 0 stays 0.
func pdfOptions(cfg *config.Config, spec domain.TicketSpec) ticket.PDFOptions {
	return ticket.PDFOptions{
		Margin:  ticket.PageMargin(cfg.Output.PDFMargin),
		Title:   spec.DisplayTitle(),
		Creator: "dateticket " + version,
	}
}

func loadConfig(flagPath string) (*config.Config, error) {
	path, err := config.Resolve(flagPath)
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

func newLogger(w io.Writer, level string, json bool) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func runRender(ctx context.Context, args []string, stdout, stderr io.Writer, now time.Time) error {
	var f renderFlags
	fs := newRenderFlagSet(&f)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printRenderHelp(stdout, fs)
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(fs, &f, cfg); err != nil {
		return err
	}
	spec, err := cfg.Spec(now)
	if err != nil {
		return err
	}

	req := pipeline.Request{
		Spec:        spec,
		PhotoSource: cfg.Photo,
		PDF:         pdfOptions(cfg, spec),
	}
	switch strings.ToLower(f.format) {
	case "png":
		req.PNGPath = cfg.PNGPath()
	case "pdf":
		req.PDFPath = cfg.PDFPath()
	case "both", "":
		req.PNGPath = cfg.PNGPath()
		req.PDFPath = cfg.PDFPath()
	default:
		return fmt.Errorf("unknown format %q (want png, pdf or both)", f.format)
	}

	logger, err := newLogger(stderr, cfg.LogLevel, false)
	if err != nil {
		return err
	}
	var copts []ticket.Option
	copts = append(copts, ticket.WithLogger(logger))
	if fs.Changed("seed") {
		copts = append(copts, ticket.WithSeed(f.seed))
	}
	p := pipeline.New(ticket.NewCompositor(copts...), photo.NewLoader(), logger)

	res, exportErr := p.Export(ctx, req)
	if res == nil {
		return exportErr
	}
	printResult(stdout, res)
	if exportErr != nil {
		return exportErr
	}

	if f.copyCode {
		if err := clipboard.WriteAll(res.Ticket.Code); err != nil {
			logger.Warn("copy ticket code failed", "error", err)
		}
	}
	if f.open {
		target := res.PDFPath
		if target == "" {
			target = res.PNGPath
		}
		if err := browser.Open(target); err != nil {
			logger.Warn("open failed", "path", target, "error", err)
		}
	}
	return nil
}

func runTUI(args []string) error {
	var configPath, logOutput, logLevel string
	var seed uint64
	fs := pflag.NewFlagSet("dateticket", pflag.ContinueOnError)
	fs.StringVar(&configPath, "config", "", "config file")
	fs.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	fs.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	fs.Uint64Var(&seed, "seed", 0, "seed for reproducible hearts and code")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(os.Stdout)
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unknown command %q (try: dateticket help)", fs.Arg(0))
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// The alt screen owns stdout, so logs go to a file or nowhere.
	logger := slog.New(slog.DiscardHandler)
	if logOutput != "" {
		lf, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log output: %w", err)
		}
		defer lf.Close() //nolint:errcheck
		if logger, err = newLogger(lf, cfg.LogLevel, true); err != nil {
			return err
		}
	}

	copts := []ticket.Option{ticket.WithLogger(logger)}
	if fs.Changed("seed") {
		copts = append(copts, ticket.WithSeed(seed))
	}
	spec, err := cfg.Spec(time.Now())
	if err != nil {
		return err
	}

	app := tui.NewApp(tui.Options{
		Exporter: pipeline.New(ticket.NewCompositor(copts...), photo.NewLoader(), logger),
		Name:     spec.RecipientName,
		Question: spec.QuestionText,
		Location: cfg.Location,
		Title:    cfg.Title,
		Photo:    cfg.Photo,
		Date:     spec.TargetDate,
		PNGPath:  cfg.PNGPath(),
		PDFPath:  cfg.PDFPath(),
		PDF:      pdfOptions(cfg, spec),
	})

	prog := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
