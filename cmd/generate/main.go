// Command generate produces one reading passage and writes its printable
// HTML document to a file or stdout. With -worksheet the passage is followed
// by a worksheet document written next to it.
//
// Example:
//
//	generate -theme "History" -type "Essay" -difficulty Medium -mode teacher -out passage.html
//
// Exit codes: 0 = success, 1 = error, 2 = invalid flags.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/michaelwsd/lingualift/internal/app"
	"github.com/michaelwsd/lingualift/internal/config"
	"github.com/michaelwsd/lingualift/internal/domain"
	"github.com/michaelwsd/lingualift/internal/render"
	"github.com/michaelwsd/lingualift/internal/service/worksheet"
)

type options struct {
	cfg       domain.GenerationConfig
	mode      domain.PrintMode
	out       string
	worksheet bool
	timeout   time.Duration
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	theme := fs.String("theme", string(domain.ThemeScienceTech), "passage theme")
	topic := fs.String("topic", "", "custom topic; implies the custom theme")
	litType := fs.String("type", string(domain.LiteratureShortStory), "literature type")
	difficulty := fs.String("difficulty", string(domain.DifficultyMedium), "difficulty (Easy or Medium)")
	mode := fs.String("mode", string(domain.PrintStudent), "print mode (student or teacher)")
	out := fs.String("out", "", "output file; stdout when empty")
	withWorksheet := fs.Bool("worksheet", false, "also generate a worksheet (requires -out)")
	timeout := fs.Duration("timeout", 5*time.Minute, "overall deadline")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		cfg: domain.GenerationConfig{
			Theme:          domain.Theme(*theme),
			CustomTopic:    strings.TrimSpace(*topic),
			LiteratureType: domain.LiteratureType(*litType),
			Difficulty:     domain.Difficulty(*difficulty),
		},
		mode:      domain.PrintMode(*mode),
		out:       *out,
		worksheet: *withWorksheet,
		timeout:   *timeout,
	}
	if opts.cfg.CustomTopic != "" {
		opts.cfg.Theme = domain.ThemeCustom
	}
	if err := opts.cfg.Validate(); err != nil {
		return options{}, err
	}
	if !opts.mode.IsValid() {
		return options{}, fmt.Errorf("invalid -mode %q", *mode)
	}
	if opts.worksheet && opts.out == "" {
		return options{}, errors.New("-worksheet requires -out")
	}
	return opts, nil
}

// worksheetPath derives the worksheet file name from the passage file name.
func worksheetPath(out string) string {
	if i := strings.LastIndex(out, "."); i > strings.LastIndexAny(out, `/\`) {
		return out[:i] + "-worksheet" + out[i:]
	}
	return out + "-worksheet"
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		}
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	if err := run(opts, cfg, logger); err != nil {
		logger.Error("generate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(opts options, cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	gens, err := app.NewGenerators(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer gens.Close()

	printer, err := render.NewPrinter()
	if err != nil {
		return fmt.Errorf("printer: %w", err)
	}

	passage, err := gens.Content.GeneratePassage(ctx, opts.cfg)
	if err != nil {
		return err
	}

	var doc bytes.Buffer
	if err := printer.Passage(&doc, passage, opts.mode); err != nil {
		return fmt.Errorf("print passage: %w", err)
	}
	if err := write(opts.out, doc.Bytes()); err != nil {
		return err
	}
	logger.Info("passage written",
		slog.String("title", passage.Title),
		slog.String("out", orStdout(opts.out)),
	)

	if !opts.worksheet {
		return nil
	}

	ws, err := worksheet.NewService(logger, gens.Provider, app.Limits(cfg.LLM)).Generate(ctx, passage, nil)
	if err != nil {
		return err
	}
	doc.Reset()
	if err := printer.Worksheet(&doc, passage, ws, nil, opts.mode); err != nil {
		return fmt.Errorf("print worksheet: %w", err)
	}
	path := worksheetPath(opts.out)
	if err := write(path, doc.Bytes()); err != nil {
		return err
	}
	logger.Info("worksheet written", slog.String("out", path))
	return nil
}

func write(path string, data []byte) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func orStdout(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
