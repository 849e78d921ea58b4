// Command answerfmt previews how a YAML answer sheet is displayed: question
// labels, formatted answers and grid column counts for a locale and screen
// size.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/goliatone/go-answerfmt/internal/config"
	"github.com/goliatone/go-answerfmt/internal/prompt"
	"github.com/goliatone/go-answerfmt/pkg/fixture"
	"github.com/goliatone/go-answerfmt/pkg/format"
	"github.com/goliatone/go-answerfmt/pkg/itemset"
	"github.com/goliatone/go-answerfmt/pkg/layout"
	"github.com/goliatone/go-answerfmt/pkg/summary"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, prompt.NewSurvey()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("answerfmt: %v", err)
	}
}

type options struct {
	sheet       string
	locale      string
	screen      string
	output      string
	outFormat   string
	itemsets    string
	interactive bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, driver prompt.Driver) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("answerfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.StringVar(&opts.sheet, "sheet", "", "answer sheet YAML path")
	fs.StringVar(&opts.locale, "locale", cfg.Locale, "BCP 47 locale for dates and digit grouping")
	fs.StringVar(&opts.screen, "screen", cfg.Screen.String(), "screen size: small, normal, large or xlarge")
	fs.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	fs.StringVar(&opts.outFormat, "format", "text", "output format: text or html")
	fs.StringVar(&opts.itemsets, "itemsets", "", "itemsets.csv to import for the sheet's media folder")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt for locale and screen size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(opts.sheet) == "" {
		return errors.New("-sheet is required")
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	tag, err := language.Parse(opts.locale)
	if err != nil {
		return fmt.Errorf("locale %q: %w", opts.locale, err)
	}
	screen, err := layout.ParseScreenSize(opts.screen)
	if err != nil {
		return err
	}
	if opts.interactive {
		settings, err := prompt.AskSettings(ctx, driver, prompt.Settings{Locale: tag, Screen: screen})
		if err != nil {
			return err
		}
		tag, screen = settings.Locale, settings.Screen
	}

	sheet, err := fixture.Load(opts.sheet)
	if err != nil {
		return err
	}

	store, err := itemset.Open(cfg.ItemsetsDB)
	if err != nil {
		return err
	}
	defer store.Close()

	if opts.itemsets != "" {
		file, err := os.Open(opts.itemsets)
		if err != nil {
			return fmt.Errorf("open itemsets: %w", err)
		}
		n, err := store.Import(ctx, sheet.Form.MediaFolder, file)
		_ = file.Close()
		if err != nil {
			return err
		}
		logger.Info("itemsets imported", slog.Int("items", n), slog.String("media_folder", sheet.Form.MediaFolder))
	}

	formatter := format.New(
		format.WithLocale(tag),
		format.WithItemLookup(store.Lookup(logger)),
		format.WithLogger(logger),
	)
	resolver := layout.New(layout.WithLogger(logger))
	rows := summary.Build(sheet.Questions, sheet.Form, formatter, resolver, screen)

	out := stdout
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		out = file
	}

	switch opts.outFormat {
	case "text":
		return summary.Text(out, rows)
	case "html":
		return summary.HTML(out, sheet.Form.Title, tag.String(), rows)
	default:
		return fmt.Errorf("unknown format %q", opts.outFormat)
	}
}
