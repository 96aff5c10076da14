package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/wildfunctions/recursive_art/pkg/engine"
	"github.com/wildfunctions/recursive_art/pkg/pool"
	"github.com/wildfunctions/recursive_art/pkg/sink"
	"github.com/wildfunctions/recursive_art/pkg/strategy"
)

const defaultOutput = "example1.png"

type options struct {
	config string
	recipe string
	from   string
}

func newFlagSet(cfg *engine.Config, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("recursive_art", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: recursive_art [flags] [output file (%s)]\n\n", strings.Join(sink.Formats(), ", "))
		fs.PrintDefaults()
	}
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height in pixels")
	fs.IntVar(&cfg.MinDepth, "mindepth", cfg.MinDepth, "min tree depth")
	fs.IntVar(&cfg.MaxDepth, "maxdepth", cfg.MaxDepth, "max tree depth")
	fs.Float64Var(&cfg.Extend, "extend", cfg.Extend, "probability of growing past mindepth (0 = stop at mindepth)")
	fs.StringVar(&cfg.Pool, "pool", cfg.Pool, "node pool ("+strings.Join(pool.Names(), ", ")+")")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of parallel row workers")
	fs.StringVar(&cfg.Strategy, "vary", cfg.Strategy, "variation strategy applied before rendering ("+strings.Join(strategy.Names(), ", ")+")")
	fs.IntVar(&cfg.Variations, "variations", cfg.Variations, "rounds of variation")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "report format (text, json)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "debug logging to stderr")
	fs.StringVar(&opts.config, "config", opts.config, "TOML or YAML config file; flags override it")
	fs.StringVar(&opts.recipe, "recipe", opts.recipe, "write a JSON recipe of the image to this file")
	fs.StringVar(&opts.from, "from", opts.from, "render the channels of a JSON recipe instead of building new ones")
	return fs
}

func main() {
	// stdout carries only the report; status lines go to stderr.
	pterm.SetDefaultOutput(os.Stderr)
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		pterm.DisableColor()
	}
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	info := pterm.Info.WithWriter(stderr)

	cfg := engine.DefaultConfig()
	var opts options
	fs := newFlagSet(&cfg, &opts)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.config != "" {
		cfg = engine.DefaultConfig()
		if err := engine.LoadConfig(opts.config, &cfg); err != nil {
			return err
		}
		if err := newFlagSet(&cfg, &opts).Parse(args); err != nil {
			return err
		}
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected one output file, got %d arguments", fs.NArg())
	}
	output := defaultOutput
	if fs.NArg() == 1 {
		output = fs.Arg(0)
	}

	if cfg.Verbose {
		engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var (
		recipe   engine.Channels
		haveFrom = opts.from != ""
	)
	if haveFrom {
		f, err := os.Open(opts.from)
		if err != nil {
			return err
		}
		ch, prev, err := engine.ReadRecipe(f)
		f.Close()
		if err != nil {
			return err
		}
		recipe = ch
		// keep the recipe's seed unless one was given, so the report
		// names the seed the channels came from
		if cfg.Seed == 0 {
			cfg.Seed = prev.Seed
		}
	}

	e, err := engine.New(cfg)
	if err != nil {
		return err
	}
	s, err := sink.NewImage(output, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var report engine.Report
	if haveFrom {
		info.Println(fmt.Sprintf("Rendering recipe %s", opts.from))
		report, err = e.GenerateFrom(ctx, s, recipe, cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
	} else {
		report, err = e.Generate(ctx, s, cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
	}

	if opts.recipe != "" {
		if err := writeRecipe(opts.recipe, report); err != nil {
			return err
		}
		info.Println(fmt.Sprintf("Wrote recipe %s", opts.recipe))
	}

	switch cfg.Format {
	case "json":
		if err := engine.WriteJSONReport(stdout, report); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	default:
		engine.WriteTextReport(stdout, report)
	}
	info.Println(fmt.Sprintf("Wrote %s (seed %d)", output, report.Seed))
	return nil
}

func writeRecipe(path string, report engine.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return engine.WriteJSONReport(f, report)
}
