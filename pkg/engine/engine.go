package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wildfunctions/recursive_art/pkg/expr"
	"github.com/wildfunctions/recursive_art/pkg/interval"
	"github.com/wildfunctions/recursive_art/pkg/pool"
	"github.com/wildfunctions/recursive_art/pkg/sink"
	"github.com/wildfunctions/recursive_art/pkg/strategy"
)

// Channels holds one expression tree per output color channel.
type Channels struct {
	Red, Green, Blue expr.Node
}

// Trees returns the channels in red, green, blue order.
func (ch Channels) Trees() []expr.Node {
	return []expr.Node{ch.Red, ch.Green, ch.Blue}
}

func channelsOf(trees []expr.Node) Channels {
	return Channels{Red: trees[0], Green: trees[1], Blue: trees[2]}
}

// ChannelNames lists the channels in the order Trees returns them.
var ChannelNames = []string{"red", "green", "blue"}

// Engine builds channel trees and renders them into sinks.
type Engine struct {
	cfg      Config
	pool     pool.Pool
	builder  pool.Builder
	strategy strategy.Strategy
	seed     int64
	rng      *rand.Rand
}

// New creates a new engine from the given config.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := pool.Get(cfg.Pool)
	if err != nil {
		return nil, err
	}
	var s strategy.Strategy
	if cfg.Strategy != "" {
		if s, err = strategy.Get(cfg.Strategy); err != nil {
			return nil, err
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	return &Engine{
		cfg:      cfg,
		pool:     p,
		builder:  pool.Builder{Pool: p, Extend: cfg.Extend},
		strategy: s,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Seed returns the seed of the engine's random source.
func (e *Engine) Seed() int64 { return e.seed }

// Channels builds three independent trees, red first, from the engine's
// random source.
func (e *Engine) Channels() (Channels, error) {
	trees := make([]expr.Node, len(ChannelNames))
	for i := range trees {
		t, err := e.builder.Build(e.rng, e.cfg.MinDepth, e.cfg.MaxDepth)
		if err != nil {
			return Channels{}, err
		}
		Logger().Debug("built channel", "channel", ChannelNames[i], "nodes", t.NodeCount(), "depth", t.Depth())
		trees[i] = t
	}
	return channelsOf(trees), nil
}

// Vary applies the configured strategy cfg.Variations times. Without a
// strategy it returns ch unchanged.
func (e *Engine) Vary(ch Channels) Channels {
	if e.strategy == nil {
		return ch
	}
	trees := ch.Trees()
	for i := 0; i < e.cfg.Variations; i++ {
		trees = e.strategy.Vary(trees, e.pool, e.rng)
	}
	Logger().Debug("varied channels", "strategy", e.strategy.Name(), "rounds", e.cfg.Variations)
	return channelsOf(trees)
}

// Generate builds fresh channels and renders them into s, then finalizes s.
func (e *Engine) Generate(ctx context.Context, s sink.Sink, width, height int) (Report, error) {
	if err := checkSize(width, height); err != nil {
		return Report{}, err
	}
	ch, err := e.Channels()
	if err != nil {
		return Report{}, err
	}
	return e.GenerateFrom(ctx, s, ch, width, height)
}

// GenerateFrom varies ch if a strategy is configured, renders it into s
// and finalizes s. Finalize is skipped if any pixel write fails.
func (e *Engine) GenerateFrom(ctx context.Context, s sink.Sink, ch Channels, width, height int) (Report, error) {
	if err := checkSize(width, height); err != nil {
		return Report{}, err
	}
	for i, t := range ch.Trees() {
		if err := expr.Validate(t); err != nil {
			return Report{}, fmt.Errorf("engine: %s channel: %w", ChannelNames[i], err)
		}
	}
	ch = e.Vary(ch)
	Logger().Info("generating", "width", width, "height", height, "seed", e.seed, "pool", e.pool.Name(), "workers", e.workers())
	for i, t := range ch.Trees() {
		Logger().Debug("channel", "channel", ChannelNames[i], "expr", t.String())
	}

	start := time.Now()
	written, err := e.Render(ctx, s, ch, width, height)
	if err != nil {
		return Report{}, err
	}
	if err := s.Finalize(); err != nil {
		return Report{}, err
	}
	elapsed := time.Since(start)
	Logger().Info("generated", "pixels", written, "elapsed", elapsed)

	r := newReport(e.cfg, e.seed, ch, width, height)
	r.Pixels = written
	r.Elapsed = elapsed
	if p, ok := s.(interface{ Path() string }); ok {
		r.Output = p.Path()
	}
	return r, nil
}

func checkSize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("engine: image size %dx%d: %w", width, height, ErrInvalidConfig)
	}
	return nil
}

// Render evaluates ch at every pixel of a width×height grid and writes the
// quantized colors to s, one row per job on up to cfg.Workers goroutines.
// It returns the number of pixels written. The first error stops the
// remaining rows and is returned as is.
func (e *Engine) Render(ctx context.Context, s sink.Sink, ch Channels, width, height int) (int64, error) {
	var written atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())

	for j := 0; j < height && gctx.Err() == nil; j++ {
		j := j
		g.Go(func() error {
			return renderRow(gctx, s, ch, j, width, height, &written)
		})
	}
	if err := g.Wait(); err != nil {
		return written.Load(), err
	}
	if err := ctx.Err(); err != nil {
		return written.Load(), err
	}
	return written.Load(), nil
}

func renderRow(ctx context.Context, s sink.Sink, ch Channels, j, width, height int, written *atomic.Int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	y, err := interval.Remap(float64(j), 0, float64(height), -1, 1)
	if err != nil {
		return err
	}
	for i := 0; i < width; i++ {
		x, err := interval.Remap(float64(i), 0, float64(width), -1, 1)
		if err != nil {
			return err
		}
		c := sink.RGB{
			R: interval.ColorMap(ch.Red.Eval(x, y)),
			G: interval.ColorMap(ch.Green.Eval(x, y)),
			B: interval.ColorMap(ch.Blue.Eval(x, y)),
		}
		if err := s.Set(i, j, c); err != nil {
			return err
		}
		written.Add(1)
	}
	return nil
}

func (e *Engine) workers() int {
	if e.cfg.Workers <= 0 {
		return 1
	}
	return e.cfg.Workers
}

// ParseChannels parses one expression per channel, red first.
func ParseChannels(red, green, blue string) (Channels, error) {
	trees := make([]expr.Node, len(ChannelNames))
	for i, src := range []string{red, green, blue} {
		t, err := expr.Parse(src)
		if err != nil {
			return Channels{}, fmt.Errorf("engine: %s channel: %w", ChannelNames[i], err)
		}
		trees[i] = t
	}
	return channelsOf(trees), nil
}
