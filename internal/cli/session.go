package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/sortscope/internal/config"
	"github.com/aretw0/sortscope/internal/presentation/tui"
	"github.com/aretw0/sortscope/pkg/domain"
	"github.com/aretw0/sortscope/pkg/generator"
	"github.com/aretw0/sortscope/pkg/runner"
)

// Streams are the standard streams of a command.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// RunSession sorts the configured input and plays the resulting steps.
// Stopping playback early (signal or quit command) is not an error.
func RunSession(ctx context.Context, cfg config.Config, opts RunOptions, streams Streams) error {
	logger := NewLogger(streams.Err, cfg, opts.Debug)
	engine := NewEngine(cfg, logger, opts.Debug)

	input, err := BuildInput(cfg, opts.Values)
	if err != nil {
		return err
	}

	res := engine.Run(ctx, cfg.Algorithm, input)
	desc, err := engine.Describe(string(res.Algorithm))
	if err != nil {
		return fmt.Errorf("describe %s: %w", res.Algorithm, err)
	}

	player, interactive := newPlayer(cfg, opts, streams, desc)

	sm := runner.NewSignalManager(ctx)
	defer sm.Stop()
	playCtx, cancel := context.WithCancel(sm.Context())
	defer cancel()

	if interactive {
		controls := runner.NewControls(streams.In, streams.Err, player, cancel)
		go func() {
			if err := controls.Run(playCtx); err != nil {
				logger.Warn("Controls stopped", "err", err)
			}
		}()
	}

	if _, err := player.Play(playCtx, res.Steps); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}

// newPlayer picks the frame handler for the output mode.
func newPlayer(cfg config.Config, opts RunOptions, streams Streams, desc domain.Descriptor) (*runner.Player, bool) {
	if cfg.Format == config.FormatJSON {
		return runner.NewPlayer(
			runner.WithInterval(0),
			runner.WithHandler(runner.NewJSONHandler(streams.Out, cfg.Compact)),
		), false
	}

	if opts.Headless {
		return runner.NewPlayer(
			runner.WithInterval(0),
			runner.WithHandler(runner.NewTextHandler(streams.Out, runner.WithTitle(desc.Name), runner.WithQuiet(true))),
		), false
	}

	bars := tui.NewBars(streams.Out, cfg.Color)
	if !opts.NoBanner {
		tui.PrintBanner(streams.Out, bars.Profile())
	}
	textOpts := []runner.TextHandlerOption{
		runner.WithTitle(fmt.Sprintf("%s  time %s  space %s", desc.Name, desc.TimeComplexity, desc.SpaceComplexity)),
		runner.WithTextRenderer(bars.Render),
	}
	if tui.IsTerminal(streams.Out) {
		textOpts = append(textOpts, runner.WithClear(bars.Clear))
	}
	return runner.NewPlayer(
		runner.WithInterval(cfg.Speed),
		runner.WithHandler(runner.NewTextHandler(streams.Out, textOpts...)),
	), opts.Interactive
}

// BuildInput parses explicit values or generates cfg.Size random values.
func BuildInput(cfg config.Config, values string) ([]domain.Element, error) {
	if strings.TrimSpace(values) != "" {
		parsed, err := generator.ParseValues(values)
		if err != nil {
			return nil, err
		}
		if err := generator.DefaultLimits.Check(parsed); err != nil {
			return nil, err
		}
		return generator.FromValues(parsed), nil
	}
	return generator.Random(generator.NewRand(cfg.Seed), cfg.Size, cfg.MinValue, cfg.MaxValue), nil
}

// Shuffle returns a shuffled copy of the explicit values, or a fresh random
// array when none are given.
func Shuffle(cfg config.Config, values string) ([]domain.Element, error) {
	rng := generator.NewRand(cfg.Seed)
	if strings.TrimSpace(values) == "" {
		return generator.Random(rng, cfg.Size, cfg.MinValue, cfg.MaxValue), nil
	}
	elems, err := BuildInput(cfg, values)
	if err != nil {
		return nil, err
	}
	return generator.Shuffle(rng, elems), nil
}

// JoinValues formats element values as a comma separated list.
func JoinValues(elems []domain.Element) string {
	parts := make([]string, len(elems))
	for i, v := range domain.Values(elems) {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}
