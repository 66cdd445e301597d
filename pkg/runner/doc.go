/*
Package runner implements playback of a completed step log.

The sort engine finishes its work before returning; the runner is the only
part of the module with a notion of time. A Player walks the steps one frame
at a time at a configurable interval and hands each frame to a pluggable
FrameHandler. Pausing, single-stepping and changing speed only move the
replay cursor; they never touch the finished computation.

# Key Components

  - Player: Timed cursor over []domain.Step with Pause/Resume/Step/SetInterval.
  - FrameHandler: Decouples how a frame is presented (text, JSON, ...).
  - TextHandler: Bar chart frames plus a closing stats summary.
  - JSONHandler: One NDJSON object per frame, optionally as diffs.
  - Controls: Line-based keyboard controls bound to a Player.

# Usage

	res := sortscope.New().RunValues(ctx, "quick", values)

	p := runner.NewPlayer(
		runner.WithInterval(50*time.Millisecond),
		runner.WithHandler(runner.NewTextHandler(os.Stdout)),
	)
	if _, err := p.Play(ctx, res.Steps); err != nil {
		log.Fatal(err)
	}
*/
package runner
