package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/sortscope/pkg/domain"
)

// LoggingHooks logs run start at debug and run finish at info.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *domain.RunEvent) {
			logger.DebugContext(ctx, "run_start",
				"algorithm", e.Algorithm,
				"requested", e.Requested,
				"size", e.Size,
			)
		},
		OnRunFinish: func(ctx context.Context, e *domain.RunEvent) {
			logger.InfoContext(ctx, "run_finish",
				"algorithm", e.Algorithm,
				"fallback", e.Fallback,
				"size", e.Size,
				"steps", e.Steps,
				"comparisons", e.Stats.Comparisons,
				"swaps", e.Stats.Swaps,
				"duration", e.Duration,
			)
		},
	}
}

// Combine merges hooks so every callback runs in argument order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var starts, finishes []func(context.Context, *domain.RunEvent)
	for _, h := range hooks {
		if h.OnRunStart != nil {
			starts = append(starts, h.OnRunStart)
		}
		if h.OnRunFinish != nil {
			finishes = append(finishes, h.OnRunFinish)
		}
	}
	return domain.LifecycleHooks{
		OnRunStart:  fanOut(starts),
		OnRunFinish: fanOut(finishes),
	}
}

func fanOut(fns []func(context.Context, *domain.RunEvent)) func(context.Context, *domain.RunEvent) {
	if len(fns) == 0 {
		return nil
	}
	return func(ctx context.Context, e *domain.RunEvent) {
		for _, fn := range fns {
			fn(ctx, e)
		}
	}
}
