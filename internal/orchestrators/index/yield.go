package index

import (
	"context"
	"runtime"
	"time"

	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
	"github.com/KirkDiggler/rpg-alchemy/internal/pkg/clock"
)

// DefaultYieldInterval is the wall-clock work between cooperative yields
const DefaultYieldInterval = 16 * time.Millisecond

// yielder hands the processor back to the scheduler at a fixed interval and
// stops the build once its context is done
type yielder struct {
	clock    clock.Clock
	interval time.Duration
	last     time.Time
	yields   int
}

func newYielder(c clock.Clock, interval time.Duration) *yielder {
	return &yielder{clock: c, interval: interval, last: c.Now()}
}

func (y *yielder) yield(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.FromContext(err, "index build canceled")
	}

	if y.clock.Now().Sub(y.last) < y.interval {
		return nil
	}

	runtime.Gosched()
	y.yields++
	y.last = y.clock.Now()
	return nil
}
