package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

const channelTimeout = 15 * time.Second

// Dispatcher fans a Message out to every configured channel as a detached
// task. Channel failures are logged, never propagated: the HTTP handler that
// accepted the payload has already answered by the time delivery runs.
type Dispatcher struct {
	channels []Channel
	logger   logger.Logger
	wg       sync.WaitGroup
}

func NewDispatcher(log logger.Logger, channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels, logger: log}
}

func (d *Dispatcher) Dispatch(msg Message) {
	for _, ch := range d.channels {
		d.wg.Add(1)
		go func(ch Channel) {
			defer d.wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), channelTimeout)
			defer cancel()

			if err := ch.Send(ctx, msg); err != nil {
				d.logger.Error("notification channel failed", err,
					zap.String("channel", ch.Name()),
					zap.String("kind", msg.Kind),
				)
				return
			}
			d.logger.Info("notification delivered",
				zap.String("channel", ch.Name()),
				zap.String("kind", msg.Kind),
			)
		}(ch)
	}
}

// Wait blocks until every in-flight delivery has finished. Used on graceful
// shutdown and in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
