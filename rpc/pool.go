package rpc

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/snowfork/substrate-go/scale"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// OnFinalized is invoked once an extrinsic submitted through an
// ExtrinsicPool reaches finality.
type OnFinalized func(blockHash [32]byte) error

// ExtrinsicPool submits extrinsics via author_submitAndWatchExtrinsic and
// watches their status asynchronously, bounding the number of
// concurrently watched subscriptions with a weighted semaphore.
type ExtrinsicPool struct {
	client *Client
	eg     *errgroup.Group
	sem    *semaphore.Weighted
}

// NewExtrinsicPool returns a pool that submits through client and runs
// its watcher goroutines on eg, never watching more than
// maxWatchedExtrinsics at once.
func NewExtrinsicPool(eg *errgroup.Group, client *Client, maxWatchedExtrinsics int64) *ExtrinsicPool {
	return &ExtrinsicPool{
		client: client,
		eg:     eg,
		sem:    semaphore.NewWeighted(maxWatchedExtrinsics),
	}
}

// WaitForSubmitAndWatch submits extrinsicBytes and, once a watching slot
// is free, spawns a goroutine that calls onFinalized when the extrinsic
// is finalized, or returns an error if it is dropped, invalid, usurped,
// or hits a finality timeout.
func (p *ExtrinsicPool) WaitForSubmitAndWatch(ctx context.Context, extrinsicBytes []byte, onFinalized OnFinalized) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	sub, err := p.client.transport.Subscribe(ctx,
		"author_submitAndWatchExtrinsic", "author_unwatchExtrinsic", "author_extrinsicUpdate",
		scale.HexEncode(extrinsicBytes))
	if err != nil {
		p.sem.Release(1)
		return err
	}

	p.eg.Go(func() error {
		defer p.sem.Release(1)
		defer sub.Unsubscribe()

		for {
			select {
			case <-ctx.Done():
				return nil
			case err := <-sub.Err():
				log.WithError(err).Error("subscription failed for extrinsic status")
				return err
			case raw := <-sub.Chan():
				var status ExtrinsicStatus
				if err := status.UnmarshalJSON(raw); err != nil {
					return err
				}

				if reason := status.terminalReason(); reason != "" {
					log.WithField("reason", reason).Error("extrinsic removed from the transaction pool")
					return fmt.Errorf("rpc: extrinsic removed from the transaction pool: %s", reason)
				}
				if status.IsFinalized {
					return onFinalized(status.AsFinalized)
				}
			}
		}
	})

	return nil
}
