package repo

import (
	"context"
	"sync"
)

// Subscription is a live query handle. Updates carries full result
// snapshots, starting with the state at subscription time. Cancel tears
// the subscription down and closes the channel; it is safe to call more
// than once and does not disturb in-flight writes.
type Subscription[T any] struct {
	ch     chan T
	cancel context.CancelFunc
	once   sync.Once
}

// Updates returns the snapshot channel. The channel is closed after
// Cancel or when the subscribing context ends.
func (s *Subscription[T]) Updates() <-chan T {
	return s.ch
}

// Cancel tears down the subscription.
func (s *Subscription[T]) Cancel() {
	s.once.Do(s.cancel)
}

// watch is the common live-query loop. It emits an initial snapshot,
// then re-runs the query after every signal for the table and publishes
// the new snapshot latest-wins: if the consumer has not taken the
// previous snapshot yet it is replaced, never queued behind.
func watch[T any](ctx context.Context, r *Repo, table string, query func(context.Context) (T, error)) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription[T]{
		ch:     make(chan T, 1),
		cancel: cancel,
	}

	id, signal := r.n.subscribe(table)

	go func() {
		defer func() {
			r.n.unsubscribe(table, id)
			close(sub.ch)
		}()

		if snap, err := query(ctx); err == nil {
			deliver(sub.ch, snap)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-signal:
			}

			snap, err := query(ctx)
			if err != nil {
				// A query racing teardown fails with a closed-store or
				// cancelled-context error; the next signal retries.
				continue
			}
			deliver(sub.ch, snap)
		}
	}()

	return sub
}

// deliver replaces any undelivered snapshot with the latest one.
// The channel has a buffer of 1 and this goroutine is its only sender,
// so the loop terminates after at most one eviction.
func deliver[T any](ch chan T, snap T) {
	for {
		select {
		case ch <- snap:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
