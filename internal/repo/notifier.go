package repo

import "sync"

// notifier is the table-change registry behind reactive queries.
//
// Each subscriber holds a buffered signal channel of size 1: publishing
// to a table does a non-blocking send to every subscriber, so multiple
// writes between re-queries coalesce into one signal. A subscriber that
// re-runs its query after draining the signal is therefore guaranteed to
// see the last write - the signal for it either arrived before the query
// ran, or is still buffered for the next round.
type notifier struct {
	mu   sync.Mutex
	subs map[string]map[int64]chan struct{}
	next int64
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[string]map[int64]chan struct{})}
}

// subscribe registers interest in a table and returns the subscriber id
// and its signal channel.
func (n *notifier) subscribe(table string) (int64, chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.next++
	id := n.next
	signal := make(chan struct{}, 1)

	if n.subs[table] == nil {
		n.subs[table] = make(map[int64]chan struct{})
	}
	n.subs[table][id] = signal
	return id, signal
}

// unsubscribe removes a subscriber. Safe to call twice.
func (n *notifier) unsubscribe(table string, id int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.subs[table], id)
}

// publish signals every subscriber of a table. Non-blocking: the buffer
// of 1 coalesces repeated publishes.
func (n *notifier) publish(table string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, signal := range n.subs[table] {
		select {
		case signal <- struct{}{}:
		default:
		}
	}
}
