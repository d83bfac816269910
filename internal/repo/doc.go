// Package repo is the typed access layer over the store: per-entity CRUD
// plus live queries. It is the only path collaborators use to reach the
// database.
//
// # Reactive queries
//
// Watch methods return a Subscription whose channel carries full result
// snapshots. Every committed write notifies the subscriptions watching
// the affected table; each re-runs its query and publishes a fresh
// snapshot. Delivery is latest-wins: a slow consumer skips intermediate
// snapshots but always eventually observes one that includes the last
// write. This is an observation model, not a changefeed - there are no
// diffs.
//
// # Atomicity
//
// Writes are atomic at the single-statement level only. There is no
// cross-entity transaction scope: inserting a bill and its items is N+1
// independent operations, and callers must tolerate observing the bill
// before its items (or retry item insertion after a crash).
package repo
