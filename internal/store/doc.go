// Package store owns the on-disk ledger database.
//
// The store is a single SQLite file holding every entity table plus the
// schema version (PRAGMA user_version). Open brings the file to the
// current schema version before returning: fresh databases get the full
// target schema, older databases are upgraded in place by the migration
// engine in migrate.go.
//
// # Migration model
//
// Migrations are strictly additive. Each step introspects the live
// catalog (sqlite_master for tables, PRAGMA table_info for columns) and
// only creates what is missing, with defaults chosen so pre-existing rows
// stay valid. Nothing is ever dropped, renamed or retyped, which makes
// every step safe to run twice. A failed step aborts Open: the caller
// does not get a usable store until a later Open succeeds.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
//   - single connection: SQLite supports one writer at a time
//
// Mutations are durable as soon as the call returns; there is no
// write-back buffering across process restarts.
package store
