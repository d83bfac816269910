// Package ledger defines the entity model for the munim ledger core.
//
// Every type here maps one-to-one onto a table in the schema owned by
// internal/store. Entities are plain records: they carry no behavior and
// no hidden state, and the copies returned by repository queries are
// transient - mutating one has no effect until it is written back.
//
// Money fields use shopspring decimal so sums and comparisons are exact.
// Dates on transactions, bills and ledger postings are persisted as epoch
// milliseconds; cheque due dates are stored as the display string the
// original records kept.
package ledger
