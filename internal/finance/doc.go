// Package finance derives financial figures from entity collections.
//
// Every function here is pure: no I/O, no hidden state, same inputs give
// same outputs. Inputs are the transient snapshots obtained from
// repository queries; nothing is ever written back. Empty collections
// degrade to zero totals (an average over zero bills is 0, not an
// error), so these functions never fail.
package finance
