// Package export moves inventory and transaction data between the
// repository and flat files. CSV carries a fixed header row; XLSX uses
// one sheet with the same column layout. Imports insert row by row and
// stop at the first bad record, reporting how many rows made it in.
package export
