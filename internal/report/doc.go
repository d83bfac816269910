// Package report renders bills and derived figures as plain text, the
// shape a thermal receipt printer or a terminal takes. It reads bill and
// aggregation snapshots only and has no effect on the stored data.
package report
