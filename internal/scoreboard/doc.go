// Package scoreboard turns the raw scoreboard HTML into normalized rows.
//
// It validates that the fetched page really is the expected scoreboard,
// locates the single score table, and normalizes every phase cell into a
// small closed vocabulary (full credit, zero, penalized, too late,
// invalid) so downstream counting switches over an enum instead of
// comparing loosely-typed cell text.
package scoreboard
