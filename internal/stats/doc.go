// Package stats computes descriptive statistics over normalized
// scoreboard rows and formats the text report.
//
// Per-phase counts, joint penalty/late/invalid totals, and the overall
// score statistics (min, max, range, mean, sample variance, standard
// deviation) are all computed in one pass structure so the report and the
// chart renderers share a single consistent snapshot.
package stats
