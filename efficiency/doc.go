// Package efficiency ranks regions by what they achieve per unit of
// public-safety money.
//
// The scorer is a fixed-weight cousin of data envelopment analysis: each
// region gets an outcome score (mean death rate over its own rate) and
// an economy score (mean per-capita spend over its own spend), blended
// 0.75/0.25 by default and normalized so the best region indexes at 1.
// Regions at the top of the scale are benchmarks; for the rest, target
// rate and spend levels show where the region would sit if it matched
// frontier efficiency.
//
// Regions that cannot carry the inverse ratios (zero rate or zero spend)
// are excluded individually and reported, never failing the whole run.
package efficiency
