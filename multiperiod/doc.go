// Package multiperiod spreads a budget over a planning horizon.
//
// A multi-year program rarely spends its whole budget at once. This
// package splits a total across periods according to a named strategy
// (uniform, front-loaded, back-loaded, linear ramp), solves each period's
// allocation in sequence, and carries the effect forward: deaths averted
// in one period shrink the baselines the next period optimizes against.
//
// Build produces the schedule for one strategy; Compare ranks all
// strategies by total lives saved over the horizon.
package multiperiod
