// Package backtest measures how well the trend model would have
// predicted the historical record.
//
// A sliding window walks each region's rate series: fit a linear trend
// on the training years, project the following test years, and score the
// projection with mean absolute percentage error (MAPE) against what
// actually happened. Low aggregated MAPE means the trend extrapolation
// the planner relies on has been honest about this region's past.
//
// Failures are contained at the smallest useful scope: a degenerate
// window is skipped and reported, a short region is skipped and
// reported, and only a dataset with no evaluable region at all fails
// outright.
package backtest
