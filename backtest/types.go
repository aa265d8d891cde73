package backtest

import "errors"

var (
	// ErrBadWindows signals non-positive train or test window lengths.
	ErrBadWindows = errors.New("backtest: train and test windows must be positive")
	// ErrInsufficientHistory signals a series shorter than one full
	// train+test window pair.
	ErrInsufficientHistory = errors.New("backtest: history shorter than train+test windows")
)

// DefaultTrainWindow and DefaultTestWindow are the window lengths used
// when a Config field is left at zero.
const (
	DefaultTrainWindow = 5
	DefaultTestWindow  = 2
)

// Config sets the sliding-window shape.
type Config struct {
	// TrainWindow is the number of years fitted per window; 0 selects
	// DefaultTrainWindow.
	TrainWindow int
	// TestWindow is the number of years projected per window; 0 selects
	// DefaultTestWindow.
	TestWindow int
}

// Window is one train/test split and its accuracy.
type Window struct {
	// TrainFrom/TrainTo are the inclusive fitted years.
	TrainFrom, TrainTo int
	// TestFrom/TestTo are the inclusive projected years.
	TestFrom, TestTo int
	// MAPE is the mean absolute percentage error across the test years,
	// in percent. Years with a zero actual rate are left out of the mean.
	MAPE float64
	// Compared counts the test years that entered the MAPE mean.
	Compared int
	// Skipped is set with a reason when the window's regression was
	// degenerate; MAPE is then meaningless.
	Skipped string
}

// SeriesReport aggregates the windows of one series.
type SeriesReport struct {
	Windows []Window
	// MAPE is the mean over non-skipped windows, in percent.
	MAPE float64
	// Evaluated and SkippedCount partition len(Windows).
	Evaluated    int
	SkippedCount int
}

// RegionReport is one region's backtest inside a dataset run.
type RegionReport struct {
	Code   string
	Report SeriesReport
	// Skipped is set with a reason when the whole region could not be
	// backtested (short history).
	Skipped string
}

// DatasetReport aggregates a per-region backtest.
type DatasetReport struct {
	Regions []RegionReport
	// MAPE is the mean over evaluated regions, in percent.
	MAPE      float64
	Evaluated int
	Skipped   int
}
