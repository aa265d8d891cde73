package backtest

import (
	"errors"
	"fmt"
	"math"

	"github.com/rfaguiar/secalloc/elasticity"
	"github.com/rfaguiar/secalloc/region"
)

// RunSeries backtests a rate series with sliding train/test windows.
// Each window fits a linear trend on the training years, projects the
// test years, and scores the projection with MAPE against the actuals.
//
// A window whose regression is degenerate (constant years, too few
// points) is kept in the report with Skipped set instead of aborting the
// run. Test years whose actual rate is zero are left out of the MAPE
// mean, since the percentage error is undefined there.
//
// Fails with ErrInsufficientHistory when the series cannot hold even one
// train+test pair.
func RunSeries(series []region.RatePoint, cfg Config) (SeriesReport, error) {
	train, test := cfg.TrainWindow, cfg.TestWindow
	if train == 0 {
		train = DefaultTrainWindow
	}
	if test == 0 {
		test = DefaultTestWindow
	}
	if cfg.TrainWindow < 0 || cfg.TestWindow < 0 {
		return SeriesReport{}, fmt.Errorf("%w: train=%d test=%d", ErrBadWindows, cfg.TrainWindow, cfg.TestWindow)
	}
	if len(series) < train+test {
		return SeriesReport{}, fmt.Errorf("%d years, need %d: %w", len(series), train+test, ErrInsufficientHistory)
	}

	var report SeriesReport
	for start := 0; start+train+test <= len(series); start++ {
		trainPts := series[start : start+train]
		testPts := series[start+train : start+train+test]
		w := Window{
			TrainFrom: trainPts[0].Year,
			TrainTo:   trainPts[len(trainPts)-1].Year,
			TestFrom:  testPts[0].Year,
			TestTo:    testPts[len(testPts)-1].Year,
		}

		trend, err := elasticity.TrendFit(trainPts)
		if err != nil {
			w.Skipped = err.Error()
			report.Windows = append(report.Windows, w)
			report.SkippedCount++
			continue
		}

		var sum float64
		for _, pt := range testPts {
			if pt.Rate == 0 {
				continue
			}
			proj := trend.Project(pt.Year)
			sum += math.Abs(proj-pt.Rate) / pt.Rate * 100
			w.Compared++
		}
		if w.Compared == 0 {
			w.Skipped = "no non-zero actual in the test window"
			report.Windows = append(report.Windows, w)
			report.SkippedCount++
			continue
		}
		w.MAPE = sum / float64(w.Compared)
		report.Windows = append(report.Windows, w)
		report.Evaluated++
		report.MAPE += w.MAPE
	}
	if report.Evaluated > 0 {
		report.MAPE /= float64(report.Evaluated)
	}
	return report, nil
}

// RunDataset backtests every region's history. Regions with too little
// history are reported as skipped rather than failing the run; the run
// itself fails with ErrInsufficientHistory only when no region could be
// evaluated at all.
func RunDataset(ds *region.Dataset, cfg Config) (DatasetReport, error) {
	var report DatasetReport
	for _, r := range ds.Regions() {
		rr := RegionReport{Code: r.Code}
		sr, err := RunSeries(r.History, cfg)
		switch {
		case errors.Is(err, ErrInsufficientHistory):
			rr.Skipped = err.Error()
			report.Skipped++
		case err != nil:
			return DatasetReport{}, fmt.Errorf("region %q: %w", r.Code, err)
		default:
			rr.Report = sr
			report.Evaluated++
			report.MAPE += sr.MAPE
		}
		report.Regions = append(report.Regions, rr)
	}
	if report.Evaluated == 0 {
		return DatasetReport{}, fmt.Errorf("no region has enough history: %w", ErrInsufficientHistory)
	}
	report.MAPE /= float64(report.Evaluated)
	return report, nil
}
