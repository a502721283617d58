package logmetrics

import (
	"errors"
	"fmt"
	"sync"
)

// Run locates the artifacts of one test run.
type Run struct {
	Implementation string
	ServerLog      string
	TimeFile       string
}

// Metrics are the scalars derived from one Run.
type Metrics struct {
	Run             Run
	Paths           int
	Window          TimeWindow
	TransferSeconds float64
}

// Extract derives the metrics of a single run.
func Extract(run Run) (Metrics, error) {
	paths, err := CountValidatedPaths(run.ServerLog)
	if err != nil {
		return Metrics{}, err
	}
	w, err := ReadTimeWindow(run.TimeFile)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		Run:             run,
		Paths:           paths,
		Window:          w,
		TransferSeconds: w.TransferSeconds(),
	}, nil
}

// ExtractAll extracts every run concurrently. Results keep the order of runs.
// If any run fails, the errors of all failed runs are joined and returned.
func ExtractAll(runs []Run) ([]Metrics, error) {
	results := make([]Metrics, len(runs))
	errs := make([]error, len(runs))

	var wg sync.WaitGroup
	wg.Add(len(runs))
	for i := range runs {
		go func(i int) {
			defer wg.Done()
			m, err := Extract(runs[i])
			if err != nil {
				errs[i] = fmt.Errorf("run %d (%s): %w", i, runs[i].Implementation, err)
				return
			}
			results[i] = m
		}(i)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}
