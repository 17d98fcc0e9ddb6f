package datasource

import "time"

// MetricSample is one observation from a training log line.
type MetricSample struct {
	Step        int     `json:"step"`
	TotalSteps  int     `json:"total_steps"`
	MetricName  string  `json:"metric_name"`
	MetricValue float64 `json:"metric_value"`
	TrainTimeMs float64 `json:"train_time"`
	// StepAvgMs is nil when the log recorded "nan" for the step average,
	// which happens on the first steps of a run. nil is a real state, not
	// a missing zero.
	StepAvgMs *float64 `json:"step_avg"`
}

// Run is one ingested log file: its metric samples in file order plus the
// source snapshot embedded between sentinel lines.
type Run struct {
	RunId     string         `json:"run_id"`
	Timestamp string         `json:"timestamp"`
	Code      string         `json:"-"`
	Samples   []MetricSample `json:"data"`

	// modTime orders runs by recency. It is never serialized.
	modTime time.Time
}

func (r *Run) ModTime() time.Time {
	return r.modTime
}
