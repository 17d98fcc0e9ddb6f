package datasource

import (
	"context"
	"fmt"
	"time"

	"pgregory.net/rapid"
)

// RunStoreMock serves a fixed listing; tests mutate Runs between calls to
// model files appearing, changing or vanishing.
type RunStoreMock struct {
	Runs []*Run
	Err  error
}

func (m *RunStoreMock) ListRuns(_ context.Context) ([]*Run, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Runs, nil
}

var _ RunStore = &RunStoreMock{}

// NewMockRun builds a run with an explicit sort position; newer offsets sort
// earlier in a listing.
func NewMockRun(runId string, code string, modTime time.Time) *Run {
	return &Run{
		RunId:     runId,
		Timestamp: modTime.Format(timestampLayout),
		Code:      code,
		Samples:   make([]MetricSample, 0),
		modTime:   modTime,
	}
}

func MetricSampleGenerator() *rapid.Generator[MetricSample] {
	return rapid.Custom(func(t *rapid.T) MetricSample {
		sample := MetricSample{
			Step:        rapid.IntRange(0, 100000).Draw(t, "step"),
			TotalSteps:  rapid.IntRange(1, 100000).Draw(t, "total_steps"),
			MetricName:  rapid.SampledFrom([]string{"train_loss", "val_loss", "grad_norm"}).Draw(t, "metric_name"),
			MetricValue: rapid.Float64Range(0, 100).Draw(t, "metric_value"),
			TrainTimeMs: rapid.Float64Range(0, 1e9).Draw(t, "train_time"),
		}
		if rapid.Bool().Draw(t, "has_step_avg") {
			avg := rapid.Float64Range(0, 1e6).Draw(t, "step_avg")
			sample.StepAvgMs = &avg
		}
		return sample
	})
}

func RunGenerator() *rapid.Generator[*Run] {
	return rapid.Custom(func(t *rapid.T) *Run {
		modTime := time.Unix(rapid.Int64Range(1e9, 2e9).Draw(t, "mtime"), 0)
		return &Run{
			RunId:     rapid.StringMatching(`[a-z0-9]{8}-[a-z0-9]{4}`).Draw(t, "run_id"),
			Timestamp: modTime.Format(timestampLayout),
			Code:      fmt.Sprintf("print(%q)\n", rapid.StringMatching(`[a-z ]{0,40}`).Draw(t, "code")),
			Samples:   rapid.SliceOfN(MetricSampleGenerator(), 0, 20).Draw(t, "samples"),
			modTime:   modTime,
		}
	})
}
