package datasource

import (
	"context"
)

// CompareMode selects the baseline of a diff: the next-older run or the
// oldest run overall.
type CompareMode string

const (
	ComparePrevious CompareMode = "previous"
	CompareFirst    CompareMode = "first"
)

const noCompareLabel = "No Run to Compare"

// RunStore lists the current set of training runs. Every call reflects the
// directory as it is right now; there is no incremental state.
type RunStore interface {
	ListRuns(ctx context.Context) ([]*Run, error)
}

// FindIndex locates a run by id in a listing. -1 means not found, which is a
// normal outcome: the file may have been deleted between polls.
func FindIndex(runs []*Run, runId string) int {
	for i, run := range runs {
		if run.RunId == runId {
			return i
		}
	}
	return -1
}

// Adjacent resolves the comparison baseline for the run at index in a
// most-recent-first listing. The label names the baseline's role in diff
// output. A nil run means there is nothing to compare against.
func Adjacent(runs []*Run, index int, mode CompareMode) (*Run, string) {
	if mode == ComparePrevious && index+1 < len(runs) {
		return runs[index+1], "Previous Run"
	}
	if mode == CompareFirst && len(runs) > 0 {
		return runs[len(runs)-1], "First Run"
	}
	return nil, noCompareLabel
}
