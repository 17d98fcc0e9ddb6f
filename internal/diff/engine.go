package diff

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	log "github.com/sirupsen/logrus"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/datasource"
)

const (
	selectedLabel = "Selected Run"

	runNotFoundText   = "Run ID not found."
	noDifferencesText = "No differences found."
	noBaselineText    = "No run available to compare."

	contextLines = 3
)

// Engine compares the code snapshot of a selected run against a baseline run
// and renders the result as a unified diff. Results are memoized per
// (run id, compare mode) pair.
type Engine struct {
	store datasource.RunStore
	cache *memo
}

func NewEngine(store datasource.RunStore) *Engine {
	return &Engine{
		store: store,
		cache: newMemo(),
	}
}

// Diff returns the comparison text for the given run. The returned string is
// always a complete response body: either the "Run ID not found." literal or
// a "Comparing Run ... to ..." header followed by the diff (or one of the
// placeholder texts when there is nothing to show).
//
// Only texts for known runs are cached. A cached entry is served even when
// the log files have changed since it was computed.
func (engine *Engine) Diff(ctx context.Context, runId string, mode datasource.CompareMode) (string, error) {
	runs, err := engine.store.ListRuns(ctx)
	if err != nil {
		return "", errors.Wrap(err, "listing runs for diff")
	}

	index := datasource.FindIndex(runs, runId)
	if index < 0 {
		log.Printf("diff requested for unknown run %q", runId)
		return runNotFoundText, nil
	}

	key := cacheKey{runId: runId, mode: mode}
	if text, ok := engine.cache.get(key); ok {
		return text, nil
	}

	baseline, label := datasource.Adjacent(runs, index, mode)
	body := noBaselineText
	if baseline != nil {
		body, err = render(baseline, runs[index], label)
		if err != nil {
			return "", err
		}
	}
	text := fmt.Sprintf("Comparing Run %s to %s\n\n%s", runs[index].RunId, label, body)
	return engine.cache.putIfAbsent(key, text), nil
}

func render(baseline *datasource.Run, selected *datasource.Run, label string) (string, error) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        datasource.SplitLines(baseline.Code),
		B:        datasource.SplitLines(selected.Code),
		FromFile: label,
		ToFile:   selectedLabel,
		Context:  contextLines,
	})
	if err != nil {
		return "", errors.Wrapf(err, "rendering diff for run %s", selected.RunId)
	}
	if text == "" {
		return noDifferencesText, nil
	}
	return text, nil
}
