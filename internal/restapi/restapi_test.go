package restapi

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/datasource"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/diff"
)

func TestRunsAPI(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := &datasource.RunStoreMock{
			Runs: rapid.SliceOf(datasource.RunGenerator()).Draw(t, "runs"),
		}
		api := NewRunsAPI(store)

		runs, err := api.ListRuns(context.TODO())
		if err != nil {
			t.Fatalf("Error: %v", err)
		}
		// Property: the listing passes through unchanged
		assert.Equal(t, len(store.Runs), len(runs))
		for i, run := range runs {
			assert.Equal(t, store.Runs[i].RunId, run.RunId)
		}
	})
}

func TestRunsAPIStoreFailure(t *testing.T) {
	api := NewRunsAPI(&datasource.RunStoreMock{Err: assert.AnError})
	_, err := api.ListRuns(context.TODO())
	assert.NotNil(t, err)
	assert.Equal(t, 500, err.Code)
}

func TestDecodeDiffParams(t *testing.T) {
	params, err := DecodeDiffParams(url.Values{"run_id": {"run-1"}})
	assert.Nil(t, err)
	assert.Equal(t, "run-1", params.RunId)
	assert.Equal(t, "previous", params.CompareTo)

	params, err = DecodeDiffParams(url.Values{"run_id": {"run-1"}, "compare_to": {"first"}})
	assert.Nil(t, err)
	assert.Equal(t, "first", params.CompareTo)

	_, err = DecodeDiffParams(url.Values{})
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.Code)

	_, err = DecodeDiffParams(url.Values{"compare_to": {"first"}})
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.Code)

	// Unknown keys are ignored rather than rejected.
	params, err = DecodeDiffParams(url.Values{"run_id": {"run-1"}, "theme": {"dark"}})
	assert.Nil(t, err)
	assert.Equal(t, "run-1", params.RunId)
}

func TestDiffAPI(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runs := rapid.SliceOfN(datasource.RunGenerator(), 1, 10).Draw(t, "runs")
		store := &datasource.RunStoreMock{Runs: runs}
		api := NewDiffAPI(diff.NewEngine(store))

		selected := rapid.SampledFrom(runs).Draw(t, "selected")
		compareTo := rapid.SampledFrom([]string{"previous", "first"}).Draw(t, "compare_to")

		text, err := api.GetDiff(context.TODO(), DiffParams{RunId: selected.RunId, CompareTo: compareTo})
		if err != nil {
			t.Fatalf("Error: %v", err)
		}
		// Property: a known run always gets a comparison header
		assert.True(t, strings.HasPrefix(text, "Comparing Run "+selected.RunId+" to "))
	})
}

func TestDiffAPIUnknownRun(t *testing.T) {
	api := NewDiffAPI(diff.NewEngine(&datasource.RunStoreMock{}))
	text, err := api.GetDiff(context.TODO(), DiffParams{RunId: "missing", CompareTo: "previous"})
	assert.Nil(t, err)
	assert.Equal(t, "Run ID not found.", text)
}

func TestDiffAPIStoreFailure(t *testing.T) {
	api := NewDiffAPI(diff.NewEngine(&datasource.RunStoreMock{Err: assert.AnError}))
	_, err := api.GetDiff(context.TODO(), DiffParams{RunId: "run-1", CompareTo: "previous"})
	assert.NotNil(t, err)
	assert.Equal(t, 500, err.Code)
}
