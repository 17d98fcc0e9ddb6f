package diff

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/datasource"
)

func threeRuns() *datasource.RunStoreMock {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &datasource.RunStoreMock{
		Runs: []*datasource.Run{
			datasource.NewMockRun("run-c", "lr = 0.01\nepochs = 30\n", base.Add(2*time.Hour)),
			datasource.NewMockRun("run-b", "lr = 0.01\nepochs = 20\n", base.Add(time.Hour)),
			datasource.NewMockRun("run-a", "lr = 0.1\nepochs = 10\n", base),
		},
	}
}

func TestDiffAgainstPrevious(t *testing.T) {
	engine := NewEngine(threeRuns())
	text, err := engine.Diff(context.Background(), "run-c", datasource.ComparePrevious)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "Comparing Run run-c to Previous Run\n\n"))
	assert.Contains(t, text, "--- Previous Run")
	assert.Contains(t, text, "+++ Selected Run")
	assert.Contains(t, text, "-epochs = 20\n")
	assert.Contains(t, text, "+epochs = 30\n")
}

func TestDiffAgainstFirst(t *testing.T) {
	engine := NewEngine(threeRuns())
	text, err := engine.Diff(context.Background(), "run-c", datasource.CompareFirst)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "Comparing Run run-c to First Run\n\n"))
	assert.Contains(t, text, "-lr = 0.1\n")
	assert.Contains(t, text, "+lr = 0.01\n")
}

func TestDiffIdenticalCode(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := &datasource.RunStoreMock{
		Runs: []*datasource.Run{
			datasource.NewMockRun("run-b", "lr = 0.01\n", base.Add(time.Hour)),
			datasource.NewMockRun("run-a", "lr = 0.01\n", base),
		},
	}
	engine := NewEngine(store)

	text, err := engine.Diff(context.Background(), "run-b", datasource.ComparePrevious)
	require.NoError(t, err)
	assert.Equal(t, "Comparing Run run-b to Previous Run\n\nNo differences found.", text)
}

func TestDiffOldestRunAgainstFirstIsItself(t *testing.T) {
	engine := NewEngine(threeRuns())
	text, err := engine.Diff(context.Background(), "run-a", datasource.CompareFirst)
	require.NoError(t, err)
	assert.Equal(t, "Comparing Run run-a to First Run\n\nNo differences found.", text)
}

func TestDiffOldestRunHasNoBaseline(t *testing.T) {
	engine := NewEngine(threeRuns())
	text, err := engine.Diff(context.Background(), "run-a", datasource.ComparePrevious)
	require.NoError(t, err)
	assert.Equal(t, "Comparing Run run-a to No Run to Compare\n\nNo run available to compare.", text)
}

func TestDiffUnknownRun(t *testing.T) {
	engine := NewEngine(threeRuns())
	text, err := engine.Diff(context.Background(), "run-zzz", datasource.ComparePrevious)
	require.NoError(t, err)
	assert.Equal(t, "Run ID not found.", text)
}

func TestDiffUnknownModeFallsThrough(t *testing.T) {
	engine := NewEngine(threeRuns())
	text, err := engine.Diff(context.Background(), "run-c", datasource.CompareMode("sideways"))
	require.NoError(t, err)
	assert.Equal(t, "Comparing Run run-c to No Run to Compare\n\nNo run available to compare.", text)
}

func TestDiffCachedTextSurvivesLogChanges(t *testing.T) {
	store := threeRuns()
	engine := NewEngine(store)

	first, err := engine.Diff(context.Background(), "run-c", datasource.ComparePrevious)
	require.NoError(t, err)

	// Rewriting history must not change an already computed comparison.
	store.Runs[1] = datasource.NewMockRun("run-b", "lr = 0.5\nepochs = 99\n", store.Runs[1].ModTime())
	again, err := engine.Diff(context.Background(), "run-c", datasource.ComparePrevious)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestDiffModesCachedIndependently(t *testing.T) {
	engine := NewEngine(threeRuns())

	previous, err := engine.Diff(context.Background(), "run-c", datasource.ComparePrevious)
	require.NoError(t, err)
	first, err := engine.Diff(context.Background(), "run-c", datasource.CompareFirst)
	require.NoError(t, err)

	assert.NotEqual(t, previous, first)
	assert.Equal(t, 2, engine.cache.size())
}

func TestDiffUnknownRunNotCached(t *testing.T) {
	store := threeRuns()
	engine := NewEngine(store)

	text, err := engine.Diff(context.Background(), "run-d", datasource.ComparePrevious)
	require.NoError(t, err)
	assert.Equal(t, "Run ID not found.", text)
	assert.Equal(t, 0, engine.cache.size())

	// Once the run shows up the same request gets a real comparison.
	store.Runs = append([]*datasource.Run{
		datasource.NewMockRun("run-d", "lr = 0.001\n", store.Runs[0].ModTime().Add(time.Hour)),
	}, store.Runs...)
	text, err = engine.Diff(context.Background(), "run-d", datasource.ComparePrevious)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Comparing Run run-d to Previous Run\n\n"))
}

func TestDiffStoreError(t *testing.T) {
	engine := NewEngine(&datasource.RunStoreMock{Err: errors.New("disk on fire")})
	_, err := engine.Diff(context.Background(), "run-a", datasource.ComparePrevious)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}
