package datasource

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// LogDir is the filesystem-backed RunStore: a flat directory of append-only
// log files, one per training run. The filesystem is injected so tests run
// against an in-memory fs.
type LogDir struct {
	cfg *Config
	fs  afero.Fs
}

func NewLogDir(cfg *Config, fs afero.Fs) *LogDir {
	return &LogDir{
		cfg: cfg,
		fs:  fs,
	}
}

func NewOsLogDir(cfg *Config) *LogDir {
	return NewLogDir(cfg, afero.NewOsFs())
}

var _ RunStore = &LogDir{}

func NewRunStore(logDir *LogDir) RunStore {
	return logDir
}

// ListRuns rebuilds the full run set from the directory. Files are extracted
// concurrently but assembled by index, so ordering is deterministic before
// the sort. Any unreadable file fails the whole scan; a partial listing
// would silently mislead the dashboard.
func (d *LogDir) ListRuns(ctx context.Context) ([]*Run, error) {
	infos, err := afero.ReadDir(d.fs, d.cfg.LogDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read log directory %s", d.cfg.LogDir)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), d.cfg.LogExtension) {
			continue
		}
		names = append(names, info.Name())
	}

	runs := make([]*Run, len(names))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(d.cfg.ScanConcurrency)
	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(d.cfg.LogDir, name)
			info, err := d.fs.Stat(path)
			if err != nil {
				return errors.Wrapf(err, "failed to stat log file %s", path)
			}
			contents, err := afero.ReadFile(d.fs, path)
			if err != nil {
				return errors.Wrapf(err, "failed to read log file %s", path)
			}
			runId := strings.TrimSuffix(name, d.cfg.LogExtension)
			runs[i] = ExtractRun(runId, string(contents), info.ModTime())
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Most recent first. Stable so same-mtime runs keep directory order.
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].modTime.After(runs[j].modTime)
	})

	return runs, nil
}

// Ping verifies the log directory is reachable; used by the readiness probe.
func (d *LogDir) Ping(ctx context.Context) error {
	stat, err := d.fs.Stat(d.cfg.LogDir)
	if err != nil {
		return errors.Wrapf(err, "log directory %s is not accessible", d.cfg.LogDir)
	}
	if !stat.IsDir() {
		return errors.Errorf("log directory %s is not a directory", d.cfg.LogDir)
	}
	return nil
}
