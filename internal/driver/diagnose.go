package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"snoot/internal/diag"
	"snoot/internal/source"
	"snoot/internal/trace"
)

// FileResult is the outcome for one input file.
type FileResult struct {
	Path    string
	File    *source.File // nil when loading failed
	Bag     *diag.Bag
	Cached  bool
	Elapsed time.Duration
}

// DiagnoseResult collects a run over one file or a directory.
type DiagnoseResult struct {
	FileSet *source.FileSet
	Files   []FileResult
	// Bag holds every file's diagnostics, sorted by file and position.
	Bag *diag.Bag
}

// HasErrors reports whether any file produced an error diagnostic.
func (r *DiagnoseResult) HasErrors() bool {
	return r != nil && r.Bag.HasErrors()
}

// Diagnose checks path, which may be a single file or a directory.
func Diagnose(ctx context.Context, path string, opts Options) (*DiagnoseResult, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("diagnose %s: %w", path, err)
	}
	if st.IsDir() {
		return DiagnoseDir(ctx, path, opts)
	}
	ctx, span := trace.Start(ctx, trace.ScopePhase, "diagnose")
	defer span.End(path)
	return diagnoseFiles(ctx, source.NewFileSet(), []string{path}, opts)
}

// DiagnoseDir checks every file under dir whose name ends in one of
// opts.Extensions. Files are parsed concurrently, at most opts.Jobs at a time.
// Per-file problems, including unreadable files, are reported as
// diagnostics; an error is returned only when the walk fails or ctx is done.
func DiagnoseDir(ctx context.Context, dir string, opts Options) (*DiagnoseResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopePhase, "diagnose")
	defer span.End(dir)

	walkIdx := opts.Timer.Begin("walk")
	opts.emit(Event{Stage: StageWalk, Status: StatusWorking})
	files, err := listFiles(dir, &opts)
	if err != nil {
		opts.emit(Event{Stage: StageWalk, Status: StatusError, Err: err})
		opts.Timer.End(walkIdx, "")
		return nil, err
	}
	opts.Timer.End(walkIdx, fmt.Sprintf("%d files", len(files)))
	opts.emit(Event{Stage: StageWalk, Status: StatusDone})
	span.WithExtra("files", fmt.Sprint(len(files)))

	return diagnoseFiles(ctx, source.NewFileSetWithBase(dir), files, opts)
}

// listFiles возвращает отсортированный список подходящих файлов.
// Скрытые каталоги пропускаются.
func listFiles(dir string, opts *Options) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if opts.matches(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func diagnoseFiles(ctx context.Context, fileSet *source.FileSet, paths []string, opts Options) (*DiagnoseResult, error) {
	started := time.Now()
	results := make([]FileResult, len(paths))
	for _, path := range paths {
		opts.emit(Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// Предзагрузка последовательно, разбор параллельно.
	loadIdx := opts.Timer.Begin("load")
	for i, path := range paths {
		results[i].Path = path
		results[i].Bag = diag.NewBag(opts.MaxDiagnostics)
		id, err := fileSet.Load(path)
		if err != nil {
			opts.emit(Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
			trace.Error(ctx, "load", err)
			results[i].Bag.Add(diag.New(diag.SevError, diag.IOLoadFileError, source.Empty(),
				"failed to load file: "+err.Error()).WithFile(path))
			continue
		}
		results[i].File = fileSet.Get(id)
		opts.emit(Event{File: path, Stage: StageLoad, Status: StatusDone})
	}
	opts.Timer.End(loadIdx, fmt.Sprintf("%d files", len(paths)))

	// per-file phases would flood the timer; the run records one "parse" phase
	perFile := opts
	perFile.Timer = nil

	parseIdx := opts.Timer.Begin("parse")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(paths)))

	for i := range results {
		if results[i].File == nil {
			continue
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			diagnoseOne(gctx, &results[i], perFile)
			return nil
		})
	}
	err := g.Wait()
	opts.Timer.End(parseIdx, fmt.Sprintf("jobs=%d", opts.jobs(len(paths))))
	if err != nil {
		opts.emit(Event{Stage: StageDiagnose, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return nil, err
	}

	merged := diag.NewBag(opts.MaxDiagnostics)
	for _, r := range results {
		for _, d := range r.Bag.Items() {
			merged.Add(d)
		}
	}
	merged.Sort()

	opts.emit(Event{Stage: StageDiagnose, Status: StatusDone, Elapsed: time.Since(started)})
	return &DiagnoseResult{
		FileSet: fileSet,
		Files:   results,
		Bag:     merged,
	}, nil
}

// diagnoseOne fills r from the disk cache or by parsing. Cache failures
// only cost a re-parse.
func diagnoseOne(ctx context.Context, r *FileResult, opts Options) {
	start := time.Now()
	opts.emit(Event{File: r.Path, Stage: StageParse, Status: StatusWorking})
	ctx, span := trace.Start(ctx, trace.ScopeFile, "file:"+r.Path)
	defer func() {
		r.Elapsed = time.Since(start)
		status := StatusDone
		if r.Cached {
			status = StatusCached
		}
		opts.emit(Event{File: r.Path, Stage: StageParse, Status: status, Elapsed: r.Elapsed})
		span.WithExtra("cached", fmt.Sprint(r.Cached)).End("")
	}()

	var key Digest
	if opts.Cache != nil {
		key = KeyFor(r.File, opts)
		var payload DiskPayload
		ok, err := opts.Cache.Get(key, &payload)
		if err != nil {
			trace.Error(ctx, "cache", err)
		}
		if ok {
			if diags, valid := fromDiskPayload(&payload, r.File); valid {
				r.Bag.Append(diags...)
				applyRender(r.Bag, opts)
				r.Cached = true
				return
			}
		}
	}

	res := parseFile(ctx, r.File, opts)
	r.Bag = res.Bag

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, toDiskPayload(r.File, res.Bag.Items())); err != nil {
			trace.Error(ctx, "cache", err)
		}
	}
}
