package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"oxygen/internal/lexer"
	"oxygen/internal/parser"
	"oxygen/internal/source"
)

// CheckOptions configures CheckFiles.
type CheckOptions struct {
	// Jobs caps the number of parallel workers; <= 0 means
	// runtime.GOMAXPROCS(0).
	Jobs int
	// Cache, when non-nil and not disabled, short-circuits files whose
	// content already checked clean.
	Cache   *DiskCache
	NoCache bool
	// Sink receives progress events; nil disables them.
	Sink Sink
}

// FileReport is the outcome of checking one file.
type FileReport struct {
	Path       string
	File       *source.File // nil when loading failed
	LoadErr    error
	ScanErrors []lexer.ScanError
	ParseErr   error
	Tokens     int
	Statements int
	Cached     bool
	Elapsed    time.Duration
}

// Clean reports whether the file passed with no diagnostics.
func (r *FileReport) Clean() bool {
	return r.LoadErr == nil && len(r.ScanErrors) == 0 && r.ParseErr == nil
}

// CheckFiles runs the front end over paths in parallel. Reports come back
// in input order; per-file diagnostics live in the report, so the only
// error returned is context cancellation.
func CheckFiles(ctx context.Context, paths []string, opts CheckOptions) ([]FileReport, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indexed writes, one slot per goroutine: no mutex needed.
	reports := make([]FileReport, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path // pre-1.22 loops share variables across iterations
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			reports[i] = checkOne(path, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}

func checkOne(path string, opts CheckOptions) FileReport {
	start := time.Now()
	report := FileReport{Path: path}

	emit(opts.Sink, Event{File: path, Stage: StageTokenize, Status: StatusWorking})

	f, err := source.Load(path)
	if err != nil {
		report.LoadErr = err
		report.Elapsed = time.Since(start)
		emit(opts.Sink, Event{File: path, Stage: StageTokenize, Status: StatusError, Err: err, Elapsed: report.Elapsed})
		return report
	}
	report.File = f

	useCache := opts.Cache != nil && !opts.NoCache
	key := FileKey(f)
	if useCache {
		var payload CachePayload
		if hit, err := opts.Cache.Get(key, &payload); err == nil && hit && payload.Schema == cacheSchemaVersion {
			report.Tokens = payload.Tokens
			report.Statements = payload.Statements
			report.Cached = true
			report.Elapsed = time.Since(start)
			emit(opts.Sink, Event{File: path, Stage: StageParse, Status: StatusCached, Elapsed: report.Elapsed})
			return report
		}
	}

	tokens, scanErrs := TokenizeFile(f)
	report.Tokens = len(tokens)
	if len(scanErrs) > 0 {
		report.ScanErrors = scanErrs
		report.Elapsed = time.Since(start)
		emit(opts.Sink, Event{File: path, Stage: StageTokenize, Status: StatusError, Elapsed: report.Elapsed})
		return report
	}

	emit(opts.Sink, Event{File: path, Stage: StageParse, Status: StatusWorking})

	prog, err := parser.New(tokens).ParseProgram()
	if err != nil {
		report.ParseErr = err
		report.Elapsed = time.Since(start)
		emit(opts.Sink, Event{File: path, Stage: StageParse, Status: StatusError, Err: err, Elapsed: report.Elapsed})
		return report
	}
	report.Statements = len(prog.Statements)

	if useCache {
		// Best effort: a failed write only costs the next run a re-check.
		_ = opts.Cache.Put(key, &CachePayload{
			Schema:     cacheSchemaVersion,
			Path:       path,
			Tokens:     report.Tokens,
			Statements: report.Statements,
		})
	}

	report.Elapsed = time.Since(start)
	emit(opts.Sink, Event{File: path, Stage: StageParse, Status: StatusDone, Elapsed: report.Elapsed})
	return report
}

// ExpandPaths resolves the check arguments: a directory becomes every
// *.o2 file under it in sorted order, a file passes through as-is.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, path)
			continue
		}

		var found []string
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, ".o2") {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}
