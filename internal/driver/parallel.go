package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"polish/internal/diag"
	"polish/internal/source"
)

// LineResult is the outcome of one expression line in a batch run.
type LineResult struct {
	Path  string
	Line  int    // 1-based; 0 for whole-file failures
	Text  string // original line text
	Skip  bool   // blank line or comment, not evaluated
	Value float64
	Bag   *diag.Bag
}

// Ok reports whether the line produced a value.
func (r LineResult) Ok() bool {
	return !r.Skip && !r.Bag.HasErrors()
}

// lineJob is one evaluatable line with its slot in the results slice.
type lineJob struct {
	index int
	path  string
	line  int
	text  string
}

// EvalFiles evaluates every expression line of the given files, one
// expression per line, in parallel. Results come back in input order:
// files in argument order, lines in file order. Blank lines and lines
// starting with '#' are marked Skip. A file that cannot be read yields a
// single LineResult carrying an IOLoadFileError diagnostic; remaining
// files still run.
func EvalFiles(ctx context.Context, paths []string, opts Options, jobs int) ([]LineResult, error) {
	var results []LineResult
	var jobList []lineJob

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			bag := diag.NewBag(opts.maxDiagnostics())
			bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
				fmt.Sprintf("failed to load file: %v", err)))
			results = append(results, LineResult{Path: path, Bag: bag})
			continue
		}

		lines := strings.Split(string(content), "\n")
		if n := len(lines); n > 0 && lines[n-1] == "" {
			lines = lines[:n-1] // trailing newline
		}
		for i, text := range lines {
			res := LineResult{Path: path, Line: i + 1, Text: text}
			trimmed := strings.TrimSpace(text)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				res.Skip = true
				res.Bag = diag.NewBag(opts.maxDiagnostics())
				results = append(results, res)
				continue
			}
			results = append(results, res)
			jobList = append(jobList, lineJob{
				index: len(results) - 1,
				path:  path,
				line:  i + 1,
				text:  text,
			})
		}
	}

	if len(jobList) == 0 {
		return results, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes only its own slot, so no mutex is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(jobList)))

	for _, job := range jobList {
		job := job
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			name := fmt.Sprintf("%s:%d", job.path, job.line)
			res := Eval(name, job.text, opts)
			results[job.index].Value = res.Value
			results[job.index].Bag = res.Bag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
