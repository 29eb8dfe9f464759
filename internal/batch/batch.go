// Package batch converts whole directories of pattern strips into circle
// images, several files at a time.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/polarstrip"
)

// Job is one strip file and the PNG it is rendered to.
type Job struct {
	Input  string
	Output string
}

// Result reports the outcome of one job.
type Result struct {
	Job    Job
	Stats  polarstrip.Stats
	Digest string
	Err    error
}

// OutputName returns the PNG file name for an input path: the base name with
// its extension replaced by ".png".
func OutputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

// Discover lists the regular files in inDir whose extension matches ext
// (case-insensitive) and pairs each with its output path in outDir. The
// result is sorted by input name. Subdirectories are not searched.
func Discover(inDir, outDir, ext string) ([]Job, error) {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	var jobs []Job
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		jobs = append(jobs, Job{
			Input:  filepath.Join(inDir, e.Name()),
			Output: filepath.Join(outDir, OutputName(e.Name())),
		})
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Input < jobs[j].Input })
	return jobs, nil
}

// Runner renders jobs concurrently.
type Runner struct {
	// Workers bounds the number of jobs in flight. Values <= 0 use
	// runtime.NumCPU.
	Workers int

	// KeepGoing continues past failed jobs. When false the first failure
	// cancels the jobs that have not started yet.
	KeepGoing bool

	// Options are passed to every polarstrip.Render call.
	Options []polarstrip.Option

	// Logger receives one record per job. Nil discards.
	Logger *slog.Logger
}

// Run renders every job and returns one Result per job, in job order. Jobs
// that never started because of a cancellation carry the context error.
//
// Without KeepGoing the returned error is the first failure. With KeepGoing
// it joins every failure.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	log := r.Logger
	if log == nil {
		log = polarstrip.Logger()
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(jobs))
	for i, job := range jobs {
		results[i].Job = job
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range jobs {
		if err := gctx.Err(); err != nil {
			for j := i; j < len(jobs); j++ {
				results[j].Err = err
			}
			break
		}
		g.Go(func() error {
			res := &results[i]
			if err := gctx.Err(); err != nil {
				res.Err = err
				return nil
			}
			r.convert(res)
			if res.Err != nil {
				log.Error("batch: convert failed", "input", res.Job.Input, "err", res.Err)
				if !r.KeepGoing {
					return res.Err
				}
				return nil
			}
			log.Info("batch: converted",
				"input", res.Job.Input,
				"output", res.Job.Output,
				"writes", res.Stats.Writes)
			return nil
		})
	}

	firstErr := g.Wait()
	if !r.KeepGoing {
		if firstErr == nil {
			firstErr = ctx.Err()
		}
		return results, firstErr
	}

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Job.Input, res.Err))
		}
	}
	return results, errors.Join(errs...)
}

// convert loads, renders and saves one job, filling in res.
func (r *Runner) convert(res *Result) {
	strip, err := polarstrip.LoadStrip(res.Job.Input)
	if err != nil {
		res.Err = err
		return
	}
	c, stats, err := polarstrip.Render(strip, r.Options...)
	if err != nil {
		res.Err = err
		return
	}
	if err := c.SavePNG(res.Job.Output); err != nil {
		res.Err = err
		return
	}
	res.Stats = stats
	res.Digest = c.DigestHex()
}
