// Package batch fans puzzle generation out over a bounded worker pool.
// Each job owns its grids and random source, so workers never share
// mutable state.
package batch

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/usecase"
)

// Job is one puzzle to generate.
type Job struct {
	Difficulty  domain.Difficulty
	TargetClues int
	Seed        int64
}

// Runner generates jobs in parallel and persists the results.
type Runner struct {
	Service *usecase.Service
	Logger  *zap.Logger
	Workers int
}

func NewRunner(svc *usecase.Service, logger *zap.Logger, workers int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Service: svc, Logger: logger, Workers: workers}
}

// Expand turns batch specs into jobs with per-job seeds derived from
// baseSeed, so a whole run reproduces from one number.
func Expand(specs []Spec, baseSeed int64) []Job {
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	var jobs []Job
	i := int64(0)
	for _, s := range specs {
		target := s.TargetClues
		if target == 0 {
			target = s.Difficulty.TargetClues()
		}
		for n := 0; n < s.Count; n++ {
			jobs = append(jobs, Job{
				Difficulty:  s.Difficulty,
				TargetClues: target,
				Seed:        baseSeed + i,
			})
			i++
		}
	}
	return jobs
}

// Spec requests Count puzzles at one difficulty.
type Spec struct {
	Difficulty  domain.Difficulty
	Count       int
	TargetClues int
}

// Run generates every job, saving puzzles as they complete. The first
// failure cancels the remaining jobs.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]*domain.Puzzle, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]*domain.Puzzle, len(jobs))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			p, st, err := r.Service.Generate(ctx, job.Seed, job.Difficulty, job.TargetClues)
			if err != nil {
				r.Logger.Error("generation failed",
					zap.Int64("seed", job.Seed),
					zap.String("difficulty", job.Difficulty.String()),
					zap.Error(err))
				return err
			}
			p.ID = uuid.NewString()
			if r.Service.Storage != nil {
				if err := r.Service.Save(ctx, p); err != nil {
					return err
				}
			}
			r.Logger.Info("puzzle generated",
				zap.String("id", p.ID),
				zap.String("difficulty", p.Difficulty.String()),
				zap.Int("clues", p.ClueCount),
				zap.Int("target", p.TargetClues),
				zap.String("technique", string(p.Technique)),
				zap.Int("nodes", st.Nodes),
				zap.Duration("dur", st.Duration))
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
