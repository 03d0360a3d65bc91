package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/puzzlegen/internal/batch"
	"svw.info/puzzlegen/internal/config"
	"svw.info/puzzlegen/internal/domain"
	"svw.info/puzzlegen/internal/generator"
	"svw.info/puzzlegen/internal/infrastructure/storage"
	"svw.info/puzzlegen/internal/ports"
	"svw.info/puzzlegen/internal/rating"
	"svw.info/puzzlegen/internal/solver"
	"svw.info/puzzlegen/internal/usecase"
	"svw.info/puzzlegen/internal/validator"
)

var (
	numPuzzles int
	clueCount  string
	difficulty string
	seed       int64
	outputDir  string
	configPath string
	solverKind string
	workers    int
	timeout    time.Duration
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles with verified unique solutions.

Examples:
  puzzlegen gen --clues 40
  puzzlegen gen -n 5 --difficulty hard
  puzzlegen gen -n 100 --clues 30 --seed 42 -o ./data
  puzzlegen gen --config run.yaml`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&clueCount, "clues", "c", "", "Target clues 17-81, or a range like 28:32 (default: difficulty budget)")
	genCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "easy|medium|hard|expert")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Base seed for reproducible runs (0 = time-derived)")
	genCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for puzzle JSON records (empty = print only)")
	genCmd.Flags().StringVar(&configPath, "config", "", "YAML run config; overrides the other flags")
	genCmd.Flags().StringVar(&solverKind, "solver", "dlx", "Uniqueness-check backend: dlx|backtrack")
	genCmd.Flags().IntVar(&workers, "workers", 0, "Parallel workers (0 = GOMAXPROCS)")
	genCmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall run timeout (0 = none)")

	rootCmd.AddCommand(genCmd)
}

// parseClueRange accepts "32" or "28:32" and returns the bounds.
func parseClueRange(s string) (lo, hi int, err error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count: %w", err)
		}
		return v, v, nil
	case 2:
		lo, err = strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count min: %w", err)
		}
		hi, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count max: %w", err)
		}
		if lo > hi {
			return 0, 0, fmt.Errorf("clue count min (%d) cannot be greater than max (%d)", lo, hi)
		}
		return lo, hi, nil
	}
	return 0, 0, fmt.Errorf("invalid clue count format: %s (use '32' or '28:32')", s)
}

func pickSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	default:
		return solver.NewDLXSolver()
	}
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		diff := domain.ParseDifficulty(difficulty)
		target := 0
		if clueCount != "" {
			lo, hi, err := parseClueRange(clueCount)
			if err != nil {
				return err
			}
			if lo < generator.MinTargetClues || hi > generator.MaxTargetClues {
				return fmt.Errorf("%w: got %s", generator.ErrInvalidTargetClues, clueCount)
			}
			// midpoint keeps a range request a single deterministic target
			target = (lo + hi) / 2
		}
		cfg.OutputDir = outputDir
		cfg.Solver = solverKind
		cfg.Workers = workers
		cfg.Seed = seed
		cfg.Batches = []config.BatchSpec{{
			Difficulty:  diff.String(),
			Count:       numPuzzles,
			TargetClues: target,
		}}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	s := pickSolver(cfg.Solver)
	eng := generator.New(s)
	if cfg.MaxAttempts > 0 {
		eng.MaxAttempts = cfg.MaxAttempts
	}
	var store ports.Storage
	if cfg.OutputDir != "" {
		store = storage.NewFS(cfg.OutputDir)
	}
	svc := usecase.NewService(s, eng, validator.New(), rating.NewSinglesRater(), store)

	var specs []batch.Spec
	for _, b := range cfg.Batches {
		specs = append(specs, batch.Spec{
			Difficulty:  domain.ParseDifficulty(b.Difficulty),
			Count:       b.Count,
			TargetClues: b.TargetClues,
		})
	}
	jobs := batch.Expand(specs, cfg.Seed)

	logger.Info("starting run",
		zap.Int("jobs", len(jobs)),
		zap.String("solver", cfg.Solver),
		zap.String("output", cfg.OutputDir))

	runner := batch.NewRunner(svc, logger, cfg.Workers)
	puzzles, err := runner.Run(ctx, jobs)
	if err != nil {
		return err
	}

	if cfg.OutputDir == "" {
		for i, p := range puzzles {
			fmt.Printf("Puzzle #%d (%s, clues: %d):\n%s\nSolution:\n%s\n",
				i+1, p.Difficulty, p.ClueCount,
				formatGrid(&p.InitialGrid), formatGrid(&p.SolutionGrid))
		}
	}
	logger.Info("run complete", zap.Int("puzzles", len(puzzles)))
	return nil
}

func formatGrid(g *domain.Grid) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			if g[r][c] == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%d ", g[r][c]))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
