package l3_service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"longshort/internal"
	"longshort/internal/domain"
	"longshort/internal/logger"
	"longshort/internal/optimizer"
	l1_service "longshort/internal/service/l1"
	l2_service "longshort/internal/service/l2"
)

// Diagnostics is the read-only view of the inputs the optimizer
// actually decided on, kept for observability and recording.
type Diagnostics struct {
	CompositeScore domain.CompositeScore
	Candidates     domain.CandidateSet
	Warnings       []string
	Profile        *domain.RunProfile
}

// RebalanceResult is one cycle's immutable output.
type RebalanceResult struct {
	RunID         uuid.UUID
	StrategyName  string
	Date          time.Time
	Weights       domain.TargetWeightVector
	PositionCount int
	Diagnostics   Diagnostics
}

// RebalanceService is the sole boundary the execution layer depends
// on: given a rebalance date, produce target weights or a tagged
// failure.
type RebalanceService interface {
	Run(ctx context.Context, date time.Time) (*RebalanceResult, error)
}

type rebalanceServiceHandler struct {
	Config            *internal.StrategyConfig
	FactorService     l2_service.FactorService
	UniverseSource    l1_service.UniverseSource
	RiskLoadingSource l1_service.RiskLoadingSource
}

func NewRebalanceService(
	config *internal.StrategyConfig,
	factorService l2_service.FactorService,
	universeSource l1_service.UniverseSource,
	riskLoadingSource l1_service.RiskLoadingSource,
) (RebalanceService, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return rebalanceServiceHandler{
		Config:            config,
		FactorService:     factorService,
		UniverseSource:    universeSource,
		RiskLoadingSource: riskLoadingSource,
	}, nil
}

// Run executes one full cycle: fetch universe → compute factors →
// clip → normalize → blend → select → optimize. Each cycle owns its
// own immutable snapshot of every input; per-factor computation fans
// out concurrently and joins before blending.
func (h rebalanceServiceHandler) Run(ctx context.Context, date time.Time) (*RebalanceResult, error) {
	log := logger.FromContext(ctx)
	profile := domain.NewRunProfile()

	profile.StartStage("universe")
	rawUniverse, err := h.UniverseSource.GetUniverse(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch universe: %w", err)
	}
	universe := internal.FilterUniverse(rawUniverse, h.Config.MinDollarVolume)

	k := h.Config.PositionsPerSide()
	if universe.Size() < 2*k {
		return nil, internal.InsufficientUniverseError{
			Eligible: universe.Size(),
			Required: 2 * k,
		}
	}

	profile.StartStage("factors")
	normalized, warnings, err := h.computeNormalizedFactors(ctx, date, universe)
	if err != nil {
		return nil, err
	}

	profile.StartStage("blend")
	score, err := internal.BlendFactors(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to blend factors: %w", err)
	}

	profile.StartStage("selection")
	candidates, err := internal.SelectCandidates(score, universe, k)
	if err != nil {
		return nil, err
	}

	profile.StartStage("optimization")
	riskLoadings, err := h.RiskLoadingSource.GetRiskLoadings(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch risk loadings: %w", err)
	}
	riskLoadings = riskLoadings.Restrict(candidates.All())

	problem := optimizer.Problem{
		Candidates:   candidates,
		Scores:       restrictScores(score, candidates),
		RiskLoadings: riskLoadings,
		Constraints: optimizer.LongShortConstraints(
			candidates,
			h.Config.LongCap(),
			h.Config.ShortCap(),
			h.Config.MaxGrossLeverage,
			h.Config.NeutralityTolerance(),
			riskLoadings.Factors,
			h.Config.RiskTolerance(),
		),
	}

	weights, err := optimizer.Solve(problem)
	if err != nil {
		return nil, err
	}
	profile.End()

	result := &RebalanceResult{
		RunID:         uuid.New(),
		StrategyName:  h.Config.Name,
		Date:          date,
		Weights:       weights,
		PositionCount: weights.PositionCount(),
		Diagnostics: Diagnostics{
			CompositeScore: score,
			Candidates:     candidates,
			Warnings:       warnings,
			Profile:        profile,
		},
	}

	log.Infow("rebalance cycle complete",
		"strategy", result.StrategyName,
		"date", date.Format("2006-01-02"),
		"runID", result.RunID,
		"numPositions", result.PositionCount,
		"grossLeverage", weights.GrossLeverage(),
		"netExposure", weights.NetExposure(),
		"totalMs", profile.TotalMs,
	)

	return result, nil
}

// computeNormalizedFactors computes, clips, and z-scores every
// configured factor concurrently. Degenerate (zero-variance) factors
// surface as warnings, not failures.
func (h rebalanceServiceHandler) computeNormalizedFactors(ctx context.Context, date time.Time, universe domain.Universe) ([]internal.WeightedFactor, []string, error) {
	assets := universe.Eligible.Sorted()

	type factorResult struct {
		Snapshot domain.FactorSnapshot
		Warning  string
		Err      error
	}

	results := make([]factorResult, len(h.Config.Factors))
	wg := sync.WaitGroup{}
	for i, factorConfig := range h.Config.Factors {
		wg.Add(1)
		go func(i int, factorConfig internal.FactorConfig) {
			defer wg.Done()

			raw, err := h.FactorService.ComputeFactorSnapshot(ctx, date, factorConfig, assets)
			if err != nil {
				results[i] = factorResult{Err: err}
				return
			}

			clipped, err := internal.Winsorize(raw, factorConfig.WinsorizeLow, factorConfig.WinsorizeHigh)
			if err != nil {
				results[i] = factorResult{Err: err}
				return
			}

			normalized, err := internal.ZScore(clipped)
			if err != nil {
				degenerate := internal.DegenerateNormalizationError{}
				if !errors.As(err, &degenerate) {
					results[i] = factorResult{Err: err}
					return
				}
				results[i] = factorResult{Snapshot: normalized, Warning: degenerate.Error()}
				return
			}

			results[i] = factorResult{Snapshot: normalized}
		}(i, factorConfig)
	}
	wg.Wait()

	normalized := make([]internal.WeightedFactor, 0, len(results))
	warnings := []string{}
	for i, result := range results {
		if result.Err != nil {
			return nil, nil, fmt.Errorf("failed to compute factor %s: %w", h.Config.Factors[i].Name, result.Err)
		}
		if result.Warning != "" {
			warnings = append(warnings, result.Warning)
		}
		normalized = append(normalized, internal.WeightedFactor{
			Snapshot: result.Snapshot,
			Weight:   h.Config.Factors[i].Weight,
		})
	}

	return normalized, warnings, nil
}

func restrictScores(score domain.CompositeScore, candidates domain.CandidateSet) domain.CompositeScore {
	restricted := domain.CompositeScore{}
	for _, asset := range candidates.All() {
		if s, ok := score[asset]; ok {
			restricted[asset] = s
		}
	}
	return restricted
}
