package app

import (
	"context"
	"math"
	"sync"
	"time"

	"longshort/internal"
	"longshort/internal/db/models/postgres/public/model"
	"longshort/internal/logger"
	"longshort/internal/repository"
	l3_service "longshort/internal/service/l3"
)

// RebalancerHandler runs rebalance cycles and keeps the diagnostic
// view of the most recent decision. When repositories are configured
// it also records each run; recording is best-effort and never blocks
// the weights from reaching the caller.
type RebalancerHandler struct {
	Config           *internal.StrategyConfig
	RebalanceService l3_service.RebalanceService

	// optional; nil disables recording
	RunRepository      repository.RebalanceRunRepository
	PositionRepository repository.TargetPositionRepository

	mu        sync.RWMutex
	latestRun *l3_service.RebalanceResult
}

// Rebalance runs one cycle for the given date. On failure the caller
// receives the tagged error and no weights; the previously applied
// book stays in force.
func (h *RebalancerHandler) Rebalance(ctx context.Context, date time.Time) (*l3_service.RebalanceResult, error) {
	result, err := h.RebalanceService.Run(ctx, date)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.latestRun = result
	h.mu.Unlock()

	h.recordRun(ctx, result)

	return result, nil
}

// LatestDiagnostics exposes the composite score and candidate set
// behind the most recent successful run. Nil until a run succeeds.
func (h *RebalancerHandler) LatestDiagnostics() *l3_service.RebalanceResult {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latestRun
}

func (h *RebalancerHandler) recordRun(ctx context.Context, result *l3_service.RebalanceResult) {
	if h.RunRepository == nil {
		return
	}
	log := logger.FromContext(ctx)

	inserted, err := h.RunRepository.Add(nil, model.RebalanceRun{
		RebalanceRunID: result.RunID,
		StrategyName:   result.StrategyName,
		Date:           result.Date,
		NumPositions:   int32(result.PositionCount),
		GrossLeverage:  result.Weights.GrossLeverage(),
		NetExposure:    result.Weights.NetExposure(),
	})
	if err != nil {
		log.Errorw("failed to record rebalance run", "runID", result.RunID, "error", err)
		return
	}

	if h.PositionRepository == nil {
		return
	}

	positions := []*model.TargetPosition{}
	for asset, weight := range result.Weights {
		// same threshold as PositionCount; a zero-weight candidate
		// is not a position and has no side
		if math.Abs(weight) <= 1e-10 {
			continue
		}
		side := "long"
		if weight < 0 {
			side = "short"
		}
		score := result.Diagnostics.CompositeScore[asset]
		positions = append(positions, &model.TargetPosition{
			RebalanceRunID: inserted.RebalanceRunID,
			Symbol:         string(asset),
			Weight:         weight,
			CompositeScore: &score,
			Side:           side,
		})
	}
	err = h.PositionRepository.AddMany(nil, positions)
	if err != nil {
		log.Errorw("failed to record target positions", "runID", result.RunID, "error", err)
	}
}
