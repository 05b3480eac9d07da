package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"longshort/internal"
	"longshort/internal/domain"
	"longshort/internal/logger"
)

type rebalanceRequest struct {
	Date string `json:"date" binding:"required"`
}

type rebalanceResponse struct {
	RunID         string                   `json:"runId"`
	Strategy      string                   `json:"strategy"`
	Date          string                   `json:"date"`
	Weights       map[domain.Asset]float64 `json:"weights"`
	PositionCount int                      `json:"positionCount"`
	Warnings      []string                 `json:"warnings"`
}

func (m *ApiHandler) rebalance(ctx *gin.Context) {
	var req rebalanceRequest
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request: %w", err), ctx, 400)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid date %q: %w", req.Date, err), ctx, 400)
		return
	}

	c := context.WithValue(ctx, logger.ContextKey, logger.FromContext(ctx))

	result, err := m.Rebalancer.Rebalance(c, date)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to rebalance: %w", err), ctx, rebalanceErrorCode(err))
		return
	}

	ctx.JSON(200, rebalanceResponse{
		RunID:         result.RunID.String(),
		Strategy:      result.StrategyName,
		Date:          result.Date.Format("2006-01-02"),
		Weights:       result.Weights,
		PositionCount: result.PositionCount,
		Warnings:      result.Diagnostics.Warnings,
	})
}

// rebalanceErrorCode distinguishes data/feasibility failures (the
// caller should skip the cycle and keep the prior book) from genuine
// server faults.
func rebalanceErrorCode(err error) int {
	var (
		missingData  internal.MissingDataError
		insufficient internal.InsufficientUniverseError
		infeasible   internal.InfeasibleOptimizationError
	)
	if errors.As(err, &missingData) || errors.As(err, &insufficient) || errors.As(err, &infeasible) {
		return 422
	}
	return 500
}
