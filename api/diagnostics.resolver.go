package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"longshort/internal/domain"
)

type diagnosticsResponse struct {
	RunID          string                   `json:"runId"`
	Date           string                   `json:"date"`
	Longs          []domain.Asset           `json:"longs"`
	Shorts         []domain.Asset           `json:"shorts"`
	CompositeScore map[domain.Asset]float64 `json:"compositeScore"`
	Warnings       []string                 `json:"warnings"`
}

// diagnostics exposes the composite score and candidate set behind
// the most recent successful rebalance, read-only.
func (m *ApiHandler) diagnostics(ctx *gin.Context) {
	latest := m.Rebalancer.LatestDiagnostics()
	if latest == nil {
		returnErrorJsonCode(fmt.Errorf("no completed rebalance runs"), ctx, 404)
		return
	}

	ctx.JSON(200, diagnosticsResponse{
		RunID:          latest.RunID.String(),
		Date:           latest.Date.Format("2006-01-02"),
		Longs:          latest.Diagnostics.Candidates.Longs,
		Shorts:         latest.Diagnostics.Candidates.Shorts,
		CompositeScore: latest.Diagnostics.CompositeScore,
		Warnings:       latest.Diagnostics.Warnings,
	})
}
