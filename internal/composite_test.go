package internal

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"longshort/internal/domain"
)

func TestBlendFactors(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	t.Run("weighted sum across factors", func(t *testing.T) {
		value := snapshotFromValues("value", date, map[domain.Asset]float64{
			"A": 1, "B": 2, "C": 3,
		})
		growth := snapshotFromValues("growth", date, map[domain.Asset]float64{
			"A": 10, "B": -2, "C": 0,
		})

		score, err := BlendFactors([]WeightedFactor{
			{Snapshot: value, Weight: 2},
			{Snapshot: growth, Weight: 0.5},
		})
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(
			domain.CompositeScore{
				"A": 2*1 + 0.5*10,
				"B": 2*2 + 0.5*-2,
				"C": 2*3 + 0.5*0,
			},
			score,
		))
	})

	t.Run("asset missing any factor is excluded", func(t *testing.T) {
		value := snapshotFromValues("value", date, map[domain.Asset]float64{
			"A": 1, "B": 2, "C": 3,
		})
		growth := domain.NewFactorSnapshot("growth", date)
		growth.Values["A"] = floatPointer(1)
		growth.Values["B"] = nil

		score, err := BlendFactors([]WeightedFactor{
			{Snapshot: value, Weight: 1},
			{Snapshot: growth, Weight: 1},
		})
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(
			domain.CompositeScore{"A": 2},
			score,
		))
	})

	t.Run("single factor passes through scaled", func(t *testing.T) {
		value := snapshotFromValues("value", date, map[domain.Asset]float64{
			"A": 1, "B": -1,
		})

		score, err := BlendFactors([]WeightedFactor{
			{Snapshot: value, Weight: 0.15},
		})
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(
			domain.CompositeScore{"A": 0.15, "B": -0.15},
			score,
		))
	})

	t.Run("zero factors is an error", func(t *testing.T) {
		_, err := BlendFactors(nil)
		require.Error(t, err)
	})
}
