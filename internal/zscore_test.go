package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"longshort/internal/domain"
)

func TestZScore(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	t.Run("standardizes to zero mean and unit variance", func(t *testing.T) {
		snapshot := snapshotFromValues("growth", date, map[domain.Asset]float64{
			"A": 1, "B": 2, "C": 3,
		})

		out, err := ZScore(snapshot)
		require.NoError(t, err)

		values := definedValues(out)
		require.InDelta(t, -1.224744871, values["A"], 1e-8)
		require.InDelta(t, 0, values["B"], 1e-8)
		require.InDelta(t, 1.224744871, values["C"], 1e-8)

		mean := 0.0
		for _, v := range values {
			mean += v
		}
		require.InDelta(t, 0, mean/3, 1e-12)
	})

	t.Run("preserves ordering", func(t *testing.T) {
		snapshot := snapshotFromValues("growth", date, map[domain.Asset]float64{
			"A": -5, "B": 0.1, "C": 17, "D": 2,
		})

		out, err := ZScore(snapshot)
		require.NoError(t, err)

		values := definedValues(out)
		require.Less(t, values["A"], values["B"])
		require.Less(t, values["B"], values["D"])
		require.Less(t, values["D"], values["C"])
	})

	t.Run("zero variance yields zeros and a degenerate warning", func(t *testing.T) {
		snapshot := snapshotFromValues("growth", date, map[domain.Asset]float64{
			"A": 5, "B": 5, "C": 5,
		})

		out, err := ZScore(snapshot)
		require.ErrorAs(t, err, &DegenerateNormalizationError{})

		for asset, v := range definedValues(out) {
			require.Zero(t, v, "asset %s", asset)
		}
	})

	t.Run("undefined values pass through untouched", func(t *testing.T) {
		snapshot := domain.NewFactorSnapshot("growth", date)
		snapshot.Values["A"] = floatPointer(1)
		snapshot.Values["B"] = floatPointer(3)
		snapshot.Values["C"] = nil

		out, err := ZScore(snapshot)
		require.NoError(t, err)
		require.Nil(t, out.Values["C"])
		require.Len(t, out.Values, 3)
	})
}
