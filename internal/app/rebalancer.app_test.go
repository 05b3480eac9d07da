package app

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"longshort/internal/db/models/postgres/public/model"
	"longshort/internal/domain"
	mock_repository "longshort/internal/repository/mocks"
	l3_service "longshort/internal/service/l3"
	mock_l3_service "longshort/internal/service/l3/mocks"
)

func testResult(date time.Time) *l3_service.RebalanceResult {
	weights := domain.TargetWeightVector{
		"AAPL": 0.5,
		"MSFT": 0,
		"NVDA": 1e-12,
		"TSLA": -0.5,
	}
	return &l3_service.RebalanceResult{
		RunID:         uuid.New(),
		StrategyName:  "test",
		Date:          date,
		Weights:       weights,
		PositionCount: weights.PositionCount(),
		Diagnostics: l3_service.Diagnostics{
			CompositeScore: domain.CompositeScore{
				"AAPL": 2, "MSFT": 0.1, "NVDA": 0.05, "TSLA": -2,
			},
		},
	}
}

func TestRebalancerHandler_Rebalance(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	t.Run("records only non-trivial positions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rebalanceService := mock_l3_service.NewMockRebalanceService(ctrl)
		runRepository := mock_repository.NewMockRebalanceRunRepository(ctrl)
		positionRepository := mock_repository.NewMockTargetPositionRepository(ctrl)

		result := testResult(date)
		rebalanceService.EXPECT().
			Run(gomock.Any(), date).
			Return(result, nil)

		inserted := &model.RebalanceRun{
			RebalanceRunID: uuid.New(),
			StrategyName:   result.StrategyName,
			Date:           date,
		}
		runRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, run model.RebalanceRun) (*model.RebalanceRun, error) {
				require.Equal(t, int32(2), run.NumPositions)
				return inserted, nil
			})

		var recorded []*model.TargetPosition
		positionRepository.EXPECT().
			AddMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, positions []*model.TargetPosition) error {
				recorded = positions
				return nil
			})

		handler := &RebalancerHandler{
			RebalanceService:   rebalanceService,
			RunRepository:      runRepository,
			PositionRepository: positionRepository,
		}

		out, err := handler.Rebalance(ctx, date)
		require.NoError(t, err)
		require.Same(t, result, out)

		// MSFT and NVDA carry no book; recorded rows match PositionCount
		require.Len(t, recorded, result.PositionCount)
		sides := map[string]string{}
		for _, p := range recorded {
			require.Equal(t, inserted.RebalanceRunID, p.RebalanceRunID)
			require.NotZero(t, p.Weight)
			sides[p.Symbol] = p.Side
		}
		require.Equal(t, map[string]string{
			"AAPL": "long",
			"TSLA": "short",
		}, sides)
	})

	t.Run("recording failure does not block the weights", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rebalanceService := mock_l3_service.NewMockRebalanceService(ctrl)
		runRepository := mock_repository.NewMockRebalanceRunRepository(ctrl)
		positionRepository := mock_repository.NewMockTargetPositionRepository(ctrl)

		result := testResult(date)
		rebalanceService.EXPECT().
			Run(gomock.Any(), date).
			Return(result, nil)
		runRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		handler := &RebalancerHandler{
			RebalanceService:   rebalanceService,
			RunRepository:      runRepository,
			PositionRepository: positionRepository,
		}

		out, err := handler.Rebalance(ctx, date)
		require.NoError(t, err)
		require.Same(t, result, out)
		require.Same(t, result, handler.LatestDiagnostics())
	})

	t.Run("nil repositories skip recording", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rebalanceService := mock_l3_service.NewMockRebalanceService(ctrl)

		result := testResult(date)
		rebalanceService.EXPECT().
			Run(gomock.Any(), date).
			Return(result, nil)

		handler := &RebalancerHandler{RebalanceService: rebalanceService}

		out, err := handler.Rebalance(ctx, date)
		require.NoError(t, err)
		require.Same(t, result, out)
	})

	t.Run("service failure leaves the last run in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rebalanceService := mock_l3_service.NewMockRebalanceService(ctrl)

		result := testResult(date)
		rebalanceService.EXPECT().
			Run(gomock.Any(), date).
			Return(result, nil)
		rebalanceService.EXPECT().
			Run(gomock.Any(), date.AddDate(0, 0, 1)).
			Return(nil, errors.New("missing data"))

		handler := &RebalancerHandler{RebalanceService: rebalanceService}

		_, err := handler.Rebalance(ctx, date)
		require.NoError(t, err)

		_, err = handler.Rebalance(ctx, date.AddDate(0, 0, 1))
		require.Error(t, err)
		require.Same(t, result, handler.LatestDiagnostics())
	})
}
