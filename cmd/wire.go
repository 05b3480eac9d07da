package cmd

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"longshort/api"
	"longshort/internal"
	"longshort/internal/app"
	"longshort/internal/repository"
	l1_service "longshort/internal/service/l1"
	l2_service "longshort/internal/service/l2"
	l3_service "longshort/internal/service/l3"
)

// InitializeDependencies wires the whole service from environment
// configuration:
//
//	LONGSHORT_STRATEGY - path to the strategy config JSON (required)
//	LONGSHORT_DATA_DIR - directory of CSV market data (required)
//	LONGSHORT_DB_CONN_STR - postgres connection string; when unset,
//	  run recording is disabled
func InitializeDependencies() (*api.ApiHandler, error) {
	strategyPath := os.Getenv("LONGSHORT_STRATEGY")
	if strategyPath == "" {
		return nil, fmt.Errorf("LONGSHORT_STRATEGY is not set")
	}
	dataDir := os.Getenv("LONGSHORT_DATA_DIR")
	if dataDir == "" {
		return nil, fmt.Errorf("LONGSHORT_DATA_DIR is not set")
	}

	config, err := internal.LoadStrategyConfig(strategyPath)
	if err != nil {
		return nil, err
	}

	marketData := l1_service.NewCSVMarketData(dataDir)
	factorService := l2_service.NewFactorService(marketData)

	rebalanceService, err := l3_service.NewRebalanceService(
		config,
		factorService,
		marketData,
		marketData,
	)
	if err != nil {
		return nil, err
	}

	rebalancer := &app.RebalancerHandler{
		Config:           config,
		RebalanceService: rebalanceService,
	}

	if connStr := os.Getenv("LONGSHORT_DB_CONN_STR"); connStr != "" {
		dbConn, err := sql.Open("postgres", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		rebalancer.RunRepository = repository.NewRebalanceRunRepository(dbConn)
		rebalancer.PositionRepository = repository.NewTargetPositionRepository(dbConn)
	}

	return &api.ApiHandler{
		Rebalancer: rebalancer,
	}, nil
}
