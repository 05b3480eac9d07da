package repository

import (
	"database/sql"
	"fmt"
	"time"

	"longshort/internal/db/models/postgres/public/model"
	"longshort/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type RebalanceRunRepository interface {
	Add(tx *sql.Tx, run model.RebalanceRun) (*model.RebalanceRun, error)
	Get(id uuid.UUID) (*model.RebalanceRun, error)
	List() ([]model.RebalanceRun, error)
}

type rebalanceRunRepositoryHandler struct {
	Db *sql.DB
}

func NewRebalanceRunRepository(db *sql.DB) RebalanceRunRepository {
	return rebalanceRunRepositoryHandler{Db: db}
}

func (h rebalanceRunRepositoryHandler) Add(tx *sql.Tx, run model.RebalanceRun) (*model.RebalanceRun, error) {
	run.CreatedAt = time.Now().UTC()
	run.ModifiedAt = time.Now().UTC()

	query := table.RebalanceRun.
		INSERT(
			table.RebalanceRun.MutableColumns,
		).
		MODEL(run).
		RETURNING(table.RebalanceRun.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.RebalanceRun{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert rebalance run: %w", err)
	}

	return &out, nil
}

func (h rebalanceRunRepositoryHandler) Get(id uuid.UUID) (*model.RebalanceRun, error) {
	query := table.RebalanceRun.
		SELECT(table.RebalanceRun.AllColumns).
		WHERE(table.RebalanceRun.RebalanceRunID.EQ(postgres.UUID(id)))

	result := model.RebalanceRun{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get rebalance run: %w", err)
	}

	return &result, nil
}

func (h rebalanceRunRepositoryHandler) List() ([]model.RebalanceRun, error) {
	query := table.RebalanceRun.SELECT(table.RebalanceRun.AllColumns)
	result := []model.RebalanceRun{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list rebalance runs: %w", err)
	}

	return result, nil
}
