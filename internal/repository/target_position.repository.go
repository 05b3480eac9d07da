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

type TargetPositionRepository interface {
	AddMany(tx *sql.Tx, positions []*model.TargetPosition) error
	GetForRun(runID uuid.UUID) ([]model.TargetPosition, error)
}

type targetPositionRepositoryHandler struct {
	Db *sql.DB
}

func NewTargetPositionRepository(db *sql.DB) TargetPositionRepository {
	return targetPositionRepositoryHandler{Db: db}
}

func (h targetPositionRepositoryHandler) AddMany(tx *sql.Tx, positions []*model.TargetPosition) error {
	if len(positions) == 0 {
		return nil
	}

	for _, p := range positions {
		p.CreatedAt = time.Now().UTC()
	}

	query := table.TargetPosition.
		INSERT(table.TargetPosition.MutableColumns).
		MODELS(positions)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert target positions: %w", err)
	}

	return nil
}

func (h targetPositionRepositoryHandler) GetForRun(runID uuid.UUID) ([]model.TargetPosition, error) {
	query := table.TargetPosition.
		SELECT(table.TargetPosition.AllColumns).
		WHERE(table.TargetPosition.RebalanceRunID.EQ(postgres.UUID(runID)))

	result := []model.TargetPosition{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get target positions for run: %w", err)
	}

	return result, nil
}
