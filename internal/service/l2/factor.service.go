package l2_service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/maja42/goval"

	"longshort/internal"
	"longshort/internal/domain"
	l1_service "longshort/internal/service/l1"
)

const numEvalWorkers = 10

// FactorService turns a factor definition (a goval expression over
// raw fields, e.g. `field("ebit") / field("enterprise_value")`) into
// one FactorSnapshot per rebalance date.
type FactorService interface {
	ComputeFactorSnapshot(ctx context.Context, date time.Time, factor internal.FactorConfig, assets []domain.Asset) (domain.FactorSnapshot, error)
}

type factorServiceHandler struct {
	FieldSource l1_service.FieldSource
}

func NewFactorService(fieldSource l1_service.FieldSource) FactorService {
	return factorServiceHandler{
		FieldSource: fieldSource,
	}
}

// undefinedFieldError marks an asset where some referenced field has
// no value. The asset's factor value stays undefined; the cycle does
// not fail.
type undefinedFieldError struct {
	Field string
}

func (e undefinedFieldError) Error() string {
	return fmt.Sprintf("field %s is undefined for this asset", e.Field)
}

type evalResult struct {
	Asset domain.Asset
	Value *float64
	Err   error
}

// ComputeFactorSnapshot evaluates the factor expression for every
// asset, fanning the per-asset evaluations out over a worker pool.
// An asset with any undefined input field gets an undefined (nil)
// value; a field missing wholesale for the date fails the call.
func (h factorServiceHandler) ComputeFactorSnapshot(ctx context.Context, date time.Time, factor internal.FactorConfig, assets []domain.Asset) (domain.FactorSnapshot, error) {
	fields := &fieldCache{
		ctx:    ctx,
		date:   date,
		source: h.FieldSource,
		cache:  map[string]map[domain.Asset]*float64{},
	}

	in := make(chan domain.Asset, len(assets))
	out := make(chan evalResult, len(assets))
	for _, asset := range assets {
		in <- asset
	}
	close(in)

	wg := sync.WaitGroup{}
	for i := 0; i < numEvalWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for asset := range in {
				value, err := evaluateFactorExpression(factor.Expression, asset, fields)
				out <- evalResult{Asset: asset, Value: value, Err: err}
			}
		}()
	}
	wg.Wait()
	close(out)

	snapshot := domain.NewFactorSnapshot(factor.Name, date)
	for result := range out {
		if result.Err != nil {
			return domain.FactorSnapshot{}, fmt.Errorf("failed to evaluate factor %s for %s: %w", factor.Name, result.Asset, result.Err)
		}
		snapshot.Values[result.Asset] = result.Value
	}

	return snapshot, nil
}

func evaluateFactorExpression(expression string, asset domain.Asset, fields *fieldCache) (*float64, error) {
	// goval does not expose wrapped errors, so undefined fields are
	// tracked out of band
	hitUndefinedField := false

	functions := map[string]goval.ExpressionFunction{
		// field(name) - raw field value for the asset under evaluation
		"field": func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("field needs 1 arg, got %d", len(args))
			}
			name, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("field name must be a string")
			}
			value, err := fields.get(name, asset)
			if err != nil {
				undefined := undefinedFieldError{}
				if errors.As(err, &undefined) {
					hitUndefinedField = true
				}
				return nil, err
			}
			return *value, nil
		},
	}

	eval := goval.NewEvaluator()
	result, err := eval.Evaluate(expression, nil, functions)
	if err != nil {
		if hitUndefinedField {
			return nil, nil
		}
		return nil, err
	}

	switch v := result.(type) {
	case float64:
		return &v, nil
	case int:
		f := float64(v)
		return &f, nil
	default:
		return nil, fmt.Errorf("expression returned %T, want a number", result)
	}
}

// fieldCache loads each referenced field once per snapshot
// computation and serves concurrent workers.
type fieldCache struct {
	ctx    context.Context
	date   time.Time
	source l1_service.FieldSource

	mu    sync.Mutex
	cache map[string]map[domain.Asset]*float64
}

func (c *fieldCache) get(field string, asset domain.Asset) (*float64, error) {
	c.mu.Lock()
	values, ok := c.cache[field]
	if !ok {
		loaded, err := c.source.FieldValues(c.ctx, c.date, field)
		if err != nil {
			c.mu.Unlock()
			return nil, err
		}
		c.cache[field] = loaded
		values = loaded
	}
	c.mu.Unlock()

	value, ok := values[asset]
	if !ok || value == nil {
		return nil, undefinedFieldError{Field: field}
	}
	return value, nil
}
