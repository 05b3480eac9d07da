package internal

import (
	"fmt"
	"time"
)

// Error kinds surfaced by the rebalance pipeline. Data- and
// feasibility-level failures always propagate to the caller as one of
// these types; the pipeline never substitutes a best-guess portfolio.

// MissingDataError indicates a required factor or risk loading is
// absent for the rebalance date.
type MissingDataError struct {
	What string
	Date time.Time
}

func (e MissingDataError) Error() string {
	return fmt.Sprintf("missing data for %s on %s", e.What, e.Date.Format("2006-01-02"))
}

// DegenerateNormalizationError is a warning-level condition: a
// factor's cross-section had zero variance, so its z-scores were
// substituted with zeros. The cycle continues.
type DegenerateNormalizationError struct {
	Factor string
}

func (e DegenerateNormalizationError) Error() string {
	return fmt.Sprintf("factor %s has zero cross-sectional variance; z-scores substituted with zeros", e.Factor)
}

// InsufficientUniverseError indicates the eligible universe cannot
// fill both candidate pools.
type InsufficientUniverseError struct {
	Eligible int
	Required int
}

func (e InsufficientUniverseError) Error() string {
	return fmt.Sprintf("universe has %d eligible assets, need at least %d", e.Eligible, e.Required)
}

// InfeasibleOptimizationError indicates no weight vector satisfies
// all constraints simultaneously. No partial solution accompanies it.
type InfeasibleOptimizationError struct {
	Err error
}

func (e InfeasibleOptimizationError) Error() string {
	return fmt.Sprintf("optimization infeasible: %v", e.Err)
}

func (e InfeasibleOptimizationError) Unwrap() error {
	return e.Err
}

// ConfigurationError indicates invalid static strategy configuration,
// detected at construction time before any rebalance runs.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Reason)
}
