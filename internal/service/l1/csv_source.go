package l1_service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"longshort/internal"
	"longshort/internal/domain"
)

const dateLayout = "2006-01-02"

// nullableFloat keeps a blank cell distinct from an explicit zero; a
// bare *float64 field would come back as a pointer to 0 for both.
type nullableFloat struct {
	value *float64
}

func (f *nullableFloat) UnmarshalCSV(s string) error {
	if strings.TrimSpace(s) == "" {
		f.value = nil
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	f.value = &v
	return nil
}

// CSV layouts consumed from the data directory. Values are long-form
// so new fields and risk factors need no schema change.

type fundamentalRow struct {
	Date   string        `csv:"date"`
	Symbol string        `csv:"symbol"`
	Field  string        `csv:"field"`
	Value  nullableFloat `csv:"value"`
}

type universeRow struct {
	Date            string        `csv:"date"`
	Symbol          string        `csv:"symbol"`
	Tradable        bool          `csv:"tradable"`
	AvgDollarVolume nullableFloat `csv:"avg_dollar_volume"`
}

type riskLoadingRow struct {
	Date    string  `csv:"date"`
	Symbol  string  `csv:"symbol"`
	Factor  string  `csv:"factor"`
	Loading float64 `csv:"loading"`
}

type priceRow struct {
	Date   string          `csv:"date"`
	Symbol string          `csv:"symbol"`
	Price  decimal.Decimal `csv:"price"`
}

// CSVMarketData serves every l1 source contract from a directory of
// CSV files (fundamentals.csv, universe.csv, risk_loadings.csv,
// prices.csv). Files load once, on first use, and are indexed by
// normalized date.
type CSVMarketData struct {
	dir string

	loadOnce sync.Once
	loadErr  error

	fundamentals map[time.Time]map[string]map[domain.Asset]*float64
	universes    map[time.Time]domain.Universe
	riskLoadings map[time.Time]domain.RiskLoadingMatrix
	prices       map[time.Time]map[domain.Asset]decimal.Decimal
}

func NewCSVMarketData(dir string) *CSVMarketData {
	return &CSVMarketData{dir: dir}
}

func (h *CSVMarketData) FieldValues(ctx context.Context, date time.Time, field string) (map[domain.Asset]*float64, error) {
	if err := h.ensureLoaded(); err != nil {
		return nil, err
	}
	byField, ok := h.fundamentals[normalizeDate(date)]
	if !ok {
		return nil, internal.MissingDataError{What: "fundamentals", Date: date}
	}
	values, ok := byField[field]
	if !ok {
		return nil, internal.MissingDataError{What: fmt.Sprintf("field %s", field), Date: date}
	}
	return values, nil
}

func (h *CSVMarketData) GetUniverse(ctx context.Context, date time.Time) (domain.Universe, error) {
	if err := h.ensureLoaded(); err != nil {
		return domain.Universe{}, err
	}
	universe, ok := h.universes[normalizeDate(date)]
	if !ok {
		return domain.Universe{}, internal.MissingDataError{What: "universe", Date: date}
	}
	return universe, nil
}

func (h *CSVMarketData) GetRiskLoadings(ctx context.Context, date time.Time) (domain.RiskLoadingMatrix, error) {
	if err := h.ensureLoaded(); err != nil {
		return domain.RiskLoadingMatrix{}, err
	}
	matrix, ok := h.riskLoadings[normalizeDate(date)]
	if !ok {
		return domain.RiskLoadingMatrix{}, internal.MissingDataError{What: "risk loadings", Date: date}
	}
	return matrix, nil
}

func (h *CSVMarketData) GetPrices(ctx context.Context, date time.Time) (map[domain.Asset]decimal.Decimal, error) {
	if err := h.ensureLoaded(); err != nil {
		return nil, err
	}
	prices, ok := h.prices[normalizeDate(date)]
	if !ok {
		return nil, internal.MissingDataError{What: "prices", Date: date}
	}
	return prices, nil
}

func (h *CSVMarketData) ensureLoaded() error {
	h.loadOnce.Do(func() {
		h.loadErr = h.load()
	})
	return h.loadErr
}

func (h *CSVMarketData) load() error {
	h.fundamentals = map[time.Time]map[string]map[domain.Asset]*float64{}
	h.universes = map[time.Time]domain.Universe{}
	h.riskLoadings = map[time.Time]domain.RiskLoadingMatrix{}
	h.prices = map[time.Time]map[domain.Asset]decimal.Decimal{}

	fundamentalRows := []fundamentalRow{}
	err := readCsv(filepath.Join(h.dir, "fundamentals.csv"), &fundamentalRows)
	if err != nil {
		return err
	}
	for _, row := range fundamentalRows {
		date, err := parseDate(row.Date)
		if err != nil {
			return fmt.Errorf("fundamentals.csv: %w", err)
		}
		if _, ok := h.fundamentals[date]; !ok {
			h.fundamentals[date] = map[string]map[domain.Asset]*float64{}
		}
		if _, ok := h.fundamentals[date][row.Field]; !ok {
			h.fundamentals[date][row.Field] = map[domain.Asset]*float64{}
		}
		h.fundamentals[date][row.Field][domain.Asset(row.Symbol)] = row.Value.value
	}

	universeRows := []universeRow{}
	err = readCsv(filepath.Join(h.dir, "universe.csv"), &universeRows)
	if err != nil {
		return err
	}
	for _, row := range universeRows {
		date, err := parseDate(row.Date)
		if err != nil {
			return fmt.Errorf("universe.csv: %w", err)
		}
		universe, ok := h.universes[date]
		if !ok {
			universe = domain.Universe{
				Date:            date,
				Eligible:        domain.AssetSet{},
				AvgDollarVolume: map[domain.Asset]float64{},
			}
		}
		asset := domain.Asset(row.Symbol)
		if row.Tradable {
			universe.Eligible.Add(asset)
		}
		if row.AvgDollarVolume.value != nil {
			universe.AvgDollarVolume[asset] = *row.AvgDollarVolume.value
		}
		h.universes[date] = universe
	}

	riskRows := []riskLoadingRow{}
	err = readCsv(filepath.Join(h.dir, "risk_loadings.csv"), &riskRows)
	if err != nil {
		return err
	}
	type loadingKey struct {
		Asset  domain.Asset
		Factor string
	}
	byDate := map[time.Time]map[loadingKey]float64{}
	factorsByDate := map[time.Time]map[string]struct{}{}
	for _, row := range riskRows {
		date, err := parseDate(row.Date)
		if err != nil {
			return fmt.Errorf("risk_loadings.csv: %w", err)
		}
		if _, ok := byDate[date]; !ok {
			byDate[date] = map[loadingKey]float64{}
			factorsByDate[date] = map[string]struct{}{}
		}
		byDate[date][loadingKey{Asset: domain.Asset(row.Symbol), Factor: row.Factor}] = row.Loading
		factorsByDate[date][row.Factor] = struct{}{}
	}
	for date, loadings := range byDate {
		factors := []string{}
		for f := range factorsByDate[date] {
			factors = append(factors, f)
		}
		sort.Strings(factors)

		matrix := domain.RiskLoadingMatrix{
			Date:     date,
			Factors:  factors,
			Loadings: map[domain.Asset][]float64{},
		}
		for key, loading := range loadings {
			if _, ok := matrix.Loadings[key.Asset]; !ok {
				matrix.Loadings[key.Asset] = make([]float64, len(factors))
			}
			for i, f := range factors {
				if f == key.Factor {
					matrix.Loadings[key.Asset][i] = loading
				}
			}
		}
		h.riskLoadings[date] = matrix
	}

	priceRows := []priceRow{}
	err = readCsv(filepath.Join(h.dir, "prices.csv"), &priceRows)
	if err != nil {
		return err
	}
	for _, row := range priceRows {
		date, err := parseDate(row.Date)
		if err != nil {
			return fmt.Errorf("prices.csv: %w", err)
		}
		if _, ok := h.prices[date]; !ok {
			h.prices[date] = map[domain.Asset]decimal.Decimal{}
		}
		h.prices[date][domain.Asset(row.Symbol)] = row.Price
	}

	return nil
}

func readCsv(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	err = gocsv.UnmarshalFile(f, out)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return date, nil
}

func normalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
