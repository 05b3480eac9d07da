package internal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"longshort/internal/util"
)

func validConfig() StrategyConfig {
	return StrategyConfig{
		Name:             "test",
		TotalPositions:   600,
		MaxGrossLeverage: 1.0,
		Cadence:          CadenceDaily,
		Factors: []FactorConfig{
			{
				Name:          "value",
				Expression:    `field("ebit") / field("enterprise_value")`,
				Weight:        1,
				WinsorizeLow:  0.05,
				WinsorizeHigh: 0.95,
			},
		},
	}
}

func TestStrategyConfig_Validate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(c *StrategyConfig)
			field  string
		}{
			{
				name:   "too few positions",
				mutate: func(c *StrategyConfig) { c.TotalPositions = 1 },
				field:  "totalPositions",
			},
			{
				name:   "odd position count",
				mutate: func(c *StrategyConfig) { c.TotalPositions = 601 },
				field:  "totalPositions",
			},
			{
				name:   "non-positive leverage",
				mutate: func(c *StrategyConfig) { c.MaxGrossLeverage = 0 },
				field:  "maxGrossLeverage",
			},
			{
				name:   "negative dollar tolerance",
				mutate: func(c *StrategyConfig) { c.DollarNeutralTolerance = util.FloatPointer(-1) },
				field:  "dollarNeutralTolerance",
			},
			{
				name:   "negative risk tolerance",
				mutate: func(c *StrategyConfig) { c.RiskFactorTolerance = util.FloatPointer(-0.1) },
				field:  "riskFactorTolerance",
			},
			{
				name:   "unknown cadence",
				mutate: func(c *StrategyConfig) { c.Cadence = "hourly" },
				field:  "cadence",
			},
			{
				name:   "no factors",
				mutate: func(c *StrategyConfig) { c.Factors = nil },
				field:  "factors",
			},
			{
				name: "inverted winsorize bounds",
				mutate: func(c *StrategyConfig) {
					c.Factors[0].WinsorizeLow = 0.9
					c.Factors[0].WinsorizeHigh = 0.1
				},
				field: "factors",
			},
			{
				name:   "factor without an expression",
				mutate: func(c *StrategyConfig) { c.Factors[0].Expression = "" },
				field:  "factors",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				config := validConfig()
				tc.mutate(&config)

				err := config.Validate()

				configErr := ConfigurationError{}
				require.ErrorAs(t, err, &configErr)
				require.Equal(t, tc.field, configErr.Field)
			})
		}
	})
}

func TestStrategyConfig_Defaults(t *testing.T) {
	config := validConfig()

	require.Equal(t, 300, config.PositionsPerSide())
	require.InDelta(t, 2.0/600.0, config.LongCap(), 1e-15)
	require.InDelta(t, 2.0/600.0, config.ShortCap(), 1e-15)
	require.Equal(t, 1e-6, config.NeutralityTolerance())
	require.Equal(t, 0.05, config.RiskTolerance())

	t.Run("explicit zero tolerance means strict neutrality", func(t *testing.T) {
		config := validConfig()
		config.DollarNeutralTolerance = util.FloatPointer(0)
		config.RiskFactorTolerance = util.FloatPointer(0)

		require.Zero(t, config.NeutralityTolerance())
		require.Zero(t, config.RiskTolerance())
	})

	t.Run("explicit caps override the 2/N default", func(t *testing.T) {
		config := validConfig()
		config.MaxLongPositionSize = 0.01
		config.MaxShortPositionSize = 0.02

		require.Equal(t, 0.01, config.LongCap())
		require.Equal(t, 0.02, config.ShortCap())
	})
}

func TestStrategyConfig_RebalanceDue(t *testing.T) {
	t.Run("daily cadence runs every weekday", func(t *testing.T) {
		config := validConfig()

		require.True(t, config.RebalanceDue(util.NewDate(2025, 3, 3)))  // monday
		require.True(t, config.RebalanceDue(util.NewDate(2025, 3, 4)))  // tuesday
		require.False(t, config.RebalanceDue(util.NewDate(2025, 3, 8))) // saturday
	})

	t.Run("monthly cadence runs on the first weekday", func(t *testing.T) {
		config := validConfig()
		config.Cadence = CadenceMonthly

		// march 2025 starts on a saturday, so the 3rd is the first weekday
		require.False(t, config.RebalanceDue(util.NewDate(2025, 3, 1)))
		require.True(t, config.RebalanceDue(util.NewDate(2025, 3, 3)))
		require.False(t, config.RebalanceDue(util.NewDate(2025, 3, 4)))
		require.True(t, config.RebalanceDue(util.NewDate(2025, 4, 1)))
	})
}

func TestLoadStrategyConfig(t *testing.T) {
	t.Run("loads the shipped strategy files", func(t *testing.T) {
		for _, name := range []string{"primero", "segundo", "tercero"} {
			config, err := LoadStrategyConfig("../strategies/" + name + ".json")
			require.NoError(t, err)
			require.Equal(t, name, config.Name)
			require.Equal(t, 600, config.TotalPositions)
			require.Equal(t, 1.0, config.MaxGrossLeverage)
		}
	})

	t.Run("tercero carries a liquidity floor", func(t *testing.T) {
		config, err := LoadStrategyConfig("../strategies/tercero.json")
		require.NoError(t, err)
		require.NotNil(t, config.MinDollarVolume)
		require.Equal(t, 1e7, *config.MinDollarVolume)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadStrategyConfig("../strategies/nope.json")
		require.Error(t, err)
	})
}
