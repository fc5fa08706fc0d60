package pricing

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtusim-backend/pkg/config"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		original    float64
		cfg         config.PricingConfig
		wantSelling float64
		wantProfit  float64
	}{
		{
			name:        "default_markup",
			original:    1000,
			cfg:         config.PricingConfig{MarkupPercentage: 30, FixedMarkup: 0, MinPrice: 1000},
			wantSelling: 1300,
			wantProfit:  300,
		},
		{
			name:        "min_price_applies",
			original:    500,
			cfg:         config.PricingConfig{MarkupPercentage: 30, FixedMarkup: 500, MinPrice: 2000},
			wantSelling: 2000,
			wantProfit:  1500,
		},
		{
			name:        "balanced_scenario",
			original:    5000,
			cfg:         config.PricingConfig{MarkupPercentage: 30, FixedMarkup: 500, MinPrice: 2000},
			wantSelling: 7000,
			wantProfit:  2000,
		},
		{
			name:        "rounds_to_nearest_hundred",
			original:    1234,
			cfg:         config.PricingConfig{MarkupPercentage: 10, FixedMarkup: 0, MinPrice: 0},
			wantSelling: 1400, // 1357.4
			wantProfit:  166,
		},
		{
			name:        "half_rounds_to_even_down",
			original:    1250,
			cfg:         config.PricingConfig{},
			wantSelling: 1200,
			wantProfit:  -50,
		},
		{
			name:        "half_rounds_to_even_up",
			original:    1350,
			cfg:         config.PricingConfig{},
			wantSelling: 1400,
			wantProfit:  50,
		},
		{
			name:        "rounding_never_drops_below_min",
			original:    0,
			cfg:         config.PricingConfig{MinPrice: 1050},
			wantSelling: 1100,
			wantProfit:  1100,
		},
		{
			name:        "negative_profit_is_preserved",
			original:    1049,
			cfg:         config.PricingConfig{},
			wantSelling: 1000,
			wantProfit:  -49,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.original, tt.cfg)

			assert.False(t, got.Degraded(), got.Error)
			assert.Equal(t, tt.original, got.OriginalPrice)
			assert.Equal(t, tt.cfg.MarkupPercentage, got.MarkupPercentage)
			assert.Equal(t, tt.cfg.FixedMarkup, got.FixedMarkup)
			assert.Equal(t, tt.wantSelling, got.SellingPrice)
			assert.Equal(t, tt.wantProfit, got.Profit)
		})
	}
}

func TestCalculateDegradesOnInvalidInput(t *testing.T) {
	valid := config.PricingConfig{MarkupPercentage: 30, MinPrice: 1000}

	tests := []struct {
		name     string
		original float64
		cfg      config.PricingConfig
	}{
		{"nan_price", math.NaN(), valid},
		{"inf_price", math.Inf(1), valid},
		{"negative_price", -100, valid},
		{"negative_markup", 1000, config.PricingConfig{MarkupPercentage: -5}},
		{"inf_min_price", 1000, config.PricingConfig{MinPrice: math.Inf(1)}},
		{"inf_markup", 1000, config.PricingConfig{MarkupPercentage: math.Inf(1)}},
		{"overflowing_result", math.MaxFloat64, valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.original, tt.cfg)

			require.True(t, got.Degraded())
			assert.Contains(t, got.Error, "pricing calculation error")
			assert.Equal(t, 0.0, got.Profit)
			assert.Equal(t, got.OriginalPrice, got.SellingPrice)
			if math.IsNaN(tt.original) || math.IsInf(tt.original, 0) {
				assert.Equal(t, 0.0, got.SellingPrice)
			} else {
				assert.Equal(t, tt.original, got.SellingPrice)
			}

			_, err := json.Marshal(got)
			assert.NoError(t, err, "результат должен кодироваться в JSON")
		})
	}
}

func TestCalculateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		original := math.Round(rng.Float64()*1_000_000) / 100
		cfg := config.PricingConfig{
			MarkupPercentage: math.Round(rng.Float64()*10000) / 100,
			FixedMarkup:      math.Round(rng.Float64()*500000) / 100,
			MinPrice:         math.Round(rng.Float64()*1_000_000) / 100,
		}

		first := Calculate(original, cfg)
		second := Calculate(original, cfg)

		require.False(t, first.Degraded(), first.Error)
		assert.Equal(t, first, second, "расчёт должен быть детерминированным")
		assert.GreaterOrEqual(t, first.SellingPrice, cfg.MinPrice, "original=%v cfg=%+v", original, cfg)
		assert.Zero(t, math.Mod(first.SellingPrice, 100), "original=%v cfg=%+v", original, cfg)
	}
}

func TestProfitTable(t *testing.T) {
	scenarios := DefaultScenarios()
	table := ProfitTable(DefaultScenarioPrices, scenarios)

	require.Len(t, table, len(DefaultScenarioPrices))
	for _, row := range table {
		require.Len(t, row, len(scenarios))
	}

	// Balanced, 2000 -> 2000*1.3+500 = 3100
	assert.Equal(t, 3100.0, table[0][1].SellingPrice)
	assert.Equal(t, 1100.0, table[0][1].Profit)
	// Premium, 20000 -> 20000*1.5+1500 = 31500
	assert.Equal(t, 31500.0, table[4][3].SellingPrice)
}
