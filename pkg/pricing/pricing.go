// Package pricing считает продажную цену услуги по оптовой цене провайдера:
// процентная наценка, фиксированная надбавка, минимальная цена и округление
// до сотен.
package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"virtusim-backend/pkg/config"
)

var (
	hundred      = decimal.NewFromInt(100)
	roundingStep = decimal.NewFromInt(100)
)

// Result: итог расчёта. При некорректном входе Error заполнен,
// SellingPrice равен OriginalPrice, Profit равен нулю.
type Result struct {
	OriginalPrice    float64 `json:"original_price"`
	MarkupPercentage float64 `json:"markup_percentage"`
	FixedMarkup      float64 `json:"fixed_markup"`
	SellingPrice     float64 `json:"selling_price"`
	Profit           float64 `json:"profit"`
	Error            string  `json:"error,omitempty"`
}

func (r Result) Degraded() bool {
	return r.Error != ""
}

// Calculate никогда не паникует и не возвращает ошибку наружу.
// Profit не ограничивается снизу: округление до сотен может дать цену
// ниже оптовой.
func Calculate(original float64, cfg config.PricingConfig) Result {
	res := Result{
		OriginalPrice:    original,
		MarkupPercentage: cfg.MarkupPercentage,
		FixedMarkup:      cfg.FixedMarkup,
	}
	if err := validate(original, cfg); err != nil {
		return degrade(res, err)
	}

	orig := decimal.NewFromFloat(original)
	multiplier := decimal.NewFromInt(1).Add(decimal.NewFromFloat(cfg.MarkupPercentage).Div(hundred))
	withPct := orig.Mul(multiplier)
	withFixed := withPct.Add(decimal.NewFromFloat(cfg.FixedMarkup))

	minPrice := decimal.NewFromFloat(cfg.MinPrice)
	floored := decimal.Max(withFixed, minPrice)

	final := floored.Div(roundingStep).RoundBank(0).Mul(roundingStep)
	// банковское округление может опустить цену ниже минимальной (1050 -> 1000)
	if final.LessThan(minPrice) {
		final = final.Add(roundingStep)
	}

	selling := final.InexactFloat64()
	profit := final.Sub(orig).InexactFloat64()
	if !isFinite(selling) || !isFinite(profit) {
		return degrade(res, fmt.Errorf("pricing calculation error: selling price overflows float64"))
	}
	res.SellingPrice = selling
	res.Profit = profit
	return res
}

// degrade заполняет Error, а нечисловые значения обнуляет: NaN и Inf
// не кодируются в JSON.
func degrade(res Result, err error) Result {
	res.OriginalPrice = finiteOrZero(res.OriginalPrice)
	res.MarkupPercentage = finiteOrZero(res.MarkupPercentage)
	res.FixedMarkup = finiteOrZero(res.FixedMarkup)
	res.SellingPrice = res.OriginalPrice
	res.Profit = 0
	res.Error = err.Error()
	return res
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOrZero(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

func validate(original float64, cfg config.PricingConfig) error {
	values := []struct {
		name  string
		value float64
	}{
		{"original_price", original},
		{"markup_percentage", cfg.MarkupPercentage},
		{"fixed_markup", cfg.FixedMarkup},
		{"min_price", cfg.MinPrice},
	}
	for _, v := range values {
		if !isFinite(v.value) {
			return fmt.Errorf("pricing calculation error: %s is not a finite number", v.name)
		}
		if v.value < 0 {
			return fmt.Errorf("pricing calculation error: %s must not be negative, got %v", v.name, v.value)
		}
	}
	return nil
}
