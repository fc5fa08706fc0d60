package pricing

import "virtusim-backend/pkg/config"

// Scenario: именованный набор параметров наценки для сравнения прибыли.
type Scenario struct {
	Name   string
	Config config.PricingConfig
}

func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Conservative", Config: config.PricingConfig{MarkupPercentage: 20, FixedMarkup: 300, MinPrice: 1500}},
		{Name: "Balanced", Config: config.PricingConfig{MarkupPercentage: 30, FixedMarkup: 500, MinPrice: 2000}},
		{Name: "Aggressive", Config: config.PricingConfig{MarkupPercentage: 40, FixedMarkup: 1000, MinPrice: 2500}},
		{Name: "Premium", Config: config.PricingConfig{MarkupPercentage: 50, FixedMarkup: 1500, MinPrice: 3000}},
	}
}

var DefaultScenarioPrices = []float64{2000, 5000, 10000, 15000, 20000}

// ProfitTable возвращает строку результатов на каждую цену,
// столбцы идут в порядке scenarios.
func ProfitTable(prices []float64, scenarios []Scenario) [][]Result {
	table := make([][]Result, 0, len(prices))
	for _, price := range prices {
		row := make([]Result, 0, len(scenarios))
		for _, s := range scenarios {
			row = append(row, Calculate(price, s.Config))
		}
		table = append(table, row)
	}
	return table
}
