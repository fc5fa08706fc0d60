package pricing

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"virtusim-backend/pkg/config"
)

const (
	dataKey         = "data"
	priceKey        = "price"
	pricingKey      = "pricing"
	displayPriceKey = "display_price"
)

// ApplyToServices добавляет pricing и display_price каждой услуге из data[].
// Документ другой формы возвращается без изменений. Элементы без price
// не трогаются, элементы с нечисловой ценой получают display_price с
// исходной строкой.
func ApplyToServices(doc any, cfg config.PricingConfig) any {
	root, ok := doc.(map[string]any)
	if !ok {
		return doc
	}
	items, ok := root[dataKey].([]any)
	if !ok {
		return doc
	}

	for _, item := range items {
		service, ok := item.(map[string]any)
		if !ok {
			continue
		}
		raw, exists := service[priceKey]
		if !exists {
			continue
		}
		price, ok := ParsePrice(raw)
		if !ok {
			service[displayPriceKey] = rawText(raw)
			continue
		}
		result := Calculate(price, cfg)
		service[pricingKey] = result
		service[displayPriceKey] = FormatRupiah(result.SellingPrice)
	}
	return doc
}

// ParsePrice принимает цену в любом виде, в котором её отдаёт провайдер:
// число JSON, json.Number или числовую строку.
func ParsePrice(raw any) (float64, bool) {
	switch v := raw.(type) {
	case json.Number:
		return parseDecimalString(v.String())
	case string:
		return parseDecimalString(v)
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		return ParsePrice(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func parseDecimalString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	// "1e400" разбирается, но в float64 превращается в +Inf
	f := d.InexactFloat64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// FormatRupiah: 1300 -> "Rp 1.300". Суммы за пределами int64 выводятся
// целым числом без разделителей.
func FormatRupiah(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprintf("Rp %v", amount)
	}
	rounded := decimal.NewFromFloat(amount).Round(0)
	if rounded.GreaterThan(maxInt64) || rounded.LessThan(minInt64) {
		return "Rp " + rounded.String()
	}
	p := message.NewPrinter(language.Indonesian)
	return p.Sprintf("Rp %d", rounded.IntPart())
}

func rawText(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
