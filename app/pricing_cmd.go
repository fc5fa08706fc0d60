package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"virtusim-backend/pkg/config"
	"virtusim-backend/pkg/pricing"
)

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "Таблица прибыли для типовых сценариев наценки",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeScenarioTable(cmd.OutOrStdout(), pricing.DefaultScenarioPrices, pricing.DefaultScenarios())
			return nil
		},
	}
}

func newQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote <original_price>",
		Short: "Посчитать продажную цену с текущими параметрами наценки",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[0], 64)
			if err != nil || price <= 0 {
				return fmt.Errorf("цена должна быть положительным числом: %q", args[0])
			}
			cfg := config.New()
			writeQuote(cmd.OutOrStdout(), pricing.Calculate(price, cfg.Pricing))
			return nil
		},
	}
}

func writeScenarioTable(w io.Writer, prices []float64, scenarios []pricing.Scenario) {
	table := pricing.ProfitTable(prices, scenarios)

	fmt.Fprintf(w, "%-12s", "Price")
	for _, s := range scenarios {
		fmt.Fprintf(w, "%-14s", s.Name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 12+14*len(scenarios)))

	for i, row := range table {
		fmt.Fprintf(w, "%-12s", pricing.FormatRupiah(prices[i]))
		for _, res := range row {
			fmt.Fprintf(w, "%-14s", pricing.FormatRupiah(res.Profit))
		}
		fmt.Fprintln(w)
	}
}

func writeQuote(w io.Writer, res pricing.Result) {
	if res.Degraded() {
		fmt.Fprintf(w, "error: %s\n", res.Error)
		return
	}
	fmt.Fprintf(w, "%s -> %s (profit %s, markup %v%% + %s)\n",
		pricing.FormatRupiah(res.OriginalPrice),
		pricing.FormatRupiah(res.SellingPrice),
		pricing.FormatRupiah(res.Profit),
		res.MarkupPercentage,
		pricing.FormatRupiah(res.FixedMarkup),
	)
}
