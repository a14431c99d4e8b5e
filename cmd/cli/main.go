package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"solrisk/cmd"
	"solrisk/internal/domain"
	"solrisk/internal/repository"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	_ "github.com/lib/pq"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "solrisk",
		Short:        "Risk and correlation analytics for Solana wallets",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(serveCmd(), analyzeCmd(), correlationsCmd(), updatePricesCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var port int
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			apiHandler, secrets, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)

			if port == 0 {
				port = 3010
				if secrets.Port != "" {
					port, err = strconv.Atoi(secrets.Port)
					if err != nil {
						return fmt.Errorf("invalid configured port %q: %w", secrets.Port, err)
					}
				}
			}

			return apiHandler.StartApi(port)
		},
	}
	c.Flags().IntVar(&port, "port", 0, "port to listen on (defaults to the configured port)")
	return c
}

func analyzeCmd() *cobra.Command {
	var days int
	var asJson bool
	c := &cobra.Command{
		Use:   "analyze <wallet-address>",
		Short: "Analyze the risk profile of a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			apiHandler, _, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)

			result, err := apiHandler.AnalysisService.AnalyzeWallet(context.Background(), args[0], days)
			if err != nil {
				return err
			}

			if asJson {
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			printAnalysisSummary(result)
			return nil
		},
	}
	c.Flags().IntVar(&days, "days", 30, "lookback window in days")
	c.Flags().BoolVar(&asJson, "json", false, "print the full result as json")
	return c
}

func correlationsCmd() *cobra.Command {
	var days int
	c := &cobra.Command{
		Use:   "correlations <symbol> <symbol> [symbol...]",
		Short: "Compute pairwise return correlations for a set of tokens",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			apiHandler, _, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)

			symbols := make([]string, 0, len(args))
			for _, s := range args {
				symbols = append(symbols, strings.ToUpper(strings.TrimSpace(s)))
			}

			history := apiHandler.PriceService.GetPriceHistory(context.Background(), symbols, days)
			matrix, err := apiHandler.CorrelationCalculator.BuildMatrix(history)
			if err != nil {
				return err
			}

			printMatrix(matrix, apiHandler.CorrelationCalculator.AnalyzeInsights(matrix))
			return nil
		},
	}
	c.Flags().IntVar(&days, "days", 30, "lookback window in days")
	return c
}

func updatePricesCmd() *cobra.Command {
	var symbols []string
	var days int
	c := &cobra.Command{
		Use:   "update-prices",
		Short: "Refresh the price history cache from the live provider",
		RunE: func(_ *cobra.Command, _ []string) error {
			apiHandler, _, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)

			if len(symbols) == 0 {
				symbols = repository.TrackedSymbols()
			}

			written, err := apiHandler.PriceService.UpdatePrices(context.Background(), symbols, days)
			if err != nil {
				return err
			}
			fmt.Printf("wrote %d rows for %d symbols\n", written, len(symbols))
			return nil
		},
	}
	c.Flags().StringSliceVar(&symbols, "symbols", nil, "symbols to refresh (defaults to all tracked symbols)")
	c.Flags().IntVar(&days, "days", 30, "days of history to fetch")
	return c
}

func printAnalysisSummary(result *domain.AnalysisResult) {
	fmt.Printf("Wallet %s (%d day lookback)\n", result.WalletAddress, result.LookbackDays)
	fmt.Printf("Total value: $%.2f across %d tokens\n\n", result.PortfolioStats.TotalValue, result.PortfolioStats.NumTokens)

	for _, h := range result.Holdings {
		fmt.Printf("  %-8s $%s (%.1f%%)\n", h.Symbol, h.ValueUSD.StringFixed(2), h.Weight*100)
	}

	fmt.Println()
	fmt.Printf("Volatility: %.2f%%  Sharpe: %.2f  Max drawdown: %.2f%%\n",
		result.RiskMetrics.PortfolioVolatility*100, result.RiskMetrics.SharpeRatio, result.RiskMetrics.MaxDrawdown*100)
	fmt.Printf("VaR 95%%: $%.2f  CVaR 95%%: $%.2f\n", result.RiskMetrics.Var95, result.RiskMetrics.CVar95)
	fmt.Printf("Concentration: %s  Correlation: %s  Overall: %s\n",
		result.RiskMetrics.ConcentrationRisk, result.RiskMetrics.CorrelationRisk, result.OverallRiskLevel)

	if result.InsufficientCorrelation {
		fmt.Println("Correlation analysis skipped: fewer than 2 priced holdings")
	}

	if len(result.Recommendations) > 0 {
		fmt.Println()
		fmt.Println("Recommendations:")
		for _, r := range result.Recommendations {
			fmt.Printf("  - %s\n", r)
		}
	}
}

func printMatrix(matrix *domain.CorrelationMatrix, insights domain.CorrelationInsights) {
	fmt.Printf("%-8s", "")
	for _, s := range matrix.Symbols {
		fmt.Printf("%8s", s)
	}
	fmt.Println()
	for i, s := range matrix.Symbols {
		fmt.Printf("%-8s", s)
		for j := range matrix.Symbols {
			fmt.Printf("%8.2f", matrix.At(i, j))
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Printf("Avg: %.2f  Max: %.2f  Min: %.2f  Diversification score: %.2f\n",
		insights.AvgCorrelation, insights.MaxCorrelation, insights.MinCorrelation, insights.DiversificationScore)
	for _, line := range insights.RiskInsights {
		fmt.Println(line)
	}
}
