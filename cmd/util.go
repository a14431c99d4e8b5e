package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"solrisk/api"
	"solrisk/internal/calculator"
	"solrisk/internal/repository"
	"solrisk/internal/service"
	"solrisk/internal/util"
	"solrisk/pkg/coingecko"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	if handler == nil || handler.Db == nil {
		return
	}
	if err := handler.Db.Close(); err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

// InitializeDependencies wires the full dependency graph from config.
// Optional pieces (database, helius, gpt) stay nil when unconfigured and
// the services degrade accordingly.
func InitializeDependencies() (*api.ApiHandler, *util.Secrets, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	var dbConn *sql.DB
	if secrets.Db.Host != "" {
		dbConn, err = sql.Open("postgres", secrets.Db.ToConnectionStr())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
		}
	}

	var priceProvider repository.PriceProviderRepository
	if strings.EqualFold(secrets.PriceProvider, "yahoo") {
		priceProvider = repository.NewYahooPriceProvider()
	} else {
		priceProvider = repository.NewCoinGeckoPriceProvider(coingecko.NewClient(secrets.CoinGeckoApiKey))
	}

	var priceHistoryRepository repository.PriceHistoryRepository
	var apiRequestRepository repository.ApiRequestRepository
	if dbConn != nil {
		priceHistoryRepository = repository.NewPriceHistoryRepository()
		apiRequestRepository = repository.NewApiRequestRepository()
	}

	var heliusRepository repository.HeliusRepository
	if secrets.HeliusApiKey != "" {
		heliusRepository = repository.NewHeliusRepository(secrets.HeliusApiKey)
	}

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, nil, err
		}
	}

	priceService := service.NewPriceService(
		dbConn,
		priceProvider,
		priceHistoryRepository,
		calculator.NewSyntheticPriceGenerator(calculator.DefaultSyntheticConfig()),
	)

	riskCalculator := calculator.NewRiskMetricsCalculator(
		calculator.NewStaticAssetProfileProvider(),
		calculator.DefaultRiskConfig(),
	)
	statsCalculator := calculator.NewPortfolioStatsCalculator()
	correlationCalculator := calculator.NewCorrelationCalculator()

	analysisService := service.NewAnalysisService(
		heliusRepository,
		priceService,
		riskCalculator,
		statsCalculator,
		correlationCalculator,
	)

	return &api.ApiHandler{
		Db:                    dbConn,
		AnalysisService:       analysisService,
		PriceService:          priceService,
		NarrativeService:      service.NewNarrativeService(gptRepository),
		ChartService:          service.NewChartService(),
		ExportService:         service.NewExportService(),
		RiskCalculator:        riskCalculator,
		StatsCalculator:       statsCalculator,
		CorrelationCalculator: correlationCalculator,
		ApiRequestRepository:  apiRequestRepository,
		JwtSecret:             secrets.Jwt,
	}, secrets, nil
}
