package api

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"log"
	"time"

	"solrisk/internal/calculator"
	"solrisk/internal/db/models/postgres/public/model"
	"solrisk/internal/logger"
	"solrisk/internal/repository"
	"solrisk/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	// Db is nil when no database is configured; the request log and the
	// price cache are disabled in that mode.
	Db *sql.DB

	AnalysisService  service.AnalysisService
	PriceService     service.PriceService
	NarrativeService service.NarrativeService
	ChartService     service.ChartService
	ExportService    service.ExportService

	RiskCalculator        calculator.RiskMetricsCalculator
	StatsCalculator       calculator.PortfolioStatsCalculator
	CorrelationCalculator calculator.CorrelationCalculator

	ApiRequestRepository repository.ApiRequestRepository

	JwtSecret string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.loggerMiddleware)
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "solrisk api"})
	})
	router.POST("/analyze", m.analyze)
	router.POST("/riskMetrics", m.riskMetrics)
	router.POST("/correlations", m.correlations)
	router.GET("/priceHistory", m.priceHistory)
	router.POST("/narrative", m.narrative)
	router.POST("/scenario", m.scenario)
	router.GET("/export/holdings.csv", m.exportHoldings)
	router.GET("/charts/allocation.png", m.allocationChart)
	router.GET("/charts/priceHistory.png", m.priceHistoryChart)
	router.GET("/usageStats", m.usageStats)
	router.POST("/updatePrices", m.requireAdmin, m.updatePrices)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) loggerMiddleware(c *gin.Context) {
	lg := logger.New().With(
		"method", c.Request.Method,
		"route", c.FullPath(),
	)
	c.Set(logger.ContextKey, lg)
	c.Next()
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	if m.Db == nil || m.ApiRequestRepository == nil {
		ctx.Next()
		return
	}

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Println(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Println(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Println(err)
		}
	}
}
