package coingecko

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"solrisk/internal/logger"
	"strings"
	"time"
)

const defaultBaseUrl = "https://api.coingecko.com/api/v3"

// free tier gateway timeouts are common, so transient statuses get retried
const maxAttempts = 3

type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseUrl    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		ApiKey:  apiKey,
		BaseUrl: defaultBaseUrl,
	}
}

type MarketChartResponse struct {
	Prices [][]float64 `json:"prices"`
}

// SimplePrice returns the current usd price for each CoinGecko id.
func (c *Client) SimplePrice(ids []string) (map[string]float64, error) {
	url := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", c.BaseUrl, strings.Join(ids, ","))

	responseBytes, err := c.get(url)
	if err != nil {
		return nil, err
	}

	responseJson := map[string]map[string]float64{}
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to parse simple price response: %w", err)
	}

	out := map[string]float64{}
	for id, quote := range responseJson {
		out[id] = quote["usd"]
	}

	return out, nil
}

// MarketChartDaily returns one closing price per day, oldest first.
func (c *Client) MarketChartDaily(id string, days int) ([]float64, error) {
	url := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d&interval=daily", c.BaseUrl, id, days)

	responseBytes, err := c.get(url)
	if err != nil {
		return nil, err
	}

	responseJson := MarketChartResponse{}
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to parse market chart response: %w", err)
	}

	prices := []float64{}
	for _, point := range responseJson.Prices {
		// each point is [timestamp ms, price]
		if len(point) == 2 {
			prices = append(prices, point[1])
		}
	}

	return prices, nil
}

func (c *Client) get(url string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		if c.ApiKey != "" {
			req.Header.Set("x-cg-demo-api-key", c.ApiKey)
		}

		response, err := c.HttpClient.Do(req)
		if err != nil {
			// covers client timeouts
			lastErr = err
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		responseBytes, err := io.ReadAll(response.Body)
		response.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
		}

		if response.StatusCode == 429 || response.StatusCode == 504 {
			logger.Debug("coingecko returned %d. retrying...", response.StatusCode)
			lastErr = fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}
		if response.StatusCode != 200 {
			return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
		}

		return responseBytes, nil
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", maxAttempts, lastErr)
}
