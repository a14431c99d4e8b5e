package repository

import (
	"database/sql"
	"fmt"
)

type UsageStats struct {
	TotalRequests   int `json:"totalRequests"`
	UniqueClients   int `json:"uniqueClients"`
	WalletsAnalyzed int `json:"walletsAnalyzed"`
}

func GetUsageStats(tx *sql.DB) (*UsageStats, error) {
	query := `select
	(select count(*) from api_request) as "total_requests",
	(select count(distinct ip_address) from api_request) as "unique_clients",
	(select count(*) from api_request where route = '/analyze') as "wallets_analyzed";`

	row := tx.QueryRow(query)

	out := UsageStats{}

	err := row.Scan(&out.TotalRequests, &out.UniqueClients, &out.WalletsAnalyzed)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage stats: %w", err)
	}

	return &out, nil
}
