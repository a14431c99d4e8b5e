package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

type Secrets struct {
	Db              DbSecrets `json:"db"`
	HeliusApiKey    string    `json:"helius"`
	CoinGeckoApiKey string    `json:"coingecko"`
	ChatGPTApiKey   string    `json:"gpt"`
	Jwt             string    `json:"jwt"`
	PriceProvider   string    `json:"priceProvider"`
	Port            string    `json:"port"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

// LoadSecrets layers config sources: .env file, then the env-specific
// secrets file, then plain environment variables. Later sources win.
// A missing secrets file is fine since env vars can supply everything.
func LoadSecrets() (*Secrets, error) {
	// best effort - local dev keeps overrides in .env
	_ = godotenv.Load()

	secretsFile := "/go/src/app/secrets.json"
	if os.Getenv("SOLRISK_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("SOLRISK_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}

	secrets := Secrets{}
	f, err := os.ReadFile(secretsFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}
	if err == nil {
		err = json.Unmarshal(f, &secrets)
		if err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", secretsFile, err)
		}
	}

	applyEnvOverrides(&secrets)

	if secrets.Port == "" {
		secrets.Port = "3010"
	}
	if secrets.PriceProvider == "" {
		secrets.PriceProvider = "coingecko"
	}

	return &secrets, nil
}

func applyEnvOverrides(secrets *Secrets) {
	overrides := map[string]*string{
		"SOLRISK_PORT":       &secrets.Port,
		"HELIUS_API_KEY":     &secrets.HeliusApiKey,
		"COINGECKO_API_KEY":  &secrets.CoinGeckoApiKey,
		"CHATGPT_SECRET_KEY": &secrets.ChatGPTApiKey,
		"JWT_SECRET":         &secrets.Jwt,
		"PRICE_PROVIDER":     &secrets.PriceProvider,
		"DB_HOST":            &secrets.Db.Host,
		"DB_PORT":            &secrets.Db.Port,
		"DB_USER":            &secrets.Db.User,
		"DB_PASSWORD":        &secrets.Db.Password,
		"DB_NAME":            &secrets.Db.Database,
	}
	for key, target := range overrides {
		if value, ok := os.LookupEnv(key); ok {
			*target = value
		}
	}
	if value, ok := os.LookupEnv("DB_SSL"); ok {
		secrets.Db.EnableSsl = value == "true" || value == "1"
	}
}
