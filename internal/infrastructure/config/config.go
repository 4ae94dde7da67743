package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"portal_servicos/internal/domain/entities"
)

const (
	PersistenceDynamoDB = "dynamodb"
	PersistenceMemory   = "memory"
)

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
	UseSSL    bool
}

func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != ""
}

type Config struct {
	Port        string
	Persistence string

	RedisURL string
	MinIO    MinIOConfig

	DirectoryURL   string
	DirectoryToken string

	Payment entities.PaymentConfig
}

// Load reads the process configuration from the environment. Values from a
// local .env file are already present through godotenv/autoload.
func Load() (Config, error) {
	cfg := Config{
		Port:        getenvDefault("PORT", "8080"),
		Persistence: strings.ToLower(getenvDefault("PERSISTENCE", PersistenceDynamoDB)),
		RedisURL:    os.Getenv("REDIS_URL"),
		MinIO: MinIOConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getenvDefault("MINIO_BUCKET", "attachments"),
			PublicURL: os.Getenv("MINIO_PUBLIC_URL"),
		},
		DirectoryURL:   os.Getenv("DIRECTORY_URL"),
		DirectoryToken: os.Getenv("DIRECTORY_TOKEN"),
	}

	switch cfg.Persistence {
	case PersistenceDynamoDB, PersistenceMemory:
	default:
		return Config{}, fmt.Errorf("PERSISTENCE must be %s or %s, got %q", PersistenceDynamoDB, PersistenceMemory, cfg.Persistence)
	}

	var err error
	if cfg.MinIO.UseSSL, err = getenvBool("MINIO_USE_SSL", false); err != nil {
		return Config{}, err
	}
	if cfg.MinIO.PublicURL == "" && cfg.MinIO.Endpoint != "" {
		scheme := "http"
		if cfg.MinIO.UseSSL {
			scheme = "https"
		}
		cfg.MinIO.PublicURL = scheme + "://" + cfg.MinIO.Endpoint
	}

	if cfg.Payment, err = loadPayment(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadPayment() (entities.PaymentConfig, error) {
	p := entities.PaymentConfig{
		Environment:  strings.ToLower(getenvDefault("PAYMENT_ENVIRONMENT", entities.PaymentEnvironmentSandbox)),
		AccessToken:  os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		CertFile:     os.Getenv("PAYMENT_CERT_FILE"),
		KeyFile:      os.Getenv("PAYMENT_KEY_FILE"),
		PixKey:       os.Getenv("PIX_KEY"),
		MerchantName: getenvDefault("PIX_MERCHANT_NAME", "Portal de Servicos"),
		MerchantCity: getenvDefault("PIX_MERCHANT_CITY", "Sao Paulo"),
	}

	var err error
	if p.EnableDirectTransferCharge, err = getenvBool("PIX_ENABLED", true); err != nil {
		return p, err
	}
	if p.EnableCardGateway, err = getenvBool("CARD_GATEWAY_ENABLED", false); err != nil {
		return p, err
	}
	if p.MockMode, err = getenvBool("PAYMENT_GATEWAY_MOCK", false); err != nil {
		return p, err
	}
	if !p.MockMode {
		if p.MockMode, err = getenvBool("MERCADOPAGO_MOCK", false); err != nil {
			return p, err
		}
	}
	if p.ChargeWindow, err = getenvDuration("PIX_CHARGE_WINDOW", entities.DefaultChargeWindow); err != nil {
		return p, err
	}
	if p.PollInterval, err = getenvDuration("PIX_POLL_INTERVAL", entities.DefaultPollInterval); err != nil {
		return p, err
	}
	if p.GatewayTimeout, err = getenvDuration("PAYMENT_GATEWAY_TIMEOUT", entities.DefaultGatewayTimeout); err != nil {
		return p, err
	}

	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def, nil
	case "1", "true", "yes", "on", "mock":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%s: invalid boolean %q", key, v)
}

// getenvDuration accepts Go durations ("90s", "1h") or a bare number of
// seconds.
func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("%s: must be positive", key)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive", key)
	}
	return d, nil
}
