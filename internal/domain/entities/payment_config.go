package entities

import (
	"errors"
	"strings"
	"time"
)

const (
	PaymentEnvironmentSandbox    = "sandbox"
	PaymentEnvironmentProduction = "production"

	DefaultChargeWindow   = 3600 * time.Second
	DefaultPollInterval   = 2 * time.Second
	DefaultGatewayTimeout = 15 * time.Second
)

// PaymentConfig is the process-wide payment setup. It is read-only after
// startup, so it is shared without locking.
type PaymentConfig struct {
	EnableDirectTransferCharge bool
	EnableCardGateway          bool
	Environment                string

	AccessToken string
	CertFile    string
	KeyFile     string

	PixKey       string
	MerchantName string
	MerchantCity string

	ChargeWindow   time.Duration
	PollInterval   time.Duration
	GatewayTimeout time.Duration

	// MockMode replaces the processor with a local fake.
	MockMode bool
}

// MissingCredentials lists the transport credentials that are not configured.
// Mock mode needs none.
func (c PaymentConfig) MissingCredentials() []string {
	if c.MockMode {
		return nil
	}
	var missing []string
	if strings.TrimSpace(c.AccessToken) == "" {
		missing = append(missing, "access token")
	}
	if strings.TrimSpace(c.CertFile) == "" {
		missing = append(missing, "client certificate")
	}
	if strings.TrimSpace(c.KeyFile) == "" {
		missing = append(missing, "client key")
	}
	if strings.TrimSpace(c.PixKey) == "" {
		missing = append(missing, "pix key")
	}
	return missing
}

func (c PaymentConfig) Validate() error {
	switch c.Environment {
	case PaymentEnvironmentSandbox, PaymentEnvironmentProduction:
	default:
		return errors.New("payment environment must be sandbox or production")
	}
	if c.ChargeWindow <= 0 || c.PollInterval <= 0 || c.GatewayTimeout <= 0 {
		return errors.New("payment durations must be positive")
	}
	return nil
}

func (c PaymentConfig) WithDefaults() PaymentConfig {
	if c.Environment == "" {
		c.Environment = PaymentEnvironmentSandbox
	}
	if c.ChargeWindow <= 0 {
		c.ChargeWindow = DefaultChargeWindow
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.GatewayTimeout <= 0 {
		c.GatewayTimeout = DefaultGatewayTimeout
	}
	return c
}
