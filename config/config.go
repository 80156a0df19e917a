package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultMercadoPagoBaseURL = "https://api.mercadopago.com"
	// MercadoPagoHTTPTimeout bounds every outbound provider call.
	MercadoPagoHTTPTimeout = 30 * time.Second
)

var (
	ErrMissingAccessToken   = errors.New("MERCADOPAGO_ACCESS_TOKEN environment variable is required")
	ErrMissingWebhookSecret = errors.New("MERCADOPAGO_WEBHOOK_SECRET environment variable is required")
)

// Config is built once at startup and passed by reference; nothing mutates it
// afterwards.
type Config struct {
	App         AppConfig
	Log         LogConfig
	MercadoPago MercadoPagoConfig
	DynamoDB    DynamoDBConfig
	Kafka       KafkaConfig
}

type AppConfig struct {
	ServiceName string
	Port        string
}

type LogConfig struct {
	Level string
}

type MercadoPagoConfig struct {
	AccessToken     string
	WebhookSecret   string
	BaseURL         string
	HTTPTimeout     time.Duration
	MaxAttempts     int
	RetryBackoff    time.Duration
	NotificationURL string
	BackURLs        BackURLsConfig
	SubscriptionURL string
}

type BackURLsConfig struct {
	Success string
	Failure string
	Pending string
}

type DynamoDBConfig struct {
	Region             string
	Endpoint           string
	AccessKeyID        string
	SecretAccessKey    string
	PaymentsTable      string
	SubscriptionsTable string
}

type KafkaConfig struct {
	Brokers       []string
	SnapshotTopic string
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	webhookSecret := strings.TrimSpace(os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"))
	if webhookSecret == "" {
		return nil, ErrMissingWebhookSecret
	}

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "billing-gateway"),
			Port:        getEnv("HTTP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     accessToken,
			WebhookSecret:   webhookSecret,
			BaseURL:         strings.TrimRight(getEnv("MERCADOPAGO_BASE_URL", DefaultMercadoPagoBaseURL), "/"),
			HTTPTimeout:     MercadoPagoHTTPTimeout,
			MaxAttempts:     getIntEnv("MERCADOPAGO_MAX_ATTEMPTS", 3),
			RetryBackoff:    getMillisEnv("MERCADOPAGO_RETRY_BACKOFF_MS", 200*time.Millisecond),
			NotificationURL: getEnv("MERCADOPAGO_NOTIFICATION_URL", ""),
			BackURLs: BackURLsConfig{
				Success: getEnv("MERCADOPAGO_BACK_URL_SUCCESS", "https://localhost/payments/success"),
				Failure: getEnv("MERCADOPAGO_BACK_URL_FAILURE", "https://localhost/payments/failure"),
				Pending: getEnv("MERCADOPAGO_BACK_URL_PENDING", "https://localhost/payments/pending"),
			},
			SubscriptionURL: getEnv("MERCADOPAGO_SUBSCRIPTION_BACK_URL", "https://localhost/subscriptions"),
		},
		DynamoDB: DynamoDBConfig{
			Region:             getEnv("AWS_REGION", "us-east-1"),
			Endpoint:           getEnv("DYNAMODB_ENDPOINT", ""),
			AccessKeyID:        getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:    getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			PaymentsTable:      getEnv("PAYMENTS_TABLE", "payments"),
			SubscriptionsTable: getEnv("SUBSCRIPTIONS_TABLE", "subscriptions"),
		},
		Kafka: KafkaConfig{
			Brokers:       getListEnv("KAFKA_BROKERS"),
			SnapshotTopic: getEnv("KAFKA_SNAPSHOT_TOPIC", "billing.snapshots"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getMillisEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}

func getListEnv(key string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
