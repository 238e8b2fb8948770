package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type OrderConfig struct {
	Env            string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer     `yaml:"http_server"`
	OrderDB        `yaml:"order_db"`
	Redis          `yaml:"redis"`
	KafkaService   `yaml:"kafka-service"`
	AdminWebhook   Webhook `yaml:"admin-webhook"`
	DriverWebhook  Webhook `yaml:"driver-webhook"`
	PaymentGateway `yaml:"payment-gateway"`
	Auth           `yaml:"auth"`
	Workers        `yaml:"workers"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type OrderDB struct {
	Dsn           string `yaml:"dsn" env:"ORDER_DB_DSN"`
	MigrationPath string `yaml:"migration_path" env-default:"migrations"`
}

type Redis struct {
	Addr     string `yaml:"addr" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"order-events"`
}

// Webhook describes one outbound peer (admin dashboard or driver app) plus the
// shared secret expected on inbound calls from the driver side.
type Webhook struct {
	BaseURL string        `yaml:"base_url"`
	Secret  string        `yaml:"secret" env:"WEBHOOK_SECRET"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
}

type PaymentGateway struct {
	BaseURL   string        `yaml:"base_url"`
	KeyID     string        `yaml:"key_id" env:"GATEWAY_KEY_ID"`
	KeySecret string        `yaml:"key_secret" env:"GATEWAY_KEY_SECRET"`
	Currency  string        `yaml:"currency" env-default:"INR"`
	Timeout   time.Duration `yaml:"timeout" env-default:"5s"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
}

type Workers struct {
	// DemoPaymentDelay is the simulated settlement delay of non-gateway demo
	// payment methods.
	DemoPaymentDelay time.Duration `yaml:"demo_payment_delay" env-default:"5s"`
	StalePendingAge  time.Duration `yaml:"stale_pending_age" env-default:"24h"`
	StaleSweepEvery  time.Duration `yaml:"stale_sweep_every" env-default:"5m"`
}

func MustLoad() *OrderConfig {
	configPath := os.Getenv("ORDER_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("ORDER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg OrderConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
