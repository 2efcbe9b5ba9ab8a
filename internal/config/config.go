package config

import (
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Shopify     ShopifyConfig
	Webhook     WebhookConfig
	Mysql       MysqlConfig
	TelegramBot TelegramBotConfig
	LogLevel    string
}

type ServerConfig struct {
	Port string
}

type ShopifyConfig struct {
	ShopDomain string
	Token      string
	APIVer     string
	Timeout    time.Duration
	// LocationID overrides inventory-location discovery when set.
	LocationID string
}

type WebhookConfig struct {
	Secret string
}

type MysqlConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
}

// Enabled reports whether the optional sync journal should be wired.
func (c MysqlConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Database != ""
}

type TelegramBotConfig struct {
	ChatId string
	Token  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	shop, err := requiredString("SHOPIFY_SHOP")
	if err != nil {
		return nil, err
	}
	token, err := requiredString("SHOPIFY_API_TOKEN")
	if err != nil {
		return nil, err
	}
	secret, err := requiredString("WEBHOOK_SECRET")
	if err != nil {
		return nil, err
	}
	timeout, err := durationWithDefault("SHOPIFY_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	mysqlPort, err := intWithDefault("MYSQL_PORT", 3306)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Port: stringWithDefault("PORT", "10000"),
		},
		Shopify: ShopifyConfig{
			ShopDomain: shop,
			Token:      token,
			APIVer:     stringWithDefault("SHOPIFY_API_VERSION", "2024-07"),
			Timeout:    timeout,
			LocationID: stringWithDefault("SHOPIFY_LOCATION_ID", ""),
		},
		Webhook: WebhookConfig{
			Secret: secret,
		},
		Mysql: MysqlConfig{
			Host:     stringWithDefault("MYSQL_HOST", ""),
			Port:     mysqlPort,
			Username: stringWithDefault("MYSQL_USER", ""),
			Password: stringWithDefault("MYSQL_PASSWORD", ""),
			Database: stringWithDefault("MYSQL_DATABASE", ""),
		},
		TelegramBot: TelegramBotConfig{
			ChatId: stringWithDefault("TELEGRAM_CHAT_ID", ""),
			Token:  stringWithDefault("TELEGRAM_BOT_TOKEN", ""),
		},
		LogLevel: stringWithDefault("LOG_LEVEL", "info"),
	}, nil
}
