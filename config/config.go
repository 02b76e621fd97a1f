package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	MongoURI      string `mapstructure:"mongo_uri"`
	DBName        string `mapstructure:"dbname"`
	TgAPIToken    string `mapstructure:"tg_api_token"`
	BaseURL       string `mapstructure:"base_url"`
	Listen        string `mapstructure:"listen"`
	NotifyDelayMs int    `mapstructure:"notify_delay_ms"`
	MorningCron   string `mapstructure:"morning_cron"`
	EveningCron   string `mapstructure:"evening_cron"`
}

func InitConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("base_url", "https://competitions.russiabasket.ru")
	viper.SetDefault("listen", ":8080")
	viper.SetDefault("notify_delay_ms", 100)
	viper.SetDefault("morning_cron", "0 9 * * *")
	viper.SetDefault("evening_cron", "0 21 * * *")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("Error: config file is not found: %w", err)
		}
		return nil, fmt.Errorf("Error: init config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("Error: unable to decode into struct: %w", err)
	}
	return &cfg, nil
}

// NotifyDelay — минимальная пауза между отправками при рассылке.
func (c *Config) NotifyDelay() time.Duration {
	return time.Duration(c.NotifyDelayMs) * time.Millisecond
}
