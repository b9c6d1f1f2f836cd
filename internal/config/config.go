package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Database DatabaseConfig `mapstructure:"database"`
	Timezone string         `mapstructure:"timezone"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"` // "sqlite" or "postgres"
	Path     string `mapstructure:"path"`   // sqlite only
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// Load reads the yaml config at path. The file is optional; every key can
// come from the environment instead (TELEGRAM_TOKEN, DATABASE_URL,
// BOT_TIMEZONE). The Telegram token may also be mounted as a Docker
// secret at /run/secrets/telegram_bot_token.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("timezone", "Asia/Yekaterinburg")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "deadlines.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.sslmode", "disable")

	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if dbURL := v.GetString("DATABASE_URL"); dbURL != "" {
		db, err := parseDatabaseURL(dbURL)
		if err != nil {
			return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		cfg.Database = db
	}
	if token := v.GetString("TELEGRAM_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
	if tz := v.GetString("BOT_TIMEZONE"); tz != "" {
		cfg.Timezone = tz
	}

	if cfg.Telegram.Token == "" {
		cfg.Telegram.Token = tokenFromSecret()
	}
	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("telegram token is not set")
	}
	return &cfg, nil
}

func tokenFromSecret() string {
	data, err := os.ReadFile("/run/secrets/telegram_bot_token")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func parseDatabaseURL(dbURL string) (DatabaseConfig, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return DatabaseConfig{}, err
	}

	password, _ := u.User.Password()
	port := 5432
	if u.Port() != "" {
		fmt.Sscanf(u.Port(), "%d", &port)
	}

	return DatabaseConfig{
		Driver:   "postgres",
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Password: password,
		DBName:   strings.TrimPrefix(u.Path, "/"),
		SSLMode:  "disable",
	}, nil
}
