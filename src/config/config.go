package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	Auth            AuthConfig           `mapstructure:"auth"`
}

type ServiceConfig struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"logLevel"`
}

type DatabasesConfig struct {
	SQL SQLConfig `mapstructure:"sql"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type ExternalClientConfig struct {
	Quotes QuotesConfig `mapstructure:"quotes"`
}

type QuotesConfig struct {
	BaseURL        string `mapstructure:"baseUrl"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
	// APIKey is never read from the yaml file, only from the environment.
	APIKey string `mapstructure:"-"`
}

type AuthConfig struct {
	SessionTTLMinutes int `mapstructure:"sessionTTLMinutes"`
	// SessionSecret signs session tokens, environment only.
	SessionSecret string `mapstructure:"-"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	cfg.ExternalClients.Quotes.APIKey = os.Getenv("QUOTE_API_KEY")
	if cfg.ExternalClients.Quotes.APIKey == "" {
		return nil, errors.New("QUOTE_API_KEY not set")
	}
	cfg.Auth.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.Auth.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET not set")
	}
	return &cfg, nil
}
