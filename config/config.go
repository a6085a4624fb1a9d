package config

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LoadConfig reads .env (when present) and the process environment.
// DATABASE_URL takes precedence over the discrete DB_* settings.
func LoadConfig() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		logrus.WithError(err).Warn(".env not found, relying on environment variables")
	}
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "tayyab")
	viper.SetDefault("DB_NAME", "billu")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	// Hosted platforms usually hand out PORT and DATABASE_URL.
	_ = viper.BindEnv("SERVER_PORT", "PORT")
	_ = viper.BindEnv("DATABASE_URL")

	origins := strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			URL:      viper.GetString("DATABASE_URL"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		CORS: CORSConfig{AllowedOrigins: origins},
	}
}
