package config

import (
	"fmt"
	"time"
)

type DatabaseConfig struct {
	Host            string
	Port            int
	Database        string
	Username        string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Host:            getEnv("POSTGRES_HOST", "localhost"),
		Port:            getEnvAsInt("POSTGRES_PORT", 5432),
		Database:        getEnv("POSTGRES_DB", "sitzy"),
		Username:        getEnv("POSTGRES_USER", "sitzy"),
		Password:        getEnv("POSTGRES_PASSWORD", ""),
		SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
		MaxOpenConns:    getEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvAsDuration("POSTGRES_CONN_MAX_LIFETIME", time.Hour),
		ConnectTimeout:  getEnvAsDuration("POSTGRES_CONNECT_TIMEOUT", 10*time.Second),
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}
