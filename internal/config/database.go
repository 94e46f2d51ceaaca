package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

// LoadDBConfig reads the postgres settings. Pool sizes default to a small
// development pool unless APP_ENV is production.
func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		openConns, idleConns, lifetime := 10, 5, 30*time.Minute
		if LoadAppConfig().IsProduction() {
			openConns, idleConns, lifetime = 200, 20, time.Hour
		}
		dbConfig = &DBConfig{
			Host:            getenv("DB_HOST", "localhost"),
			Port:            getenv("DB_PORT", "5432"),
			User:            os.Getenv("DB_USER"),
			Password:        os.Getenv("DB_PASSWORD"),
			Name:            getenv("DB_NAME", "skillsyncer"),
			SSLMode:         getenv("DB_SSLMODE", "disable"),
			TimeZone:        getenv("DB_TIMEZONE", "Asia/Kolkata"),
			MaxOpenConns:    intEnv("DB_MAX_OPEN_CONNS", openConns),
			MaxIdleConns:    intEnv("DB_MAX_IDLE_CONNS", idleConns),
			ConnMaxLifetime: lifetime,
		}
	})
	return dbConfig
}

// DSN is the libpq keyword/value connection string for the postgres driver.
func (c *DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.TimeZone)
}

func intEnv(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
