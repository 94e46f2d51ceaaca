package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBConfigDSN(t *testing.T) {
	c := &DBConfig{Host: "db", Port: "5433", User: "app", Password: "secret", Name: "skillsyncer", SSLMode: "disable", TimeZone: "UTC"}
	assert.Equal(t, "host=db user=app password=secret dbname=skillsyncer port=5433 sslmode=disable TimeZone=UTC", c.DSN())
}

func TestIntEnv(t *testing.T) {
	t.Setenv("POOL_SIZE", "25")
	assert.Equal(t, 25, intEnv("POOL_SIZE", 10))

	t.Setenv("POOL_SIZE", "zero")
	assert.Equal(t, 10, intEnv("POOL_SIZE", 10))

	t.Setenv("POOL_SIZE", "-3")
	assert.Equal(t, 10, intEnv("POOL_SIZE", 10))
}
