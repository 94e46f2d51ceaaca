package config

import (
	"os"
	"sync"
	"time"
)

// ClientConfig configures the applicant CLI's connection to the API.
type ClientConfig struct {
	BaseURL string
	Token   string
	UserID  string
	Role    string
	Timeout time.Duration
}

var (
	clientConfig *ClientConfig
	clientOnce   sync.Once
)

func LoadClientConfig() *ClientConfig {
	clientOnce.Do(func() {
		timeout, err := time.ParseDuration(os.Getenv("API_TIMEOUT"))
		if err != nil || timeout <= 0 {
			timeout = 15 * time.Second
		}
		clientConfig = &ClientConfig{
			BaseURL: getenv("API_BASE_URL", "http://localhost:5000"),
			Token:   os.Getenv("API_TOKEN"),
			UserID:  os.Getenv("API_USER_ID"),
			Role:    getenv("API_ROLE", "jobseeker"),
			Timeout: timeout,
		}
	})
	return clientConfig
}
