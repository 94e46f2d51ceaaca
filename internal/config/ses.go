package config

import (
	"os"
	"sync"
)

type SESConfig struct {
	Region      string
	FromAddress string
}

var (
	sesConfig *SESConfig
	sesOnce   sync.Once
)

func LoadSESConfig() *SESConfig {
	sesOnce.Do(func() {
		sesConfig = &SESConfig{
			Region:      getenv("AWS_REGION", "ap-south-1"),
			FromAddress: os.Getenv("SES_FROM_ADDRESS"),
		}
	})
	return sesConfig
}

// Enabled reports whether notification emails should go through SES.
func (c *SESConfig) Enabled() bool { return c.FromAddress != "" }
