package config

import "time"

type SecurityConfig interface {
	GetMaxSessionAge() time.Duration
	GetSessionSweepInterval() time.Duration
	GetWebhookTimeout() time.Duration
	GetMaxBodyBytes() int64
}

type Security struct{}

var _ SecurityConfig = Security{}

func (Security) GetMaxSessionAge() time.Duration {
	return 6 * time.Hour
}

func (Security) GetSessionSweepInterval() time.Duration {
	return 15 * time.Minute
}

func (Security) GetWebhookTimeout() time.Duration {
	return 10 * time.Second
}

func (Security) GetMaxBodyBytes() int64 {
	return 1 << 20 // 1 MiB
}
