package config

import "time"

const defaultCurrency = "USD"

type AppConfig struct {
	CurrencyName          string `yaml:"currency" env:"APP_CURRENCY, overwrite"`
	MessageTimeoutSeconds int64  `yaml:"message-timeout-seconds" env:"APP_MESSAGE_TIMEOUT_SECONDS, overwrite"`
}

func (s *AppConfig) Currency() string {
	return s.CurrencyName
}

// MessageTimeout is zero when incoming messages are handled without a deadline.
func (s *AppConfig) MessageTimeout() time.Duration {
	return time.Duration(s.MessageTimeoutSeconds) * time.Second
}
