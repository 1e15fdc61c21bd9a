package config

type TelegramConfig struct {
	ApiToken string `yaml:"token" env:"TELEGRAM_TOKEN, overwrite"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}
