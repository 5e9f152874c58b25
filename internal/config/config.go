package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env               string        `mapstructure:"ENV"`
	Port              string        `mapstructure:"PORT"`
	AdminKey          string        `mapstructure:"ADMIN_KEY"`
	CORSAllowed       string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	KnowledgeBaseFile string        `mapstructure:"KNOWLEDGE_BASE_FILE"`
	ReplyDelay        time.Duration `mapstructure:"GENIE_REPLY_DELAY"`
	SessionIdleTTL    time.Duration `mapstructure:"SESSION_IDLE_TTL"`
	SessionSweepEvery time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL"`
	SessionMax        int           `mapstructure:"SESSION_MAX"`
}

func Load() (Config, error) {
	return LoadFrom(".env")
}

func LoadFrom(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("ADMIN_KEY", "")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("KNOWLEDGE_BASE_FILE", "")
	v.SetDefault("GENIE_REPLY_DELAY", "500ms")
	v.SetDefault("SESSION_IDLE_TTL", "30m")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "1m")
	v.SetDefault("SESSION_MAX", 1000)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
