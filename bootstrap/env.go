package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// 相关媒体计算方式，与 usecase_media 中的常量一致
const (
	rankingModeStream   = "stream"
	rankingModePipeline = "pipeline"
	maxRelatedLimit     = 12
)

type Env struct {
	AppEnv              string  `mapstructure:"APP_ENV"`
	ServerAddress       string  `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout      int     `mapstructure:"CONTEXT_TIMEOUT"`
	DBHost              string  `mapstructure:"DB_HOST"`
	DBPort              string  `mapstructure:"DB_PORT"`
	DBUser              string  `mapstructure:"DB_USER"`
	DBPass              string  `mapstructure:"DB_PASS"`
	DBName              string  `mapstructure:"DB_NAME"`
	AccessTokenSecret   string  `mapstructure:"ACCESS_TOKEN_SECRET"`
	RelatedRankingMode  string  `mapstructure:"RELATED_RANKING_MODE"`
	RelatedLimit        int     `mapstructure:"RELATED_LIMIT"`
	LogLevel            string  `mapstructure:"LOG_LEVEL"`
	LogFormat           string  `mapstructure:"LOG_FORMAT"`
	RateLimitRPS        float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst      int     `mapstructure:"RATE_LIMIT_BURST"`
	MediaHostEndpoint   string  `mapstructure:"MEDIA_HOST_ENDPOINT"`
	MediaHostPrivateKey string  `mapstructure:"MEDIA_HOST_PRIVATE_KEY"`
}

var defaults = map[string]interface{}{
	"APP_ENV":                "development",
	"SERVER_ADDRESS":         ":8080",
	"CONTEXT_TIMEOUT":        2,
	"DB_HOST":                "localhost",
	"DB_PORT":                "27017",
	"DB_USER":                "",
	"DB_PASS":                "",
	"DB_NAME":                "pinora",
	"ACCESS_TOKEN_SECRET":    "",
	"RELATED_RANKING_MODE":   rankingModeStream,
	"RELATED_LIMIT":          maxRelatedLimit,
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "json",
	"RATE_LIMIT_RPS":         20,
	"RATE_LIMIT_BURST":       40,
	"MEDIA_HOST_ENDPOINT":    "https://api.imagekit.io/v1",
	"MEDIA_HOST_PRIVATE_KEY": "",
}

// NewEnv 读取 .env（可选）与环境变量，环境变量优先
func NewEnv() (*Env, error) {
	return loadEnv(".env")
}

func loadEnv(configFile string) (*Env, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			v.SetConfigFile(configFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read %s: %w", configFile, err)
			}
		}
	}

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("environment can't be loaded: %w", err)
	}

	if err := env.validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

func (e *Env) validate() error {
	var errs []error

	e.RelatedRankingMode = strings.ToLower(strings.TrimSpace(e.RelatedRankingMode))
	if e.RelatedRankingMode != rankingModeStream && e.RelatedRankingMode != rankingModePipeline {
		errs = append(errs, fmt.Errorf("RELATED_RANKING_MODE must be %q or %q, got %q",
			rankingModeStream, rankingModePipeline, e.RelatedRankingMode))
	}
	if e.ContextTimeout <= 0 {
		errs = append(errs, fmt.Errorf("CONTEXT_TIMEOUT must be positive, got %d", e.ContextTimeout))
	}
	if e.RelatedLimit <= 0 || e.RelatedLimit > maxRelatedLimit {
		errs = append(errs, fmt.Errorf("RELATED_LIMIT must be between 1 and %d, got %d", maxRelatedLimit, e.RelatedLimit))
	}
	if e.RateLimitRPS <= 0 || e.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}
	if e.AppEnv == "production" && e.AccessTokenSecret == "" {
		errs = append(errs, errors.New("ACCESS_TOKEN_SECRET is required in production"))
	}

	return errors.Join(errs...)
}

func (e *Env) IsDevelopment() bool {
	return e.AppEnv == "development"
}
