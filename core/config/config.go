package config

import (
	"errors"
	"strings"
	"sync"

	"smart-scheduler/core/constants"
	"smart-scheduler/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
}

type SchedulerConfig struct {
	BusinessHoursStart     int    `mapstructure:"business_hours_start"`
	BusinessHoursEnd       int    `mapstructure:"business_hours_end"`
	SlotIntervalMinutes    int    `mapstructure:"slot_interval_minutes"`
	DefaultDurationMinutes int    `mapstructure:"default_duration_minutes"`
	DefaultCountry         string `mapstructure:"default_country"`
	SeedDefaultRules       bool   `mapstructure:"seed_default_rules"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

var (
	mu       sync.RWMutex
	instance *Config
)

// Load reads .env, config.yaml and SCHEDULER_* environment overrides, then
// stores the result as the process-wide config instance.
func Load() (*Config, error) {
	// .env is optional; environment wins over file values either way.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("SCHEDULER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", constants.DefaultServerHost)
	v.SetDefault("server.port", constants.DefaultServerPort)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("scheduler.business_hours_start", constants.BusinessHoursStart)
	v.SetDefault("scheduler.business_hours_end", constants.BusinessHoursEnd)
	v.SetDefault("scheduler.slot_interval_minutes", constants.DefaultSlotIntervalMinutes)
	v.SetDefault("scheduler.default_duration_minutes", constants.DefaultSlotDurationMinutes)
	v.SetDefault("scheduler.default_country", constants.DefaultCountry)
	v.SetDefault("scheduler.seed_default_rules", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		logger.Warn("Config:Load:NoConfigFile", "error", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

// Get returns the loaded config, loading it on first use.
func Get() *Config {
	mu.RLock()
	cfg := instance
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	loaded, err := Load()
	if err != nil {
		logger.Error("Config:Get:LoadFailed", "error", err)
		return &Config{}
	}
	return loaded
}

// GetSafe returns the loaded config without triggering a load.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}
