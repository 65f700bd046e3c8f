package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "RRSIM"

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum string
}

// Load reads config.yaml from path, or from the working directory when path
// is empty. A missing file in the working directory is not an error; an
// explicit path must exist. RRSIM_* environment variables override both.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", "median")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log_level"),
		RoundRobinTimeQuantum: v.GetString("scheduler.round_robin.time_quantum"),
	}
	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("read config: invalid port %d", config.Port)
	}
	return config, nil
}
