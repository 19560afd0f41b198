package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	StorageDynamo = "dynamo"
	StorageMemory = "memory"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Storage struct {
		Backend   string `mapstructure:"backend"`
		AWSRegion string `mapstructure:"aws_region"`
	} `mapstructure:"storage"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	CORS struct {
		Origins []string `mapstructure:"origins"`
	} `mapstructure:"cors"`
}

// Load reads configuration from the environment with sensible defaults.
// An optional config.yaml in the working directory is merged in first.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("storage.backend", StorageDynamo)
	v.SetDefault("storage.aws_region", "ap-south-1")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cors.origins", []string{"*"})

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
