package cmd

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is the shared connection/signing configuration every demo
// subcommand reads, loaded the way the teacher loads its relay configs:
// viper against a caller-supplied file, decoded with mapstructure.
type Config struct {
	Endpoint  string `mapstructure:"endpoint"`
	Seed      string `mapstructure:"seed"`
	Scheme    string `mapstructure:"scheme"`
	Ss58Prefix uint16 `mapstructure:"ss58-prefix"`
}

func loadConfig(path string) (Config, error) {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("cmd: read config %s: %w", path, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg, viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc())); err != nil {
		return Config{}, fmt.Errorf("cmd: decode config: %w", err)
	}
	return cfg, nil
}
