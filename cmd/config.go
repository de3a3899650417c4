package cmd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fzft/go-library-containers/commands"
	"github.com/fzft/go-library-containers/log"
)

type CliConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

// Config is the console configuration file.
type Config struct {
	Log        log.Config     `toml:"log"`
	Containers commands.Sizes `toml:"containers"`
	Cli        CliConfig      `toml:"cli"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:        log.DefaultConfig(),
		Containers: commands.DefaultSizes(),
		Cli: CliConfig{
			Prompt:      "ds> ",
			HistoryFile: ".ds_history",
		},
	}
}

// LoadConfig reads the TOML file at path over the defaults. An empty path
// returns the defaults. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
