package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// benchConfig mirrors the TOML scenario file accepted by --config. Flags
// given on the command line override the file.
type benchConfig struct {
	Count     int      `toml:"count"`
	Seed      int64    `toml:"seed"`
	Widths    []int    `toml:"widths"`
	Mode      string   `toml:"mode"`
	Modes     []string `toml:"modes"`
	HugePages bool     `toml:"huge_pages"`
	Rounds    int      `toml:"rounds"`
}

func loadConfig(path string) (*benchConfig, error) {
	var cfg benchConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %s", path, undec[0])
	}
	return &cfg, nil
}
