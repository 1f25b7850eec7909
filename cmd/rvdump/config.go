package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// config is the optional on-disk default set, loaded from .rvdump.toml
// in the current directory when present. Command-line flags always
// override whatever the file sets.
type config struct {
	XLEN  string `toml:"xlen"`
	Color bool   `toml:"color"`
	Strict struct {
		Extensions []string `toml:"extensions"`
	} `toml:"strict"`
}

func defaultConfig() config {
	return config{XLEN: "rv64", Color: true}
}

// loadConfig reads .rvdump.toml if it exists, leaving defaultConfig's
// values in place for anything the file doesn't set. A missing file is
// not an error; a malformed one is.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
