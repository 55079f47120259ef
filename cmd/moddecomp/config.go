// SPDX-License-Identifier: MIT
// Package: moddecomp/cmd/moddecomp
//
// config.go — optional TOML run configuration.

package main

import (
	"github.com/BurntSushi/toml"
)

// runConfig holds the handful of knobs the CLI exposes beyond its flags.
// Zero value is a valid, fully-defaulted configuration.
type runConfig struct {
	// DenseMaxN overrides graph.DefaultDenseMaxN, the n threshold below
	// which BackingAuto picks a dense bitset adjacency representation.
	DenseMaxN int `toml:"dense_max_n"`
}

func defaultRunConfig() runConfig {
	return runConfig{DenseMaxN: 0} // 0 means "use the graph package's own default"
}

// loadRunConfig reads and parses a TOML file at path. A missing --config
// flag (empty path) is handled by the caller; this only ever decodes a file
// the caller has already decided exists.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return runConfig{}, errorf("loadRunConfig", ErrBadConfig, "%v", err)
	}
	return cfg, nil
}
