package main

import "github.com/able-lang/clox-go/pkg/config"

func loadConfig(forceTrace bool) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if forceTrace {
		cfg.Trace = true
	}
	return cfg, nil
}
