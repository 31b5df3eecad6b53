package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/unio-sh/unio/charenc"
)

type MainConfig struct {
	Binary bool   `cli:"name=b desc='raw binary passthrough'"`
	From   string `cli:"name=from desc='encoding of the input'"`
	Errors string `cli:"name=errors desc='codec error policy: strict, replace'"`

	Main *cli.Command
}

func (cfg *MainConfig) errorMode() (charenc.ErrorMode, error) {
	if cfg.Errors == "" {
		return charenc.ModeUnset, nil
	}
	m, err := charenc.ParseErrorMode(cfg.Errors)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return m, nil
}

type EnvConfig struct {
	*MainConfig

	Color bool `cli:"name=color desc='force colored output'"`

	Env *cli.Command
}
