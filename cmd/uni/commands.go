package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "uni").
		WithSynopsis("uni [opts] [files]").
		WithDescription("uni concatenates files to stdout, repairing broken text encodings on the way.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return uniMain(cfg, cc, args)
		}).
		WithSubs(EnvCommand(cfg))
}

func EnvCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EnvConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Env, "env").
		WithAliases("e").
		WithSynopsis("env").
		WithDescription("show the resolved encoding environment").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return env(cfg, cc, args)
		})
}
