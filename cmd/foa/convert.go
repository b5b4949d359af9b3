package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func convertRun(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		nodes, err := readNodes(cfg.MainConfig, arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		if err := writeNodes(cfg.MainConfig, cc.Out, nodes); err != nil {
			return fmt.Errorf("error writing %s: %w", arg, err)
		}
	}
	return nil
}
