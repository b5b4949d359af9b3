package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, arg := range args {
		if _, err := readNodes(cfg.MainConfig, arg); err != nil {
			bad++
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", arg)
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
