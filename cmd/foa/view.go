package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/foa-format/go-foa/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	encOpts := append(cfg.encOpts(cc.Out), encode.WithIndent(cfg.Indent))
	for _, arg := range args {
		nodes, err := readNodes(cfg.MainConfig, arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		if err := encode.Encode(cc.Out, nodes, encOpts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
