package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/foa-format/go-foa/stream"
)

func entities(cfg *EntitiesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Entities.Parse(cc, args)
	if err != nil {
		cfg.Entities.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := dumpEntities(cfg, cc, arg); err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
	}
	return nil
}

func dumpEntities(cfg *EntitiesConfig, cc *cli.Context, arg string) error {
	in, err := openInput(arg)
	if err != nil {
		return err
	}
	defer in.Close()
	dec, err := stream.NewDecoder(in, cfg.streamOpts()...)
	if err != nil {
		return err
	}
	for {
		ent, err := dec.NextEntity()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cc.Out, "%d\t%s\n", ent.Line, ent.Info()); err != nil {
			return err
		}
	}
}
