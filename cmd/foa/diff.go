package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/foa-format/go-foa/encode"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := renderArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := renderArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	ca, cb, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(ca, cb, false), lines)
	changed := writeDiffs(cfg, cc, diffs)
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func renderArg(cfg *MainConfig, arg string) (string, error) {
	nodes, err := readNodes(cfg, arg)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", arg, err)
	}
	return encode.MustString(nodes, encode.WithEscaping(!cfg.Raw)), nil
}

func writeDiffs(cfg *DiffConfig, cc *cli.Context, diffs []diffpatch.Diff) bool {
	del := fmt.Sprintf
	ins := fmt.Sprintf
	if cfg.Color {
		del = color.New(color.FgRed).Sprintf
		ins = color.New(color.FgGreen).Sprintf
	}
	changed := false
	for _, d := range diffs {
		var mark string
		sprintf := fmt.Sprintf
		switch d.Type {
		case diffpatch.DiffDelete:
			mark, sprintf = "-", del
			changed = true
		case diffpatch.DiffInsert:
			mark, sprintf = "+", ins
			changed = true
		case diffpatch.DiffEqual:
			mark = " "
		}
		for _, line := range splitDiffLines(d.Text) {
			fmt.Fprint(cc.Out, sprintf("%s%s\n", mark, line))
		}
	}
	return changed
}

func splitDiffLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
