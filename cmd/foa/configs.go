package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/foa-format/go-foa/encode"
	"github.com/signadot/foa-format/go-foa/format"
	"github.com/signadot/foa-format/go-foa/scan"
	"github.com/signadot/foa-format/go-foa/stream"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Raw   bool `cli:"name=raw desc='disable percent escaping on i/o'"`

	Init int `cli:"name=init desc='initial scan buffer size'"`
	Step int `cli:"name=step desc='scan buffer growth step'"`
	Max  int `cli:"name=max desc='scan buffer size limit (0 unlimited)'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) policy() scan.Policy {
	p := scan.DefaultPolicy
	if cfg.Init > 0 {
		p.Initial = cfg.Init
	}
	if cfg.Step > 0 {
		p.Step = cfg.Step
	}
	if cfg.Max > 0 {
		p.Max = cfg.Max
	}
	return p
}

func (cfg *MainConfig) streamOpts() []stream.Option {
	return []stream.Option{
		stream.WithPolicy(cfg.policy()),
		stream.WithEscaping(!cfg.Raw),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.WithEscaping(!cfg.Raw),
	}
	if cfg.Color {
		return append(res, encode.WithColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		return append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.FOAFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.FOAFormat
}

type ViewConfig struct {
	*MainConfig

	Indent int `cli:"name=indent desc='indent width'"`
	View   *cli.Command
}

type EntitiesConfig struct {
	*MainConfig

	Entities *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress per-file output'"`
	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
