package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/foa-format/go-foa/compress"
	"github.com/signadot/foa-format/go-foa/convert"
	"github.com/signadot/foa-format/go-foa/format"
	"github.com/signadot/foa-format/go-foa/ir"
	"github.com/signadot/foa-format/go-foa/stream"
)

// openInput opens arg for reading, decompressing by file suffix. "-" is
// stdin.
func openInput(arg string) (io.ReadCloser, error) {
	if arg == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	r, err := compress.ForPath(arg).NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return readCloser{r, f}, nil
}

type readCloser struct {
	io.ReadCloser
	f *os.File
}

func (rc readCloser) Close() error {
	if err := rc.ReadCloser.Close(); err != nil {
		rc.f.Close()
		return err
	}
	return rc.f.Close()
}

func readNodes(cfg *MainConfig, arg string) ([]*ir.Node, error) {
	in, err := openInput(arg)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	switch cfg.inFormat() {
	case format.JSONFormat:
		return convert.FromJSON(in)
	case format.YAMLFormat:
		return convert.FromYAML(in)
	}
	return ir.ReadAll(in, cfg.streamOpts()...)
}

func writeNodes(cfg *MainConfig, w io.Writer, nodes []*ir.Node) error {
	switch cfg.outFormat() {
	case format.JSONFormat:
		return convert.ToJSON(w, nodes)
	case format.YAMLFormat:
		return convert.ToYAML(w, nodes)
	}
	return ir.Write(stream.NewEncoder(w, cfg.streamOpts()...), nodes...)
}
