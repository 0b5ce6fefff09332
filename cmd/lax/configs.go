package main

import (
	"io"
	"os"

	"github.com/laxjson/lax/encode"
	"github.com/laxjson/lax/ir"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=c aliases=compact desc='compact output, no whitespace'"`
	Indent  int  `cli:"name=indent desc='spaces per indent level'"`

	J bool `cli:"name=j aliases=json desc='output json (default)'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if !cfg.Compact {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	// -color was not given: auto-detect on terminals
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
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// write renders one result document to w in the selected output form.
func (cfg *MainConfig) write(w io.Writer, v *ir.Value) error {
	if cfg.Y {
		d, err := yaml.Marshal(v.ToInterface())
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='apply the patch as a merge patch'"`

	Patch *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}
