package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/laxjson/lax/debug"
	"github.com/laxjson/lax/encode"
	"github.com/laxjson/lax/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := readDoc(args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	at, err := canonical(a, cfg.Indent)
	if err != nil {
		return err
	}
	bt, err := canonical(b, cfg.Indent)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(at, bt, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if debug.Diff() {
		debug.Logf("%d diff spans between %s and %s\n", len(diffs), args[0], args[1])
	}
	if useColor(cfg.MainConfig, cc) {
		_, err = cc.Out.Write([]byte(dmp.DiffPrettyText(diffs)))
		return err
	}
	patches := dmp.PatchMake(at, diffs)
	_, err = cc.Out.Write([]byte(dmp.PatchToText(patches)))
	return err
}

// canonical renders v as indented strict JSON so diffs line up
// structurally.
func canonical(v *ir.Value, indent int) (string, error) {
	if indent == 0 {
		indent = 2
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, encode.Indent(indent)); err != nil {
		return "", err
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

func useColor(cfg *MainConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
