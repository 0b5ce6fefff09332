package main

import (
	"fmt"

	"github.com/laxjson/lax/debug"
	"github.com/laxjson/lax/ir"

	"github.com/scott-cotton/cli"

	"github.com/expr-lang/expr"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression argument", cli.ErrUsage)
	}
	prog, err := expr.Compile(args[0], expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("%w: bad expression %q: %v", cli.ErrUsage, args[0], err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, arg := range files {
		v, err := readDoc(arg)
		if err != nil {
			return err
		}
		x := v.ToInterface()
		env := map[string]any{"doc": x}
		// top-level object keys are addressable directly
		if m, ok := x.(map[string]any); ok {
			for k, val := range m {
				if k == "doc" {
					continue
				}
				env[k] = val
			}
		}
		out, err := expr.Run(prog, env)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", arg, err)
		}
		if debug.Filter() {
			debug.Logf("filter %q on %s -> %v\n", args[0], arg, out)
		}
		if err := cfg.write(cc.Out, ir.Wrap(out)); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
