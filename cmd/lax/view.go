package main

import (
	"fmt"

	"github.com/laxjson/lax/debug"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		v, err := readDoc(arg)
		if err != nil {
			return err
		}
		if debug.View() {
			debug.Logf("parsed %s:\n%s\n", arg, v)
		}
		if err := cfg.write(cc.Out, v); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
