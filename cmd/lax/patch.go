package main

import (
	"fmt"

	"github.com/laxjson/lax/debug"
	"github.com/laxjson/lax/ir"
	"github.com/laxjson/lax/parse"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch document argument", cli.ErrUsage)
	}
	pv, err := readDoc(args[0])
	if err != nil {
		return err
	}
	pd, err := pv.MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding patch: %w", err)
	}
	targets := args[1:]
	if len(targets) == 0 {
		targets = []string{"-"}
	}
	for _, arg := range targets {
		tv, err := readDoc(arg)
		if err != nil {
			return err
		}
		td, err := tv.MarshalJSON()
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		out, err := applyPatch(cfg, pv, pd, td)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if debug.Patch() {
			debug.Logf("patched %s:\n%s\n", arg, string(out))
		}
		res, err := parse.Parse(out)
		if err != nil {
			return fmt.Errorf("error decoding patch result: %w", err)
		}
		if err := cfg.write(cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

// applyPatch treats an array patch document as an RFC 6902 patch and
// anything else, or -m, as an RFC 7386 merge patch.
func applyPatch(cfg *PatchConfig, pv *ir.Value, pd, td []byte) ([]byte, error) {
	if pv.Type == ir.ArrayType && !cfg.Merge {
		p, err := jsonpatch.DecodePatch(pd)
		if err != nil {
			return nil, err
		}
		return p.Apply(td)
	}
	return jsonpatch.MergePatch(td, pd)
}
