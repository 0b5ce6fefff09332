package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/laxjson/lax/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := strings.TrimPrefix(args[0], ".")
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, arg := range files {
		v, err := readDoc(arg)
		if err != nil {
			return err
		}
		res, err := getPath(v, path)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", arg, path, err)
		}
		if err := cfg.write(cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

// getPath descends v along dot-separated segments. Numeric segments
// index arrays; everything else keys objects.
func getPath(v *ir.Value, path string) (*ir.Value, error) {
	if path == "" {
		return v, nil
	}
	for _, part := range strings.Split(path, ".") {
		switch v.Type {
		case ir.ObjectType:
			next, err := v.Obj.Get(part)
			if err != nil {
				return nil, err
			}
			v = next
		case ir.ArrayType:
			i, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an array index", ir.ErrIndex, part)
			}
			next, err := v.Arr.Get(i)
			if err != nil {
				return nil, err
			}
			v = next
		default:
			return nil, fmt.Errorf("%w: cannot descend into %s at %q", ir.ErrType, v.Type, part)
		}
	}
	return v, nil
}
