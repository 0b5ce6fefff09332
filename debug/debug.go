// Package debug holds env-gated debug switches for the lax tool.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	View   bool
	Diff   bool
	Patch  bool
	Filter bool
}

var d *debug

func init() {
	d = &debug{}
	d.View = boolEnv("LAX_DEBUG_VIEW")
	d.Diff = boolEnv("LAX_DEBUG_DIFF")
	d.Patch = boolEnv("LAX_DEBUG_PATCH")
	d.Filter = boolEnv("LAX_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func View() bool {
	return d.View
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Filter() bool {
	return d.Filter
}
