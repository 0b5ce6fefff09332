package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/laxjson/lax/encode"
	"github.com/laxjson/lax/ir"
)

var logger = func() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{Prefix: "lax"})
	l.SetLevel(log.DebugLevel)
	return l
}()

// Logf emits a debug line, rendering ir values and generic JSON shapes
// readably.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Value:
			s := encode.ToString(x)
			if s == "" {
				args[i] = fmt.Sprintf("[raw] %v", x)
				continue
			}
			args[i] = s
		}
	}
	logger.Debugf(msg, args...)
}
