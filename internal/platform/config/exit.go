package config

import (
	"fmt"
	"os"
)

// Exitf reports a startup failure on stderr and exits with code 1. It runs
// before logging is configured, so it bypasses the log package.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "devtinder: "+format+"\n", args...)
	os.Exit(1)
}
