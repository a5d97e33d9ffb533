package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Exitf reports a fatal startup error on stderr, prefixed with the binary
// name, and exits with code 1.
func Exitf(format string, args ...any) {
	os.Exit(writeFatal(os.Stderr, filepath.Base(os.Args[0]), format, args...))
}

func writeFatal(w io.Writer, program string, format string, args ...any) int {
	if program != "" {
		fmt.Fprintf(w, "%s: ", program)
	}
	fmt.Fprintf(w, format+"\n", args...)
	return 1
}
