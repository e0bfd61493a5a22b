// Command containerctl creates and verifies ISO 6346 freight container
// identifiers from the command line.
//
// Logs go to stderr; stdout carries only command output, so
//
//	containerctl create --owner ELO --length 20 --json | jq .
//
// works as expected. The exit code reflects the error class (see pkg/errexit).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ghuser/freightbox/pkg/errexit"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		os.Exit(errexit.Code(err))
	}
}

func printError(w io.Writer, err error) {
	if jsonOutput {
		writeJSON(w, map[string]any{"error": map[string]any{
			"message": err.Error(),
			"code":    errexit.Code(err),
		}})
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
