package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/ddlx/internal/cli"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(ddlx.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(ddlx.ExitCodeForError(err))
	}
}
