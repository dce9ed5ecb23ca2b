package main

import (
	"fmt"
	"io"
)

const versionString = "0.1.0"

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "ren %s\n", versionString)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage: ren [options] [script]

options:
  -e, --eval EXPR        evaluate EXPR and print the result
  --trace                emit trace events to stderr
  --trace-file PATH      emit trace events to a rotating log file
  --trace-max-size MB    rotate the trace file at MB megabytes (default 50)
  -v, --version          print the version
  -h, --help             print this help

With no script and no --eval, ren starts the interactive prompt.
`)
}
